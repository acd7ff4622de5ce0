package utils

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// NormalizeUUID parses a public identifier into its canonical
// hyphenated form. Clients may send either the canonical form or the
// 32-char display form with hyphens stripped; uuid.Parse accepts both.
func NormalizeUUID(raw string) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// StripUUID returns the display form of a public identifier, with the
// hyphens removed.
func StripUUID(canonical string) string {
	return strings.ReplaceAll(canonical, "-", "")
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	sanitizeStruct(v)
}

func sanitizeStruct(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Struct:
			sanitizeStruct(field)

		case reflect.Slice:
			switch field.Type().Elem().Kind() {
			case reflect.String:
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			case reflect.Struct:
				for j := 0; j < field.Len(); j++ {
					sanitizeStruct(field.Index(j))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
