package validators

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var (
	hasSpaces = regexp.MustCompile(`\s+`)
	tagToken  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}

// TagChars accepts only letters, digits, '-' and '_'. Tags are joined
// into a space-separated string on storage, so anything else (above
// all whitespace) would corrupt the token boundaries.
func TagChars(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return tagToken.MatchString(field.String())
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}
