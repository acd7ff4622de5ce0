package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeUUIDAcceptsBothForms(t *testing.T) {
	canonical := uuid.NewString()
	stripped := StripUUID(canonical)

	got, ok := NormalizeUUID(canonical)
	if !ok || got != canonical {
		t.Errorf("NormalizeUUID(canonical) = (%q, %v), want (%q, true)", got, ok, canonical)
	}

	got, ok = NormalizeUUID(stripped)
	if !ok || got != canonical {
		t.Errorf("NormalizeUUID(stripped) = (%q, %v), want (%q, true)", got, ok, canonical)
	}

	got, ok = NormalizeUUID("  " + canonical + " ")
	if !ok || got != canonical {
		t.Errorf("NormalizeUUID(padded) = (%q, %v), want (%q, true)", got, ok, canonical)
	}

	if _, ok = NormalizeUUID("zzz"); ok {
		t.Error("NormalizeUUID accepted garbage")
	}
	if _, ok = NormalizeUUID(""); ok {
		t.Error("NormalizeUUID accepted an empty string")
	}
}

func TestStripUUID(t *testing.T) {
	got := StripUUID("123e4567-e89b-12d3-a456-426614174000")
	if got != "123e4567e89b12d3a456426614174000" {
		t.Errorf("StripUUID() = %q", got)
	}
	if len(got) != 32 {
		t.Errorf("display form length = %d, want 32", len(got))
	}
}

func TestSanitizeTrimsNestedFields(t *testing.T) {
	type pair struct {
		Name  string
		Value string
	}
	type req struct {
		Name  string
		Tags  []string
		Pairs []pair
	}

	r := &req{
		Name:  "  Recipes ",
		Tags:  []string{" food", "italian "},
		Pairs: []pair{{Name: " cuisine ", Value: " italian "}},
	}
	Sanitize(r)

	if r.Name != "Recipes" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Tags[0] != "food" || r.Tags[1] != "italian" {
		t.Errorf("Tags = %v", r.Tags)
	}
	if r.Pairs[0].Name != "cuisine" || r.Pairs[0].Value != "italian" {
		t.Errorf("Pairs[0] = %+v", r.Pairs[0])
	}
}

func TestFormatEpoch(t *testing.T) {
	if got := FormatEpoch(0); got != "1970-01-01T00:00:00Z" {
		t.Errorf("FormatEpoch(0) = %q", got)
	}
}
