package match

import (
	"testing"

	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/model"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	set, err := catalog.LoadSet(model.CatalogsConfig{})
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return NewValidator(set)
}

func TestValidator_AllKnown(t *testing.T) {
	v := newTestValidator(t)

	tokens := []model.AnnotatedToken{
		{Text: "ix", IsOOV: false},
		{Text: "with", IsOOV: false},
		{Text: "sunroof", IsOOV: false},
	}

	if unknown, found := v.FirstUnknown(tokens); found {
		t.Errorf("expected no unknown token, got %q", unknown)
	}
}

func TestValidator_ReportsFirstUnknown(t *testing.T) {
	v := newTestValidator(t)

	tokens := []model.AnnotatedToken{
		{Text: "with", IsOOV: false},
		{Text: "frobnicator", IsOOV: true},
		{Text: "gizmo", IsOOV: true},
	}

	unknown, found := v.FirstUnknown(tokens)
	if !found {
		t.Fatal("expected an unknown token")
	}
	if unknown != "frobnicator" {
		t.Errorf("expected frobnicator, got %q", unknown)
	}
}

// A token flagged by the annotator but contained in a catalog phrase is
// not unknown. Scanning still stops there: the gate is early-exit.
func TestValidator_CatalogPhraseCoversToken(t *testing.T) {
	v := newTestValidator(t)

	tokens := []model.AnnotatedToken{
		{Text: "sunroof", IsOOV: true},
		{Text: "frobnicator", IsOOV: true},
	}

	if unknown, found := v.FirstUnknown(tokens); found {
		t.Errorf("expected scan to stop at covered token, got %q", unknown)
	}
}

func TestValidator_Empty(t *testing.T) {
	v := newTestValidator(t)

	if unknown, found := v.FirstUnknown(nil); found {
		t.Errorf("expected no unknown token for empty input, got %q", unknown)
	}
}
