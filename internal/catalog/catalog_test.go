package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/orderlex/orderlex/internal/model"
)

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New(
		Entry{Code: "A1", Phrase: "one"},
		Entry{Code: "A1", Phrase: "two"},
	)
	if err == nil {
		t.Error("expected error for duplicate code")
	}
}

func TestNew_RejectsEmptyCode(t *testing.T) {
	if _, err := New(Entry{Code: "", Phrase: "one"}); err == nil {
		t.Error("expected error for empty code")
	}
}

func TestCatalog_PreservesOrder(t *testing.T) {
	c := MustNew(
		Entry{Code: "B", Phrase: "second declared"},
		Entry{Code: "A", Phrase: "first alphabetically"},
		Entry{Code: "C", Phrase: "third"},
	)

	want := []string{"B", "A", "C"}
	if got := c.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected declaration order %v, got %v", want, got)
	}
}

func TestCatalog_Phrase(t *testing.T) {
	c := DefaultModelCodes()

	phrase, ok := c.Phrase("21CF")
	if !ok || phrase != "iX xDrive50" {
		t.Errorf("expected iX xDrive50, got %q (ok=%v)", phrase, ok)
	}

	if _, ok := c.Phrase("XXXX"); ok {
		t.Error("expected lookup miss for unknown code")
	}
}

func TestCatalog_JoinedPhrases(t *testing.T) {
	c := MustNew(
		Entry{Code: "A", Phrase: "Foo Bar"},
		Entry{Code: "B", Phrase: "Baz"},
	)
	if got := c.JoinedPhrases(); got != "foo barbaz" {
		t.Errorf("expected lower-cased concatenation, got %q", got)
	}
}

func TestCatalog_Fingerprint(t *testing.T) {
	a := MustNew(Entry{Code: "A", Phrase: "one"})
	b := MustNew(Entry{Code: "A", Phrase: "two"})

	if a.Fingerprint() == b.Fingerprint() {
		t.Error("expected different fingerprints for different content")
	}
	if a.Fingerprint() != MustNew(Entry{Code: "A", Phrase: "one"}).Fingerprint() {
		t.Error("expected stable fingerprint for identical content")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.yaml")
	content := `- code: Z9
  phrase: Test Model
- code: Y8
  phrase: Other Model
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"Z9", "Y8"}) {
		t.Errorf("expected file order preserved, got %v", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load("/nonexistent/codes.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for empty catalog")
	}
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	content := `alpha

# comment
Beta
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write vocabulary file: %v", err)
	}

	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}
	if v.Len() != 2 {
		t.Errorf("expected 2 words, got %d", v.Len())
	}
	if !v.Contains("beta") {
		t.Error("expected case-insensitive containment")
	}
}

func TestLoadSet_Defaults(t *testing.T) {
	set, err := LoadSet(model.CatalogsConfig{})
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}

	if set.ModelCodes.Len() != 6 {
		t.Errorf("expected 6 model codes, got %d", set.ModelCodes.Len())
	}
	if set.Abbreviations.Len() != 8 {
		t.Errorf("expected 8 abbreviations, got %d", set.Abbreviations.Len())
	}

	// Catalog words are always in the vocabulary
	for _, word := range []string{"xdrive50", "sunroof", "panorama", "318i"} {
		if !set.Vocabulary.Contains(word) {
			t.Errorf("expected catalog word %q in vocabulary", word)
		}
	}
	// And so are the polarity cues and months
	for _, word := range []string{"with", "without", "november", "late"} {
		if !set.Vocabulary.Contains(word) {
			t.Errorf("expected base word %q in vocabulary", word)
		}
	}
}

func TestVocabulary_Merge(t *testing.T) {
	a := NewVocabulary("one", "two")
	b := NewVocabulary("two", "three")

	merged := a.Merge(b)
	if merged.Len() != 3 {
		t.Errorf("expected 3 words after merge, got %d", merged.Len())
	}
	if a.Len() != 2 || b.Len() != 2 {
		t.Error("expected merge inputs unchanged")
	}
}

func TestSet_Fingerprint(t *testing.T) {
	a, err := LoadSet(model.CatalogsConfig{})
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}
	b, err := LoadSet(model.CatalogsConfig{})
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("expected identical sets to share a fingerprint")
	}
}
