package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orderlex/orderlex/internal/model"
)

// Load reads a catalog from a YAML file: an ordered list of
// {code, phrase} entries. Order in the file is the priority order.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog %s has no entries", path)
	}

	c, err := New(entries...)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadVocabulary reads a word list: one word per line, blank lines and
// # comments skipped.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan vocabulary: %w", err)
	}

	return NewVocabulary(words...), nil
}

// Set bundles everything the interpreter matches against: the two
// catalogs plus the annotator vocabulary derived from them.
type Set struct {
	ModelCodes    *Catalog
	Abbreviations *Catalog
	Vocabulary    *Vocabulary
}

// LoadSet resolves the configured catalog sources, falling back to the
// built-in defaults for any path left empty. The vocabulary always
// includes every word of both catalogs.
func LoadSet(cfg model.CatalogsConfig) (*Set, error) {
	set := &Set{
		ModelCodes:    DefaultModelCodes(),
		Abbreviations: DefaultAbbreviations(),
		Vocabulary:    DefaultVocabulary(),
	}

	var err error
	if cfg.ModelCodesPath != "" {
		if set.ModelCodes, err = Load(cfg.ModelCodesPath); err != nil {
			return nil, err
		}
	}
	if cfg.AbbreviationsPath != "" {
		if set.Abbreviations, err = Load(cfg.AbbreviationsPath); err != nil {
			return nil, err
		}
	}
	if cfg.VocabularyPath != "" {
		extra, err := LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			return nil, err
		}
		set.Vocabulary = set.Vocabulary.Merge(extra)
	}

	set.Vocabulary = set.Vocabulary.
		Merge(FromCatalog(set.ModelCodes)).
		Merge(FromCatalog(set.Abbreviations))

	return set, nil
}

// Fingerprint digests both catalogs; cache keys embed it so a catalog
// change invalidates previously cached interpretations.
func (s *Set) Fingerprint() string {
	return s.ModelCodes.Fingerprint() + s.Abbreviations.Fingerprint()
}
