package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/orderlex/orderlex/internal/catalog"
)

// ModelCodeMatcher resolves which model-code catalog entries a prompt
// references, exact-first with a fuzzy fallback.
type ModelCodeMatcher struct {
	codes *catalog.Catalog
}

// NewModelCodeMatcher creates a matcher over the model-code catalog.
func NewModelCodeMatcher(codes *catalog.Catalog) *ModelCodeMatcher {
	return &ModelCodeMatcher{codes: codes}
}

// Match returns the referenced catalog keys in match order; empty means
// no sales description was found.
//
// Pass 1 takes each catalog phrase that occurs verbatim (lower-cased)
// in the text, recording its key and removing the matched substring so
// the fuzzy pass cannot re-match the same span. Pass 2 runs over the
// remaining text and records a key whenever a phrase word scores a
// perfect 100 ratio against a remaining word.
//
// The fallback deliberately tests only the FIRST word of each phrase.
// This mirrors the established matching behavior and is pinned by a
// boundary test; widening it to all words would change which prompts
// resolve.
func (m *ModelCodeMatcher) Match(text string) []string {
	remaining := strings.ToLower(text)
	var keys []string

	for _, e := range m.codes.Entries() {
		phrase := strings.ToLower(e.Phrase)
		if strings.Contains(remaining, phrase) {
			keys = append(keys, e.Code)
			remaining = strings.ReplaceAll(remaining, phrase, "")
		}
	}

	if len(strings.TrimSpace(remaining)) == 0 {
		return keys
	}

	words := strings.Fields(strings.ReplaceAll(remaining, ",", ""))
	if len(words) == 0 {
		return keys
	}

	for _, e := range m.codes.Entries() {
		phraseWords := strings.Fields(strings.ToLower(e.Phrase))
		if len(phraseWords) == 0 {
			continue
		}
		first := phraseWords[0]
		for _, w := range words {
			if fuzzy.Ratio(first, w) == 100 {
				keys = append(keys, e.Code)
				break
			}
		}
	}

	return keys
}
