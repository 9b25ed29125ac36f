package catalog

import "strings"

// Vocabulary is the word set the local annotator treats as known.
// Tokens outside it (and outside the catalog phrases) are flagged
// out-of-vocabulary and rejected by the vocabulary validator.
type Vocabulary struct {
	words map[string]struct{}
}

// NewVocabulary builds a vocabulary from words, lower-cased.
func NewVocabulary(words ...string) *Vocabulary {
	v := &Vocabulary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			v.words[w] = struct{}{}
		}
	}
	return v
}

// Merge returns a new vocabulary containing both word sets.
func (v *Vocabulary) Merge(other *Vocabulary) *Vocabulary {
	merged := &Vocabulary{words: make(map[string]struct{}, len(v.words)+len(other.words))}
	for w := range v.words {
		merged.words[w] = struct{}{}
	}
	for w := range other.words {
		merged.words[w] = struct{}{}
	}
	return merged
}

// Contains reports whether the word is known (case-insensitive).
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// FromCatalog builds a vocabulary out of every word appearing in the
// catalog phrases, so catalog terms are never flagged out-of-vocabulary.
func FromCatalog(c *Catalog) *Vocabulary {
	var words []string
	for _, e := range c.Entries() {
		words = append(words, strings.Fields(strings.ToLower(e.Phrase))...)
	}
	return NewVocabulary(words...)
}

// DefaultVocabulary returns the built-in base word list: English
// function words, the polarity synonym sets, date vocabulary and the
// ordering terms that show up in sales prompts. Deployments extend it
// via catalogs.vocabulary_path.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(baseWords...)
}

var baseWords = []string{
	// articles, pronouns, auxiliaries
	"a", "an", "the", "this", "that", "these", "those", "it", "its",
	"i", "we", "you", "they", "he", "she", "my", "our", "your", "their",
	"is", "are", "was", "were", "be", "been", "being", "am",
	"do", "does", "did", "have", "has", "had", "will", "would", "shall",
	"should", "can", "could", "may", "might", "must", "need", "want",
	// prepositions and conjunctions
	"and", "or", "but", "nor", "so", "yet", "if", "then", "than",
	"of", "to", "for", "from", "by", "on", "at", "as", "into", "onto",
	"about", "after", "before", "between", "during", "until", "till",
	"over", "under", "up", "down", "out", "off", "per", "via",
	// positive polarity cues
	"with", "accompanied", "company", "together", "addition", "including",
	"along", "amidst", "among", "amid", "having", "in",
	// negative polarity cues
	"without", "lacking", "deprived", "not", "missing", "destitute",
	"bereft", "deficient", "void", "unaccompanied", "except", "exclusive",
	// date vocabulary
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"sunday", "today", "tomorrow", "week", "month", "year", "day",
	"early", "late", "latter", "mid", "end", "beginning", "start",
	"first", "last", "next", "coming",
	"one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "twenty", "thirty",
	// ordering vocabulary
	"order", "orders", "ordered", "buy", "bought", "purchase", "purchased",
	"deliver", "delivery", "deliveries", "delivered", "ship", "shipped",
	"shipping", "arrival", "arrive", "arrives", "expected", "due",
	"car", "cars", "vehicle", "vehicles", "model", "models", "type",
	"package", "packages", "option", "options", "feature", "features",
	"configuration", "spec", "please", "thanks", "thank", "hello", "hi",
	"like", "prefer", "preferred", "also", "plus", "both", "all", "no",
	"new", "now", "by",
}
