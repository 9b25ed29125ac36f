package dates

import (
	dateparser "github.com/markusmobius/go-dateparser"
)

// DateparserSearcher adapts go-dateparser's text search to the Searcher
// contract. It is the only place the library is touched.
type DateparserSearcher struct{}

// NewDateparserSearcher returns the default search primitive.
func NewDateparserSearcher() DateparserSearcher {
	return DateparserSearcher{}
}

// Search finds every date mentioned in the text, resolving missing day
// components according to pref.
func (DateparserSearcher) Search(text string, pref Preference) ([]Match, error) {
	cfg := &dateparser.Configuration{
		PreferredDayOfMonth: dateparser.First,
	}
	if pref == PreferLast {
		cfg.PreferredDayOfMonth = dateparser.Last
	}

	_, results, err := dateparser.Search(cfg, text)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		matches = append(matches, Match{
			Text: r.Text,
			Time: r.Date.Time,
		})
	}
	return matches, nil
}
