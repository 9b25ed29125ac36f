// Package dates extracts the delivery date from an annotated prompt and
// normalizes it to ISO form.
package dates

import (
	"strings"
	"time"

	"github.com/orderlex/orderlex/internal/model"
)

// Preference selects which day of the month an underspecified date
// ("November 2024") resolves to.
type Preference string

const (
	PreferFirst Preference = "first"
	PreferLast  Preference = "last"
)

// Match is one date found by the natural-language search: the matched
// span and the time it resolved to.
type Match struct {
	Text string
	Time time.Time
}

// Searcher is the natural-language date search primitive. Implemented
// by the go-dateparser adapter; tests inject fakes.
type Searcher interface {
	Search(text string, pref Preference) ([]Match, error)
}

// endOfMonthCues are the prompt words that flip the day-of-month
// preference to the last day.
var endOfMonthCues = map[string]bool{
	"late":   true,
	"latter": true,
	"end":    true,
}

// Resolver picks and parses the delivery date.
type Resolver struct {
	searcher Searcher
}

// NewResolver creates a resolver over the given search primitive.
func NewResolver(searcher Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve takes the LAST entity tagged DATE or CARDINAL, parses it with
// a day-of-month preference driven by the prompt's end-of-month cues,
// and returns the last date the search found, formatted YYYY-MM-DD.
// ok is false when no entity exists or nothing parses.
func (r *Resolver) Resolve(ann *model.Annotation, prompt string) (string, bool) {
	var candidate string
	for _, e := range ann.Entities {
		if e.Label == model.EntityDate || e.Label == model.EntityCardinal {
			candidate = e.Text
		}
	}
	if candidate == "" {
		return "", false
	}

	pref := PreferFirst
	for _, word := range strings.Fields(prompt) {
		if endOfMonthCues[word] {
			pref = PreferLast
			break
		}
	}

	matches, err := r.searcher.Search(candidate, pref)
	if err != nil || len(matches) == 0 {
		return "", false
	}

	return matches[len(matches)-1].Time.Format("2006-01-02"), true
}
