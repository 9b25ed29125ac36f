package annotate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/orderlex/orderlex/internal/model"
)

// Rule-based DATE/CARDINAL recognition for the local annotator. The
// date resolver only needs the entity spans; actual parsing is done by
// the date-search primitive downstream.

const monthAlt = `(?:january|february|march|april|may|june|july|august|september|october|november|december)`

var dateRes = []*regexp.Regexp{
	// 2024-03-15
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	// 15/03/2024, 3/15/24
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	// november, november 15, november 15th 2024, november, 2024
	regexp.MustCompile(`\b` + monthAlt + `(?:\s+\d{1,2}(?:st|nd|rd|th)?)?(?:,?\s+\d{4})?\b`),
	// 15 november 2024, 15th of november
	regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?(?:\s+of)?\s+` + monthAlt + `(?:,?\s+\d{4})?\b`),
}

var cardinalRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

type span struct {
	start, end int
	label      string
}

// ExtractEntities finds DATE and CARDINAL spans in the text, in order
// of appearance. DATE spans win over CARDINAL spans they overlap.
func ExtractEntities(text string) []model.Entity {
	lower := strings.ToLower(text)

	var spans []span
	for _, re := range dateRes {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1], label: model.EntityDate})
		}
	}
	spans = dropOverlaps(spans)

	for _, loc := range cardinalRe.FindAllStringIndex(lower, -1) {
		s := span{start: loc[0], end: loc[1], label: model.EntityCardinal}
		if !overlapsAny(s, spans) {
			spans = append(spans, s)
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	entities := make([]model.Entity, 0, len(spans))
	for _, s := range spans {
		entities = append(entities, model.Entity{
			Text:  lower[s.start:s.end],
			Label: s.label,
		})
	}
	return entities
}

// dropOverlaps keeps the longest span of every overlapping group.
func dropOverlaps(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end-spans[i].start > spans[j].end-spans[j].start
	})

	var kept []span
	for _, s := range spans {
		if len(kept) > 0 && s.start < kept[len(kept)-1].end {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func overlapsAny(s span, spans []span) bool {
	for _, other := range spans {
		if s.start < other.end && other.start < s.end {
			return true
		}
	}
	return false
}
