// Package formula turns an annotated prompt into the boolean
// feature-selection formula: catalog keys combined with +, -, /, and
// one optional bracket pair reflecting and/or precedence.
package formula

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/model"
)

// Polarity synonym sets. A segment mentioning any negative cue excludes
// its option; any positive cue includes it; otherwise the previous
// segment's polarity carries over.
var (
	positiveCues = wordSet(
		"with", "accompanied", "company", "together", "addition",
		"including", "along", "amidst", "among", "amid", "having", "in",
	)
	negativeCues = wordSet(
		"without", "lacking", "deprived", "not", "missing", "destitute",
		"bereft", "deficient", "void", "unaccompanied", "except", "exclusive",
	)
)

// groupingMode says which matched pair of a mixed and/or expression is
// parenthesized.
type groupingMode int

const (
	groupNone   groupingMode = iota
	groupFirst               // bracket the first two emitted keys
	groupSecond              // bracket the second and third emitted keys
)

// Synthesizer builds formulas against one abbreviation catalog.
type Synthesizer struct {
	abbrs     *catalog.Catalog
	threshold int
}

// NewSynthesizer creates a synthesizer. threshold is the minimum
// partial-overlap score (0-100) for a phrase to count as matched.
func NewSynthesizer(abbrs *catalog.Catalog, threshold int) *Synthesizer {
	if threshold <= 0 {
		threshold = 85
	}
	return &Synthesizer{abbrs: abbrs, threshold: threshold}
}

// Synthesize produces the formula for an annotated prompt. rawText must
// be the lower-cased original prompt: polarity cues live in the
// unfiltered wording. An empty result means no abbreviation reached the
// threshold in any segment.
func (s *Synthesizer) Synthesize(ann *model.Annotation, rawText string) string {
	filtered := descriptiveFilter(ann.Tokens)
	cues := ann.CueTokens()

	matched := s.resolveSegments(splitOnCues(filtered, cues))
	mode := grouping(cues, ann.CoordinationArcs())

	return s.assemble(splitOnCues(rawText, cues), cues, matched, mode)
}

// descriptiveFilter keeps tokens whose POS carries descriptive content
// and joins their surface text. Determiners and prepositions would
// corrupt the fuzzy matching, so they are dropped here.
func descriptiveFilter(tokens []model.AnnotatedToken) string {
	var kept []string
	for _, tok := range tokens {
		switch tok.POS {
		case model.POSProperNoun, model.POSNoun, model.POSVerb,
			model.POSAdjective, model.POSCoordConj, model.POSPunctuation:
			kept = append(kept, tok.Text)
		}
	}
	return strings.Join(kept, " ")
}

// splitOnCues splits text on word-boundary occurrences of each cue
// token. With no cues the whole text is one segment.
func splitOnCues(text string, cues []string) []string {
	if len(cues) == 0 {
		return []string{text}
	}

	parts := make([]string, 0, len(cues)+2)
	for _, cue := range cues {
		parts = append(parts, `\b`+regexp.QuoteMeta(cue)+`\b`)
	}
	// commas and periods carry no word boundaries; match them bare
	parts = append(parts, ",", regexp.QuoteMeta("."))

	re, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		return []string{text}
	}
	return re.Split(text, -1)
}

// resolveSegments matches abbreviation phrases inside each segment.
// Each segment yields exactly one slot: the key of the last phrase
// matched inside it, or "" when nothing reached the threshold. Earlier
// matches within the same segment still consume their words, so a long
// segment cannot re-match the same phrase twice.
func (s *Synthesizer) resolveSegments(segments []string) []string {
	entries := s.abbrs.Entries()
	matched := make([]string, 0, len(segments))

	for _, segment := range segments {
		condensed := strings.Join(strings.Fields(segment), "")
		key := ""

		for {
			best, bestIdx := -1, -1
			for i, e := range entries {
				phrase := strings.ReplaceAll(strings.ToLower(e.Phrase), " ", "")
				score := fuzzy.PartialRatio(phrase, condensed)
				// Later catalog entries win ties: declaration order is
				// the documented priority order.
				if score >= best {
					best = score
					bestIdx = i
				}
			}
			if best < s.threshold || bestIdx < 0 {
				break
			}

			key = entries[bestIdx].Code
			for _, word := range strings.Fields(strings.ToLower(entries[bestIdx].Phrase)) {
				condensed = strings.Replace(condensed, word, "", 1)
			}
		}

		matched = append(matched, key)
	}

	return matched
}

// grouping decides bracket placement when the prompt mixes "and" with
// "or". The first two coordination arcs stand in for the two clause
// boundaries: a wider first arc means the first conjunction binds a
// larger left conjunct, so the SECOND pair is the tight group. With
// fewer than two arcs no grouping is applied.
func grouping(cues []string, arcs []model.DependencyArc) groupingMode {
	hasAnd, hasOr := false, false
	for _, cue := range cues {
		switch cue {
		case "and":
			hasAnd = true
		case "or":
			hasOr = true
		}
	}
	if !hasAnd || !hasOr {
		return groupNone
	}
	if len(arcs) < 2 {
		return groupNone
	}
	if arcs[0].Width() > arcs[1].Width() {
		return groupSecond
	}
	return groupFirst
}

// assemble walks the raw-text segments in order, emitting for each one
// the continuation operator, the polarity sign, the optional bracket
// and the matched key. Bracket placement is running-count bookkeeping
// over keys already present in the formula, not a parse tree; it
// supports exactly one bracket pair.
func (s *Synthesizer) assemble(segments, cues, matched []string, mode groupingMode) string {
	formula := ""
	op := ""

	for ind, segment := range segments {
		conj := ""
		if ind > 0 && ind-1 < len(cues) && cues[ind-1] == "or" {
			conj = "/"
		}

		words := strings.Fields(segment)
		switch {
		case intersects(words, negativeCues):
			op = "-"
		case intersects(words, positiveCues):
			op = "+"
		}

		key := ""
		if ind < len(matched) {
			key = matched[ind]
		}

		bracket := ""
		if key != "" {
			emitted := countEmitted(matched, formula)
			switch mode {
			case groupFirst:
				if emitted == 0 {
					bracket = "("
				}
			case groupSecond:
				if emitted == 1 && len(formula) > 0 {
					bracket = "("
				}
			}

			formula += conj + op + bracket
			bracket = ""

			emitted = countEmitted(matched, formula)
			switch mode {
			case groupFirst:
				if emitted == 1 && len(formula) > 0 {
					bracket = ")"
				}
			case groupSecond:
				if emitted == 2 && len(formula) > 0 {
					bracket = ")"
				}
			}
		}

		formula += key + bracket
	}

	return repair(formula, matched)
}

// countEmitted counts matched keys already present in the formula.
// Substring containment is deliberate: it is the same bookkeeping the
// bracket decisions are defined against.
func countEmitted(matched []string, formula string) int {
	count := 0
	for _, key := range matched {
		if key != "" && strings.Contains(formula, key) {
			count++
		}
	}
	return count
}

// repair appends any matched key that bracket bookkeeping dropped,
// prefixed with the formula's first character (its polarity or grouping
// symbol). Best-effort: a key found during resolution must always
// surface in the output.
func repair(formula string, matched []string) string {
	if formula == "" {
		return formula
	}
	for _, key := range matched {
		if key == "" || strings.Contains(formula, key) {
			continue
		}
		formula += string(formula[0]) + key
	}
	return formula
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func intersects(words []string, set map[string]bool) bool {
	for _, w := range words {
		if set[w] {
			return true
		}
	}
	return false
}
