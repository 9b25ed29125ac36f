package annotate

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"

	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/model"
)

// ProseAnnotator tags prompts locally with the prose tagger. Penn
// Treebank tags are mapped to universal POS, dependency labels are
// derived by rule (cc for and/or coordinators, punct for , and .),
// coordination arcs are synthesized from token positions, and entities
// come from the date/number rules in entities.go.
type ProseAnnotator struct {
	vocab *catalog.Vocabulary
}

// NewProseAnnotator creates the local annotator. The vocabulary decides
// the out-of-vocabulary flag; catalog words are always considered known.
func NewProseAnnotator(vocab *catalog.Vocabulary) *ProseAnnotator {
	return &ProseAnnotator{vocab: vocab}
}

// Name returns the provider name
func (a *ProseAnnotator) Name() string {
	return "prose"
}

// Annotate tokenizes and tags the text.
func (a *ProseAnnotator) Annotate(ctx context.Context, text string) (*model.Annotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}

	var tokens []model.AnnotatedToken
	for _, tok := range doc.Tokens() {
		pos := universalPOS(tok.Tag, tok.Text)
		tokens = append(tokens, model.AnnotatedToken{
			Text:    tok.Text,
			Lemma:   strings.ToLower(tok.Text),
			POS:     pos,
			Tag:     tok.Tag,
			Dep:     depLabel(pos, tok.Text),
			Shape:   shape(tok.Text),
			IsAlpha: isAlpha(tok.Text),
			IsStop:  stopwords[strings.ToLower(tok.Text)],
			IsOOV:   a.isOOV(tok.Text),
		})
	}

	return &model.Annotation{
		Tokens:   tokens,
		Arcs:     coordinationArcs(tokens),
		Entities: ExtractEntities(text),
	}, nil
}

// isOOV flags alphabetic tokens missing from the vocabulary. Tokens
// with digits (model designations like xdrive50) are never flagged.
func (a *ProseAnnotator) isOOV(text string) bool {
	if !isAlpha(text) {
		return false
	}
	return !a.vocab.Contains(text)
}

// universalPOS maps a Penn Treebank tag to the universal tag set the
// pipeline filters on.
func universalPOS(tag, text string) string {
	switch tag {
	case "NNP", "NNPS":
		return model.POSProperNoun
	case "NN", "NNS":
		return model.POSNoun
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ", "MD":
		return model.POSVerb
	case "JJ", "JJR", "JJS":
		return model.POSAdjective
	case "CC":
		return model.POSCoordConj
	case "CD":
		return "NUM"
	case "DT", "PDT", "WDT":
		return "DET"
	case "IN":
		return "ADP"
	case "RB", "RBR", "RBS", "WRB":
		return "ADV"
	case "PRP", "PRP$", "WP", "WP$", "EX":
		return "PRON"
	case "TO", "POS", "RP":
		return "PART"
	case "UH":
		return "INTJ"
	}
	if isPunct(text) {
		return model.POSPunctuation
	}
	return "X"
}

// depLabel derives the dependency labels the synthesizer reads. A full
// dependency parse is not needed: only coordination and punctuation
// boundaries drive segmentation.
func depLabel(pos, text string) string {
	switch {
	case pos == model.POSCoordConj:
		return model.DepCoordination
	case pos == model.POSPunctuation:
		return model.DepPunctuation
	default:
		return ""
	}
}

// coordinationArcs synthesizes one cc arc per coordinating conjunction,
// anchored at the nearest noun-like token to its left. Arc width then
// approximates the size of the left conjunct, which is all the grouping
// heuristic consumes.
func coordinationArcs(tokens []model.AnnotatedToken) []model.DependencyArc {
	var arcs []model.DependencyArc
	for i, tok := range tokens {
		if tok.Dep != model.DepCoordination {
			continue
		}
		start := i - 1
		for j := i - 1; j >= 0; j-- {
			if tokens[j].POS == model.POSNoun || tokens[j].POS == model.POSProperNoun {
				start = j
				break
			}
		}
		if start < 0 {
			start = 0
		}
		arcs = append(arcs, model.DependencyArc{
			Start: start,
			End:   i,
			Label: model.DepCoordination,
			Dir:   "right",
		})
	}
	return arcs
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// shape renders the token's shape signature (Xxxx, dd-dd, ...), with
// letter/digit runs capped at four, matching the conventional format.
func shape(s string) string {
	var b strings.Builder
	var last rune
	run := 0
	for _, r := range s {
		var c rune
		switch {
		case unicode.IsUpper(r):
			c = 'X'
		case unicode.IsLower(r):
			c = 'x'
		case unicode.IsDigit(r):
			c = 'd'
		default:
			c = r
		}
		if c == last {
			run++
			if run >= 4 {
				continue
			}
		} else {
			run = 0
		}
		b.WriteRune(c)
		last = c
	}
	return b.String()
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "if": true, "then": true, "of": true, "to": true,
	"for": true, "from": true, "by": true, "on": true, "at": true,
	"as": true, "in": true, "with": true, "without": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"it": true, "its": true, "this": true, "that": true, "these": true,
	"those": true, "i": true, "we": true, "you": true, "they": true,
	"not": true, "no": true, "so": true, "do": true, "does": true,
	"did": true, "have": true, "has": true, "had": true, "will": true,
	"would": true, "can": true, "could": true, "my": true, "our": true,
	"your": true, "their": true, "all": true, "both": true, "per": true,
}
