// Package match resolves which catalog entries a prompt refers to: the
// vocabulary gate first, then the two-pass model-code matcher.
package match

import (
	"strings"

	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/model"
)

// Validator rejects prompts containing tokens unknown to the annotator
// unless the token appears inside a catalog phrase.
type Validator struct {
	haystack string
}

// NewValidator builds the validator over both catalogs. The haystack is
// the lower-cased concatenation of every phrase value, so fragments of
// catalog phrases never count as unknown.
func NewValidator(set *catalog.Set) *Validator {
	return &Validator{
		haystack: set.ModelCodes.JoinedPhrases() + set.Abbreviations.JoinedPhrases(),
	}
}

// FirstUnknown scans the tokens in order and returns the first
// out-of-vocabulary token not covered by a catalog phrase. Scanning
// stops at the first out-of-vocabulary token either way: the contract
// is an early-exit gate, not an exhaustive report.
func (v *Validator) FirstUnknown(tokens []model.AnnotatedToken) (string, bool) {
	for _, tok := range tokens {
		if !tok.IsOOV {
			continue
		}
		if strings.Contains(v.haystack, strings.ToLower(tok.Text)) {
			return "", false
		}
		return tok.Text, true
	}
	return "", false
}
