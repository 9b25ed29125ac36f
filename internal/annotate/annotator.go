// Package annotate supplies the linguistic annotator the interpreter
// consumes: per-token features, dependency arcs for conjunction
// structure, and DATE/CARDINAL entities. The default implementation is
// local (prose); an OpenAI-backed implementation can be selected when a
// richer tagger is wanted.
package annotate

import (
	"context"
	"fmt"
	"strings"

	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/model"
)

// Annotator produces the annotation every pipeline stage reads. A
// prompt is annotated once; the result is treated as read-only.
type Annotator interface {
	// Name returns the provider name
	Name() string

	// Annotate tokenizes and tags the text
	Annotate(ctx context.Context, text string) (*model.Annotation, error)
}

// New creates an annotator based on configuration.
func New(cfg model.AnnotatorConfig, vocab *catalog.Vocabulary) (Annotator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "prose":
		return NewProseAnnotator(vocab), nil

	case "openai":
		return NewOpenAIAnnotator(cfg)

	default:
		return nil, fmt.Errorf("unknown annotator provider: %s (supported: prose, openai)", cfg.Provider)
	}
}
