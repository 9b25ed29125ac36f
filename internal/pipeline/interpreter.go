// Package pipeline orchestrates one interpretation: annotate once, then
// gate every extraction stage on the accumulated state, short-circuiting
// after the first failure. Interpret always returns a result; prompt
// problems become diagnostics, never errors.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/orderlex/orderlex/internal/annotate"
	"github.com/orderlex/orderlex/internal/cache"
	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/dates"
	"github.com/orderlex/orderlex/internal/formula"
	"github.com/orderlex/orderlex/internal/match"
	"github.com/orderlex/orderlex/internal/model"
)

// Stage diagnostics. They accumulate in order, joined with ". ", and the
// failure payload carries every cause hit before the pipeline stopped.
const (
	msgNoModelCode = "Prompt doesn't include one of the sales descriptions provided, please check"
	msgNoFormula   = "Prompt doesn't include a valid abbreviation description, please check"
	msgNoDate      = "Prompt doesn't include a valid date, please check"
	msgInternal    = "Error while interpreting the prompt"
)

// Interpreter runs the interpretation pipeline. Instances share only
// the immutable catalog set and may be used concurrently.
type Interpreter struct {
	catalogs  *catalog.Set
	annotator annotate.Annotator
	validator *match.Validator
	matcher   *match.ModelCodeMatcher
	synth     *formula.Synthesizer
	resolver  *dates.Resolver
	builder   *Builder
	cache     cache.Cache
}

// New wires an interpreter from configuration: catalogs (built-in or
// configured files), the configured annotator, the go-dateparser search
// primitive and the optional result cache.
func New(cfg *model.Config) (*Interpreter, error) {
	set, err := catalog.LoadSet(cfg.Catalogs)
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}

	annotator, err := annotate.New(cfg.Annotator, set.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("create annotator: %w", err)
	}

	return NewWith(cfg, set, annotator, dates.NewDateparserSearcher(), cache.New(cfg.Cache)), nil
}

// NewWith wires an interpreter from explicit collaborators. Tests use
// it to inject fixture annotators and date searchers.
func NewWith(cfg *model.Config, set *catalog.Set, annotator annotate.Annotator, searcher dates.Searcher, c cache.Cache) *Interpreter {
	return &Interpreter{
		catalogs:  set,
		annotator: annotator,
		validator: match.NewValidator(set),
		matcher:   match.NewModelCodeMatcher(set.ModelCodes),
		synth:     formula.NewSynthesizer(set.Abbreviations, cfg.Matching.AbbreviationThreshold),
		resolver:  dates.NewResolver(searcher),
		builder:   NewBuilder(),
		cache:     c,
	}
}

// Catalogs returns the catalog set the interpreter matches against.
func (p *Interpreter) Catalogs() *catalog.Set {
	return p.catalogs
}

// Interpret converts one prompt into a result: record(s) on success, an
// explained failure otherwise.
func (p *Interpreter) Interpret(ctx context.Context, text string) *model.Result {
	state := model.NewInterpretationState(text)

	cacheKey := ""
	if p.cache != nil {
		cacheKey = cache.Key(state.Prompt, p.catalogs.Fingerprint())
		if payload, found := p.cache.Get(cacheKey); found {
			var cached model.Result
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached
			}
		}
	}

	result := p.run(ctx, state)

	if p.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			_ = p.cache.Set(cacheKey, payload, 0)
		}
	}

	return result
}

// run executes the stages in order. Each stage reads the one annotation
// produced up front; stages after the first failure are skipped but the
// request body is always built.
func (p *Interpreter) run(ctx context.Context, state *model.InterpretationState) *model.Result {
	annotation, err := p.annotator.Annotate(ctx, state.Prompt)
	if err != nil {
		state.Fail(msgInternal)
		state.Fail(err.Error())
		return p.builder.Build(state)
	}

	p.validateVocabulary(state, annotation)

	if !state.Failed() {
		p.matchModelCodes(state)
	}
	if !state.Failed() {
		p.synthesizeFormula(state, annotation)
	}
	if !state.Failed() {
		p.resolveDate(state, annotation)
	}
	if !state.Failed() {
		state.Pass()
	}

	return p.builder.Build(state)
}

func (p *Interpreter) validateVocabulary(state *model.InterpretationState, annotation *model.Annotation) {
	if unknown, found := p.validator.FirstUnknown(annotation.Tokens); found {
		state.Fail(fmt.Sprintf("Prompt has some out-of-vocabulary words: %s, please check", unknown))
		return
	}
	state.Status = model.StatusPartial
}

func (p *Interpreter) matchModelCodes(state *model.InterpretationState) {
	codes := p.matcher.Match(state.Prompt)
	if len(codes) == 0 {
		state.Fail(msgNoModelCode)
		return
	}
	state.ModelCodes = codes
	state.Status = model.StatusPartial
}

func (p *Interpreter) synthesizeFormula(state *model.InterpretationState, annotation *model.Annotation) {
	f := p.synth.Synthesize(annotation, state.Prompt)
	if f == "" {
		state.Fail(msgNoFormula)
		return
	}
	state.Formula = f
	state.Status = model.StatusPartial
}

func (p *Interpreter) resolveDate(state *model.InterpretationState, annotation *model.Annotation) {
	date, ok := p.resolver.Resolve(annotation, state.Prompt)
	if !ok {
		state.Fail(msgNoDate)
		return
	}
	state.Date = date
	state.Status = model.StatusPartial
}
