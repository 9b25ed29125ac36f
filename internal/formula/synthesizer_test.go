package formula

import (
	"testing"

	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/model"
)

// tok builds one annotated token. dep is derived the way the annotators
// derive it: cc for coordinating conjunctions, punct for punctuation.
func tok(text, pos string) model.AnnotatedToken {
	dep := ""
	switch pos {
	case model.POSCoordConj:
		dep = model.DepCoordination
	case model.POSPunctuation:
		dep = model.DepPunctuation
	}
	return model.AnnotatedToken{Text: text, POS: pos, Dep: dep}
}

func newTestSynthesizer(t *testing.T) *Synthesizer {
	t.Helper()
	return NewSynthesizer(catalog.DefaultAbbreviations(), 85)
}

func TestSynthesize_SingleOption(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "with m sport package")
	if got != "+P33BA" {
		t.Errorf("expected +P33BA, got %q", got)
	}
}

func TestSynthesize_NegativePolarity(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("sunroof", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "without sunroof")
	if got != "-S403A" {
		t.Errorf("expected -S403A, got %q", got)
	}
}

func TestSynthesize_AndJoin(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
			tok("and", model.POSCoordConj),
			tok("sunroof", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "with m sport package and sunroof")
	if got != "+P33BA+S403A" {
		t.Errorf("expected +P33BA+S403A, got %q", got)
	}
}

func TestSynthesize_OrJoin(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
			tok("or", model.POSCoordConj),
			tok("sunroof", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "with m sport package or sunroof")
	if got != "+P33BA/+S403A" {
		t.Errorf("expected +P33BA/+S403A, got %q", got)
	}
}

// Polarity carries over from the previous segment when a segment names
// no cue of its own.
func TestSynthesize_PolarityCarryOver(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("sunroof", model.POSNoun),
			tok("and", model.POSCoordConj),
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "without sunroof and m sport package")
	if got != "-S403A-P33BA" {
		t.Errorf("expected -S403A-P33BA, got %q", got)
	}
}

func TestSynthesize_PolarityFlip(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("sunroof", model.POSNoun),
			tok("and", model.POSCoordConj),
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "without sunroof and with m sport package")
	if got != "-S403A+P33BA" {
		t.Errorf("expected -S403A+P33BA, got %q", got)
	}
}

// A narrow first coordination arc groups the FIRST pair.
func TestSynthesize_GroupFirstPair(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
			tok("and", model.POSCoordConj),
			tok("sunroof", model.POSNoun),
			tok("or", model.POSCoordConj),
			tok("comfort", model.POSNoun),
			tok("package", model.POSNoun),
			tok("eu", model.POSNoun),
		},
		Arcs: []model.DependencyArc{
			{Start: 2, End: 3, Label: model.DepCoordination, Dir: "right"},
			{Start: 4, End: 5, Label: model.DepCoordination, Dir: "right"},
		},
	}

	got := s.Synthesize(ann, "with m sport package and sunroof or comfort package eu")
	if got != "+(P33BA+S403A)/+P7LGA" {
		t.Errorf("expected +(P33BA+S403A)/+P7LGA, got %q", got)
	}
}

// A first arc wider than the second groups the SECOND pair instead.
func TestSynthesize_GroupSecondPair(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("sunroof", model.POSNoun),
			tok("or", model.POSCoordConj),
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
			tok("and", model.POSCoordConj),
			tok("comfort", model.POSNoun),
			tok("package", model.POSNoun),
			tok("eu", model.POSNoun),
		},
		Arcs: []model.DependencyArc{
			{Start: 0, End: 4, Label: model.DepCoordination, Dir: "right"},
			{Start: 4, End: 5, Label: model.DepCoordination, Dir: "right"},
		},
	}

	got := s.Synthesize(ann, "with sunroof or m sport package and comfort package eu")
	if got != "+S403A/+(P33BA+P7LGA)" {
		t.Errorf("expected +S403A/+(P33BA+P7LGA), got %q", got)
	}
}

// Mixed and/or with fewer than two coordination arcs falls back to no
// grouping at all.
func TestSynthesize_MixedCuesWithoutArcs(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
			tok("and", model.POSCoordConj),
			tok("sunroof", model.POSNoun),
			tok("or", model.POSCoordConj),
			tok("comfort", model.POSNoun),
			tok("package", model.POSNoun),
			tok("eu", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "with m sport package and sunroof or comfort package eu")
	if got != "+P33BA+S403A/+P7LGA" {
		t.Errorf("expected +P33BA+S403A/+P7LGA, got %q", got)
	}
}

// Catalog declaration order is the priority order: on a perfect-score
// tie the LAST declared entry wins, so the Sky Lounge variant shadows
// the plain glass roof.
func TestSynthesize_TieBreakPrefersLaterEntry(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("panorama", model.POSNoun),
			tok("glass", model.POSNoun),
			tok("roof", model.POSNoun),
		},
	}

	got := s.Synthesize(ann, "with panorama glass roof")
	if got != "+S407A" {
		t.Errorf("expected +S407A, got %q", got)
	}
}

// A base phrase that prefixes a longer catalog phrase scores a perfect
// partial overlap for both entries, and the later one wins: a bare
// "m sport package" segment resolves the Pro variant. Only surrounding
// segment text (as in TestSynthesize_FullPrompt) breaks the tie the
// other way.
func TestSynthesize_TieBreakOnPrefixPhrase(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
		},
	}

	if got := s.Synthesize(ann, "with m sport package"); got != "+P33BA" {
		t.Errorf("expected +P33BA, got %q", got)
	}
}

func TestSynthesize_NoMatch(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("delivery", model.POSNoun),
			tok("november", model.POSProperNoun),
		},
	}

	if got := s.Synthesize(ann, "delivery late november 2024"); got != "" {
		t.Errorf("expected empty formula, got %q", got)
	}
}

// The full end-to-end shape: model phrase, two options, trailing date
// clause. The date clause resolves no key, so its segment contributes
// nothing.
func TestSynthesize_FullPrompt(t *testing.T) {
	s := newTestSynthesizer(t)

	ann := &model.Annotation{
		Tokens: []model.AnnotatedToken{
			tok("ix", model.POSProperNoun),
			tok("xdrive50", model.POSNoun),
			tok("m", model.POSNoun),
			tok("sport", model.POSNoun),
			tok("package", model.POSNoun),
			tok("and", model.POSCoordConj),
			tok("sunroof", model.POSNoun),
			tok(",", model.POSPunctuation),
			tok("delivery", model.POSNoun),
			tok("late", model.POSAdjective),
			tok("november", model.POSProperNoun),
		},
	}

	got := s.Synthesize(ann, "ix xdrive50 with m sport package and sunroof, delivery late november 2024")
	if got != "+P337A+S403A" {
		t.Errorf("expected +P337A+S403A, got %q", got)
	}
}

func TestRepair(t *testing.T) {
	if got := repair("+(P337A+S403A)", []string{"P337A", "S403A", "P7LGA"}); got != "+(P337A+S403A)+P7LGA" {
		t.Errorf("expected dropped key re-appended, got %q", got)
	}

	// Nothing to repair
	if got := repair("+P337A", []string{"P337A", ""}); got != "+P337A" {
		t.Errorf("expected formula unchanged, got %q", got)
	}

	// An empty formula stays empty
	if got := repair("", []string{"P337A"}); got != "" {
		t.Errorf("expected empty formula, got %q", got)
	}
}

func TestSplitOnCues(t *testing.T) {
	segments := splitOnCues("a and b, c", []string{"and", ","})
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d: %v", len(segments), segments)
	}

	// No cues: one segment
	segments = splitOnCues("a and b", nil)
	if len(segments) != 1 || segments[0] != "a and b" {
		t.Errorf("expected whole text as one segment, got %v", segments)
	}

	// Word boundaries: "band" must not split on "and"
	segments = splitOnCues("band practice and more", []string{"and"})
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segments), segments)
	}
	if segments[0] != "band practice " {
		t.Errorf("unexpected first segment: %q", segments[0])
	}
}
