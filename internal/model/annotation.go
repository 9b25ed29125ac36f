package model

// Universal part-of-speech tags used by the interpretation stages.
// Only the tags the pipeline filters on are named; annotators may emit
// others (ADP, DET, ...) and they pass through untouched.
const (
	POSProperNoun  = "PROPN"
	POSNoun        = "NOUN"
	POSVerb        = "VERB"
	POSAdjective   = "ADJ"
	POSCoordConj   = "CCONJ"
	POSPunctuation = "PUNCT"
)

// Dependency labels the pipeline reads. "cc" marks a coordinating
// conjunction, "punct" a punctuation boundary.
const (
	DepCoordination = "cc"
	DepPunctuation  = "punct"
)

// Entity labels required from an annotator.
const (
	EntityDate     = "DATE"
	EntityCardinal = "CARDINAL"
)

// AnnotatedToken is one token of the prompt with its linguistic features.
// Produced once per prompt by the annotator and read-only afterward.
type AnnotatedToken struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`   // universal tag (NOUN, VERB, ...)
	Tag     string `json:"tag"`   // fine-grained tag (NN, VBD, ...)
	Dep     string `json:"dep"`   // dependency label (cc, punct, ...)
	Shape   string `json:"shape"` // shape signature (Xxxx, dd, ...)
	IsAlpha bool   `json:"is_alpha"`
	IsStop  bool   `json:"is_stop"`
	IsOOV   bool   `json:"is_oov"` // out of the annotator's vocabulary
}

// DependencyArc links two token positions. Only coordination arcs are
// consumed downstream, to decide bracket placement.
type DependencyArc struct {
	Start int    `json:"start"` // index of the left token
	End   int    `json:"end"`   // index of the right token
	Label string `json:"label"`
	Dir   string `json:"dir"` // "left" or "right"
}

// Width returns the token span covered by the arc.
func (a DependencyArc) Width() int {
	return a.End - a.Start
}

// Entity is a labelled span of the prompt (DATE, CARDINAL, ...).
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotation is the complete annotator output for one prompt.
type Annotation struct {
	Tokens   []AnnotatedToken `json:"tokens"`
	Arcs     []DependencyArc  `json:"arcs"`
	Entities []Entity         `json:"entities"`
}

// CueTokens returns the conjunction cue tokens, in order: tokens whose
// dependency label is cc or punct and whose surface text is one of
// "and", "or", "," or ".".
func (a *Annotation) CueTokens() []string {
	var cues []string
	for _, tok := range a.Tokens {
		if tok.Dep != DepCoordination && tok.Dep != DepPunctuation {
			continue
		}
		switch tok.Text {
		case "and", "or", ",", ".":
			cues = append(cues, tok.Text)
		}
	}
	return cues
}

// CoordinationArcs returns the arcs labelled cc, in order.
func (a *Annotation) CoordinationArcs() []DependencyArc {
	var arcs []DependencyArc
	for _, arc := range a.Arcs {
		if arc.Label == DepCoordination {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}
