package model

import "strings"

// Status tracks how far an interpretation got.
type Status string

const (
	StatusUnvalidated Status = "unvalidated" // no stage has run yet
	StatusPartial     Status = "partial"     // some stages passed, later ones pending
	StatusValid       Status = "valid"       // every stage passed
	StatusFailed      Status = "failed"      // a stage failed; later stages skipped
)

// InterpretationState is the mutable accumulator for one prompt. It is
// owned by a single interpretation, mutated stage by stage, and
// discarded once the request body is built. Diagnostics are append-only;
// once failed the status never recovers within the same interpretation.
type InterpretationState struct {
	Prompt     string   // lower-cased input text
	Status     Status
	Messages   []string // ordered stage diagnostics
	ModelCodes []string // resolved model-code catalog keys, in match order
	Formula    string   // resolved boolean formula
	Date       string   // resolved ISO date (YYYY-MM-DD)
}

// NewInterpretationState starts a fresh state for the given prompt.
// The prompt is lower-cased at ingestion and immutable afterward.
func NewInterpretationState(text string) *InterpretationState {
	return &InterpretationState{
		Prompt: strings.ToLower(text),
		Status: StatusUnvalidated,
	}
}

// Fail downgrades the state and appends a diagnostic. Appending never
// overwrites earlier messages, so the final payload carries every cause
// encountered before the pipeline stopped.
func (s *InterpretationState) Fail(message string) {
	s.Status = StatusFailed
	if message != "" {
		s.Messages = append(s.Messages, message)
	}
}

// Pass marks the current stage as successful. It has no effect once the
// state has failed.
func (s *InterpretationState) Pass() {
	if s.Status == StatusFailed {
		return
	}
	s.Status = StatusValid
}

// Failed reports whether a stage has already failed.
func (s *InterpretationState) Failed() bool {
	return s.Status == StatusFailed
}

// Message joins the accumulated diagnostics with ". " and trims the
// separator from both ends, matching the user-visible failure payload.
func (s *InterpretationState) Message() string {
	joined := strings.Join(s.Messages, ". ")
	return strings.Trim(joined, ". ")
}
