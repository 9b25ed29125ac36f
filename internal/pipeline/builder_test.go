package pipeline

import (
	"testing"

	"github.com/orderlex/orderlex/internal/model"
)

func TestBuilder_OneRecordPerModelCode(t *testing.T) {
	state := model.NewInterpretationState("ix with sunroof, 2024-06-01")
	state.ModelCodes = []string{"21CF", "11CF"}
	state.Formula = "+S403A"
	state.Date = "2024-06-01"
	state.Status = model.StatusValid

	result := NewBuilder().Build(state)
	if !result.OK() {
		t.Fatalf("expected records, got message %q", result.Message)
	}
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
	for i, code := range []string{"21CF", "11CF"} {
		record := result.Records[i]
		if record.ModelCode != code || record.BooleanFormula != "+S403A" || record.Date != "2024-06-01" {
			t.Errorf("record %d: unexpected content %+v", i, record)
		}
	}
}

func TestBuilder_FailedState(t *testing.T) {
	state := model.NewInterpretationState("gibberish")
	state.Fail("Prompt doesn't include a valid date, please check")

	result := NewBuilder().Build(state)
	if result.OK() {
		t.Fatal("expected failure result")
	}
	if result.Message != "Prompt doesn't include a valid date, please check" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

// A valid status with missing fields is a stage bug: the builder
// downgrades the state and reports instead of emitting a broken record.
func TestBuilder_InconsistentState(t *testing.T) {
	state := model.NewInterpretationState("318i with sunroof")
	state.ModelCodes = []string{"28FF"}
	state.Formula = "+S403A"
	// Date missing
	state.Status = model.StatusValid

	result := NewBuilder().Build(state)
	if result.OK() {
		t.Fatal("expected failure result")
	}
	if result.Message != "Error encountered while creating the request body, please check" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if state.Status != model.StatusFailed {
		t.Errorf("expected state downgraded to failed, got %s", state.Status)
	}
}
