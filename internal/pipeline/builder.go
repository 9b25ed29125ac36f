package pipeline

import "github.com/orderlex/orderlex/internal/model"

// Builder assembles the request body from a finished interpretation
// state. Building never fails outward: an internal inconsistency marks
// the state failed and re-invokes the builder once, and the failed
// branch cannot recurse further.
type Builder struct{}

// NewBuilder creates a builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns one record per resolved model code when the state is
// valid, every record sharing the same formula and date; otherwise the
// accumulated, trimmed diagnostic message.
func (b *Builder) Build(state *model.InterpretationState) *model.Result {
	if state.Status == model.StatusValid {
		if len(state.ModelCodes) == 0 || state.Formula == "" || state.Date == "" {
			// A valid status with missing fields means a stage bug, not
			// a prompt problem. Mark failed and retry once; the retry
			// lands in the failure branch below.
			state.Fail("Error encountered while creating the request body, please check")
			return b.Build(state)
		}

		records := make([]model.RequestRecord, 0, len(state.ModelCodes))
		for _, code := range state.ModelCodes {
			records = append(records, model.RequestRecord{
				ModelCode:      code,
				BooleanFormula: state.Formula,
				Date:           state.Date,
			})
		}
		return &model.Result{Records: records}
	}

	return &model.Result{Message: state.Message()}
}
