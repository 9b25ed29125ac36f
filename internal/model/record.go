package model

import "encoding/json"

// RequestRecord is one structured order: a single model code plus the
// boolean feature formula and the normalized delivery date. When a
// prompt resolves several model codes, every record shares the same
// formula and date.
type RequestRecord struct {
	ModelCode      string `json:"modelCode"`
	BooleanFormula string `json:"booleanFormula"`
	Date           string `json:"date"`
}

// Result is what Interpret always returns: either one or more records,
// or a failure message. Exactly one of the two is populated.
type Result struct {
	Records []RequestRecord `json:"-"`
	Message string          `json:"-"`
}

// OK reports whether the interpretation produced records.
func (r *Result) OK() bool {
	return r.Message == "" && len(r.Records) > 0
}

// failurePayload is the wire shape of a failed interpretation.
type failurePayload struct {
	Message string `json:"message"`
}

// MarshalJSON renders the three result shapes: a single record as an
// object, multiple records as an array, and a failure as {"message"}.
func (r *Result) MarshalJSON() ([]byte, error) {
	if !r.OK() {
		return json.Marshal(failurePayload{Message: r.Message})
	}
	if len(r.Records) == 1 {
		return json.Marshal(r.Records[0])
	}
	return json.Marshal(r.Records)
}

// UnmarshalJSON accepts any of the three shapes produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var many []RequestRecord
	if err := json.Unmarshal(data, &many); err == nil {
		r.Records = many
		r.Message = ""
		return nil
	}

	var one RequestRecord
	if err := json.Unmarshal(data, &one); err == nil && one.ModelCode != "" {
		r.Records = []RequestRecord{one}
		r.Message = ""
		return nil
	}

	var failure failurePayload
	if err := json.Unmarshal(data, &failure); err != nil {
		return err
	}
	r.Records = nil
	r.Message = failure.Message
	return nil
}
