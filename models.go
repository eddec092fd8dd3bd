package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lg/nutrition-calculator-api/internal/nutrition"
)

// fieldText holds a numeric form field as the user entered it. In JSON it
// accepts a string, a number (kept as its literal text) or null (empty), so
// the validator sees the same raw text whether the client sent "70" or 70.
type fieldText string

func (f *fieldText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = fieldText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = fieldText(n)
	return nil
}

/* ─── Request / Response types ───────────────────────────────────────── */

// estimateRequest is the request body for POST /api/nutrition/estimate.
// Bound from JSON or from url-encoded / multipart form fields.
type estimateRequest struct {
	Height   fieldText `json:"height"   form:"height"`
	Weight   fieldText `json:"weight"   form:"weight"`
	Age      fieldText `json:"age"      form:"age"`
	Activity string    `json:"activity" form:"activity"`
}

func (r estimateRequest) raw() nutrition.RawInput {
	return nutrition.RawInput{
		Height:   string(r.Height),
		Weight:   string(r.Weight),
		Age:      string(r.Age),
		Activity: r.Activity,
	}
}

// estimateResponse is the response for POST /api/nutrition/estimate. Exactly
// one of Issues (state "invalid") or Estimate (state "valid") is set.
type estimateResponse struct {
	State    nutrition.State     `json:"state"`
	Issues   []nutrition.Issue   `json:"issues,omitempty"`
	Estimate *nutrition.Estimate `json:"estimate,omitempty"`
}
