// Package nutrition validates the nutrition calculator form and derives the
// daily intake recommendation from it. Everything here is pure: no I/O, no
// package state.
package nutrition

import (
	"math"
	"strconv"
	"strings"
)

// Per-field messages. Missing and out-of-range values share one message.
const (
	MsgHeightRequired   = "Height is required"
	MsgWeightRequired   = "Weight is required"
	MsgAgeRequired      = "Age is required"
	MsgActivityRequired = "Activity level is required"

	// MsgUnexpected is shown for failures that are not a field constraint.
	MsgUnexpected = "Unexpected error occurred"
)

// RawInput is one form submission as the user typed it.
type RawInput struct {
	Height   string
	Weight   string
	Age      string
	Activity string
}

// Input is a submission that passed Validate. Fields are unexported so the
// only way to get a non-zero Input is through Validate.
type Input struct {
	height   float64
	weight   float64
	age      float64
	activity Activity
}

func (in Input) Height() float64    { return in.height }
func (in Input) Weight() float64    { return in.weight }
func (in Input) Age() float64       { return in.age }
func (in Input) Activity() Activity { return in.activity }

// Issue is a single failed field constraint.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError carries every issue found in one submission, ordered
// height, weight, age, activity.
type ValidationError struct {
	issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.issues))
	for i, is := range e.issues {
		msgs[i] = is.Message
	}
	return strings.Join(msgs, "; ")
}

// Issues returns a copy of the ordered issue list.
func (e *ValidationError) Issues() []Issue {
	out := make([]Issue, len(e.issues))
	copy(out, e.issues)
	return out
}

// Validate checks every field independently and returns either a clean Input
// or a *ValidationError listing all violations. There is no partial result.
func Validate(raw RawInput) (Input, error) {
	var issues []Issue

	height, ok := parsePositive(raw.Height)
	if !ok {
		issues = append(issues, Issue{Field: "height", Message: MsgHeightRequired})
	}
	weight, ok := parsePositive(raw.Weight)
	if !ok {
		issues = append(issues, Issue{Field: "weight", Message: MsgWeightRequired})
	}
	age, ok := parsePositive(raw.Age)
	if !ok {
		issues = append(issues, Issue{Field: "age", Message: MsgAgeRequired})
	}
	activity, ok := parseActivity(raw.Activity)
	if !ok {
		issues = append(issues, Issue{Field: "activity", Message: MsgActivityRequired})
	}

	if len(issues) > 0 {
		return Input{}, &ValidationError{issues: issues}
	}
	return Input{height: height, weight: weight, age: age, activity: activity}, nil
}

// parsePositive parses s as a finite number greater than zero. Anything that
// does not parse (including the empty string) counts as a failed check.
func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, v > 0
}
