package nutrition

import (
	"errors"
	"fmt"
)

// State is where the calculator currently stands.
type State int

const (
	StateIdle State = iota // nothing submitted yet
	StateInvalid
	StateValid
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInvalid:
		return "invalid"
	case StateValid:
		return "valid"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText renders the state as its name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is the result of the latest submission. The zero value is idle.
// Issues is set only when invalid, Estimate only when valid. Callers hold
// one Outcome and replace it on every submission; nothing is merged.
type Outcome struct {
	State    State
	Issues   []Issue
	Estimate *Estimate
}

// Submit runs one validate-then-estimate pass.
func Submit(raw RawInput) Outcome {
	in, err := Validate(raw)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return Outcome{State: StateInvalid, Issues: verr.Issues()}
		}
		// Anything else would be a bug; report it without the detail.
		return Outcome{State: StateInvalid, Issues: []Issue{{Message: MsgUnexpected}}}
	}
	est := in.Estimate()
	return Outcome{State: StateValid, Estimate: &est}
}
