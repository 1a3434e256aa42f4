// Package validate carries the shared pieces of request-payload validation:
// the typed rejection error returned by the domain parsers and helpers for
// inspecting raw JSON fields.
package validate

import (
	"encoding/json"
	"fmt"
)

// Reason classifies why a payload was rejected. Every reason maps to a 400
// at the HTTP layer; the detail string is what clients see.
type Reason string

const (
	InvalidShape       Reason = "invalid_shape"
	InvalidKind        Reason = "invalid_kind"
	InvalidOptions     Reason = "invalid_options"
	TooFewOptions      Reason = "too_few_options"
	InvalidOptionTypes Reason = "invalid_option_types"
	InvalidCorrectKey  Reason = "invalid_correct_key"
)

// Error is a client-correctable rejection of a request payload.
type Error struct {
	Reason Reason
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func Errf(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// String decodes raw as a JSON string. ok is false when the field is absent,
// null, or not a string.
func String(raw json.RawMessage) (string, bool) {
	if Absent(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Absent reports whether a raw field was missing from the payload or null.
func Absent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
