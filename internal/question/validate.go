package question

import (
	"encoding/json"
	"time"

	"github.com/examforge/quizbank/internal/validate"
)

// payload mirrors the request body with raw fields so that a missing field,
// a null, and a wrong type are all distinguishable.
type payload struct {
	Kind             json.RawMessage `json:"kind"`
	Prompt           json.RawMessage `json:"prompt"`
	Options          json.RawMessage `json:"options"`
	CorrectOptionKey json.RawMessage `json:"correctOptionKey"`
}

// Parse validates a raw request body and normalizes it into a Question.
// createdAt carries the stored creation time on update; pass the zero value
// on create and the record is stamped with now. UpdatedAt is always now.
// Rejections are returned as *validate.Error.
func Parse(body []byte, now time.Time, createdAt time.Time) (Question, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Question{}, validate.Errf(validate.InvalidShape, "request body must be a JSON object")
	}
	kind, ok := validate.String(p.Kind)
	if !ok {
		return Question{}, validate.Errf(validate.InvalidShape, "kind must be a string")
	}
	prompt, ok := validate.String(p.Prompt)
	if !ok {
		return Question{}, validate.Errf(validate.InvalidShape, "prompt must be a string")
	}

	q := Question{
		Prompt:    prompt,
		Kind:      Kind(kind),
		CreatedAt: createdAt,
		UpdatedAt: now,
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}

	switch q.Kind {
	case KindFreeText:
		return q, nil
	case KindMultipleChoice:
	default:
		return Question{}, validate.Errf(validate.InvalidKind, "kind must be %q or %q", KindFreeText, KindMultipleChoice)
	}

	if validate.Absent(p.Options) {
		return Question{}, validate.Errf(validate.InvalidOptions, "options must be an object mapping option keys to option text")
	}
	var rawOpts map[string]json.RawMessage
	if err := json.Unmarshal(p.Options, &rawOpts); err != nil {
		return Question{}, validate.Errf(validate.InvalidOptions, "options must be an object mapping option keys to option text")
	}
	if len(rawOpts) < 2 {
		return Question{}, validate.Errf(validate.TooFewOptions, "options must contain at least 2 entries")
	}
	opts := make(map[string]string, len(rawOpts))
	for k, v := range rawOpts {
		s, ok := validate.String(v)
		if !ok {
			return Question{}, validate.Errf(validate.InvalidOptionTypes, "option %q must have a string value", k)
		}
		opts[k] = s
	}
	key, ok := validate.String(p.CorrectOptionKey)
	if !ok {
		return Question{}, validate.Errf(validate.InvalidCorrectKey, "correctOptionKey must be a string")
	}
	if _, present := opts[key]; !present {
		return Question{}, validate.Errf(validate.InvalidCorrectKey, "correctOptionKey must be one of the option keys")
	}

	q.Options = opts
	q.CorrectOptionKey = key
	return q, nil
}
