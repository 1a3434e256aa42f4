package quiz

import (
	"encoding/json"
	"time"

	"github.com/examforge/quizbank/internal/validate"
)

type payload struct {
	Title                 json.RawMessage `json:"title"`
	Description           json.RawMessage `json:"description"`
	CandidateInstructions json.RawMessage `json:"candidateInstructions"`
}

// Parse validates a raw request body and normalizes it into a Quiz.
// createdAt carries the stored creation time on update; pass the zero value
// on create. UpdatedAt is always now.
func Parse(body []byte, now time.Time, createdAt time.Time) (Quiz, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Quiz{}, validate.Errf(validate.InvalidShape, "request body must be a JSON object")
	}
	title, ok := validate.String(p.Title)
	if !ok {
		return Quiz{}, validate.Errf(validate.InvalidShape, "title must be a string")
	}
	description, ok := validate.String(p.Description)
	if !ok {
		return Quiz{}, validate.Errf(validate.InvalidShape, "description must be a string")
	}
	instructions, ok := validate.String(p.CandidateInstructions)
	if !ok {
		return Quiz{}, validate.Errf(validate.InvalidShape, "candidateInstructions must be a string")
	}

	z := Quiz{
		Title:                 title,
		Description:           description,
		CandidateInstructions: instructions,
		CreatedAt:             createdAt,
		UpdatedAt:             now,
	}
	if z.CreatedAt.IsZero() {
		z.CreatedAt = now
	}
	return z, nil
}
