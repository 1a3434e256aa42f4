package quiz_test

import (
	"errors"
	"testing"
	"time"

	"github.com/examforge/quizbank/internal/quiz"
	"github.com/examforge/quizbank/internal/validate"
)

var now = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func TestParseQuiz(t *testing.T) {
	body := []byte(`{"title":"T","description":"D","candidateInstructions":"C"}`)
	z, err := quiz.Parse(body, now, time.Time{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if z.Title != "T" || z.Description != "D" || z.CandidateInstructions != "C" {
		t.Fatalf("unexpected quiz: %+v", z)
	}
	if !z.CreatedAt.Equal(now) || !z.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not stamped with now: %+v", z)
	}
}

func TestParseQuizPreservesCreatedAt(t *testing.T) {
	created := now.Add(-time.Hour)
	z, err := quiz.Parse([]byte(`{"title":"T","description":"D","candidateInstructions":"C"}`), now, created)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !z.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt changed on update: %v", z.CreatedAt)
	}
	if !z.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt not refreshed: %v", z.UpdatedAt)
	}
}

func TestParseQuizRejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not an object", `"quiz"`},
		{"missing title", `{"description":"D","candidateInstructions":"C"}`},
		{"missing description", `{"title":"T","candidateInstructions":"C"}`},
		{"missing instructions", `{"title":"T","description":"D"}`},
		{"numeric title", `{"title":1,"description":"D","candidateInstructions":"C"}`},
		{"null description", `{"title":"T","description":null,"candidateInstructions":"C"}`},
		{"object instructions", `{"title":"T","description":"D","candidateInstructions":{}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := quiz.Parse([]byte(tc.body), now, time.Time{})
			var verr *validate.Error
			if !errors.As(err, &verr) {
				t.Fatalf("want *validate.Error, got %v", err)
			}
			if verr.Reason != validate.InvalidShape {
				t.Fatalf("reason = %q, want %q", verr.Reason, validate.InvalidShape)
			}
		})
	}
}
