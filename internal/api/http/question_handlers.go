package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/examforge/quizbank/internal/question"
)

// questionResource shapes a question per its variant: multiple_choice
// exposes options and correctOptionKey, free_text omits them.
func questionResource(q question.Question) Resource {
	attrs := map[string]any{
		"prompt":    q.Prompt,
		"kind":      q.Kind,
		"createdAt": q.CreatedAt,
		"updatedAt": q.UpdatedAt,
	}
	switch q.Kind {
	case question.KindFreeText:
	case question.KindMultipleChoice:
		attrs["options"] = q.Options
		attrs["correctOptionKey"] = q.CorrectOptionKey
	}
	return Resource{Type: "questions", ID: q.ID.Hex(), Attributes: attrs}
}

func CreateQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unable to read request body")
			return
		}
		q, err := question.Parse(body, time.Now().UTC(), time.Time{})
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := store.Insert(r.Context(), q)
		if err != nil {
			storeError(w, "insert question", err)
			return
		}
		writeData(w, http.StatusCreated, questionResource(created))
	}
}

func GetQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "questionID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid question ID")
			return
		}
		q, err := store.Get(r.Context(), id)
		if errors.Is(err, question.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Question not found")
			return
		}
		if err != nil {
			storeError(w, "get question", err)
			return
		}
		writeData(w, http.StatusOK, questionResource(q))
	}
}

func ListQuestionsHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := store.List(r.Context())
		if err != nil {
			storeError(w, "list questions", err)
			return
		}
		resources := make([]Resource, 0, len(qs))
		for _, q := range qs {
			resources = append(resources, questionResource(q))
		}
		writeData(w, http.StatusOK, resources)
	}
}

func UpdateQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "questionID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid question ID")
			return
		}
		existing, err := store.Get(r.Context(), id)
		if errors.Is(err, question.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Question not found")
			return
		}
		if err != nil {
			storeError(w, "get question", err)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unable to read request body")
			return
		}
		q, err := question.Parse(body, time.Now().UTC(), existing.CreatedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := store.Replace(r.Context(), id, q)
		if errors.Is(err, question.ErrNotFound) {
			// Deleted between the lookup above and the write.
			writeError(w, http.StatusNotFound, "Question not found")
			return
		}
		if err != nil {
			storeError(w, "replace question", err)
			return
		}
		writeData(w, http.StatusOK, questionResource(updated))
	}
}

func DeleteQuestionHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "questionID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid question ID")
			return
		}
		err = store.Delete(r.Context(), id)
		if errors.Is(err, question.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Question not found")
			return
		}
		if err != nil {
			storeError(w, "delete question", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
