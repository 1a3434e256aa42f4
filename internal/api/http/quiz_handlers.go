package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/examforge/quizbank/internal/quiz"
)

func quizResource(z quiz.Quiz) Resource {
	return Resource{
		Type: "quizzes",
		ID:   z.ID.Hex(),
		Attributes: map[string]any{
			"title":                 z.Title,
			"description":           z.Description,
			"candidateInstructions": z.CandidateInstructions,
			"createdAt":             z.CreatedAt,
			"updatedAt":             z.UpdatedAt,
		},
	}
}

func CreateQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unable to read request body")
			return
		}
		z, err := quiz.Parse(body, time.Now().UTC(), time.Time{})
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := store.Insert(r.Context(), z)
		if err != nil {
			storeError(w, "insert quiz", err)
			return
		}
		writeData(w, http.StatusCreated, quizResource(created))
	}
}

func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "quizID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid quiz ID")
			return
		}
		z, err := store.Get(r.Context(), id)
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			storeError(w, "get quiz", err)
			return
		}
		writeData(w, http.StatusOK, quizResource(z))
	}
}

// ListQuizzesHandler returns the whole collection; it takes no path
// parameters.
func ListQuizzesHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zs, err := store.List(r.Context())
		if err != nil {
			storeError(w, "list quizzes", err)
			return
		}
		resources := make([]Resource, 0, len(zs))
		for _, z := range zs {
			resources = append(resources, quizResource(z))
		}
		writeData(w, http.StatusOK, resources)
	}
}

func UpdateQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "quizID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid quiz ID")
			return
		}
		existing, err := store.Get(r.Context(), id)
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			storeError(w, "get quiz", err)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unable to read request body")
			return
		}
		z, err := quiz.Parse(body, time.Now().UTC(), existing.CreatedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := store.Replace(r.Context(), id, z)
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			storeError(w, "replace quiz", err)
			return
		}
		writeData(w, http.StatusOK, quizResource(updated))
	}
}

func DeleteQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "quizID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid quiz ID")
			return
		}
		err = store.Delete(r.Context(), id)
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		if err != nil {
			storeError(w, "delete quiz", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
