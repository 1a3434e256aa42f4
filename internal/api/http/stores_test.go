package http_test

import (
	"context"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	api "github.com/examforge/quizbank/internal/api/http"
	"github.com/examforge/quizbank/internal/question"
	"github.com/examforge/quizbank/internal/quiz"
)

/* ---------------- In-memory fakes that satisfy question.Store & quiz.Store ---------------- */

type fakeQuestionStore struct {
	docs  map[primitive.ObjectID]question.Question
	calls int
	fail  error

	// dropOnGet simulates a concurrent delete: Get serves the document,
	// then removes it so the following write matches nothing.
	dropOnGet bool
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{docs: map[primitive.ObjectID]question.Question{}}
}

func (s *fakeQuestionStore) Insert(_ context.Context, q question.Question) (question.Question, error) {
	s.calls++
	if s.fail != nil {
		return question.Question{}, s.fail
	}
	q.ID = primitive.NewObjectID()
	s.docs[q.ID] = q
	return q, nil
}

func (s *fakeQuestionStore) Get(_ context.Context, id primitive.ObjectID) (question.Question, error) {
	s.calls++
	if s.fail != nil {
		return question.Question{}, s.fail
	}
	q, ok := s.docs[id]
	if !ok {
		return question.Question{}, question.ErrNotFound
	}
	if s.dropOnGet {
		delete(s.docs, id)
	}
	return q, nil
}

func (s *fakeQuestionStore) List(_ context.Context) ([]question.Question, error) {
	s.calls++
	if s.fail != nil {
		return nil, s.fail
	}
	out := make([]question.Question, 0, len(s.docs))
	for _, q := range s.docs {
		out = append(out, q)
	}
	return out, nil
}

func (s *fakeQuestionStore) Replace(_ context.Context, id primitive.ObjectID, q question.Question) (question.Question, error) {
	s.calls++
	if s.fail != nil {
		return question.Question{}, s.fail
	}
	if _, ok := s.docs[id]; !ok {
		return question.Question{}, question.ErrNotFound
	}
	q.ID = id
	s.docs[id] = q
	return q, nil
}

func (s *fakeQuestionStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.calls++
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.docs[id]; !ok {
		return question.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

type fakeQuizStore struct {
	docs  map[primitive.ObjectID]quiz.Quiz
	calls int
	fail  error

	dropOnGet bool
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{docs: map[primitive.ObjectID]quiz.Quiz{}}
}

func (s *fakeQuizStore) Insert(_ context.Context, z quiz.Quiz) (quiz.Quiz, error) {
	s.calls++
	if s.fail != nil {
		return quiz.Quiz{}, s.fail
	}
	z.ID = primitive.NewObjectID()
	s.docs[z.ID] = z
	return z, nil
}

func (s *fakeQuizStore) Get(_ context.Context, id primitive.ObjectID) (quiz.Quiz, error) {
	s.calls++
	if s.fail != nil {
		return quiz.Quiz{}, s.fail
	}
	z, ok := s.docs[id]
	if !ok {
		return quiz.Quiz{}, quiz.ErrNotFound
	}
	if s.dropOnGet {
		delete(s.docs, id)
	}
	return z, nil
}

func (s *fakeQuizStore) List(_ context.Context) ([]quiz.Quiz, error) {
	s.calls++
	if s.fail != nil {
		return nil, s.fail
	}
	out := make([]quiz.Quiz, 0, len(s.docs))
	for _, z := range s.docs {
		out = append(out, z)
	}
	return out, nil
}

func (s *fakeQuizStore) Replace(_ context.Context, id primitive.ObjectID, z quiz.Quiz) (quiz.Quiz, error) {
	s.calls++
	if s.fail != nil {
		return quiz.Quiz{}, s.fail
	}
	if _, ok := s.docs[id]; !ok {
		return quiz.Quiz{}, quiz.ErrNotFound
	}
	z.ID = id
	s.docs[id] = z
	return z, nil
}

func (s *fakeQuizStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.calls++
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.docs[id]; !ok {
		return quiz.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func newRouter(qs question.Store, zs quiz.Store) nethttp.Handler {
	r := chi.NewRouter()
	api.Mount(r, qs, zs)
	return r
}
