package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/examforge/quizbank/internal/question"
	"github.com/examforge/quizbank/internal/quiz"
)

// Mount registers the question and quiz resource routes on r.
func Mount(r chi.Router, questions question.Store, quizzes quiz.Store) {
	r.Route("/questions", func(qr chi.Router) {
		qr.Post("/", CreateQuestionHandler(questions))
		qr.Get("/", ListQuestionsHandler(questions))
		qr.Get("/{questionID}", GetQuestionHandler(questions))
		qr.Patch("/{questionID}", UpdateQuestionHandler(questions))
		qr.Delete("/{questionID}", DeleteQuestionHandler(questions))
	})
	r.Route("/quizzes", func(zr chi.Router) {
		zr.Post("/", CreateQuizHandler(quizzes))
		zr.Get("/", ListQuizzesHandler(quizzes))
		zr.Get("/{quizID}", GetQuizHandler(quizzes))
		zr.Patch("/{quizID}", UpdateQuizHandler(quizzes))
		zr.Delete("/{quizID}", DeleteQuizHandler(quizzes))
	})
}
