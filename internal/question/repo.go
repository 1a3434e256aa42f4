package question

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by lookups and mutations that match no document.
var ErrNotFound = errors.New("question not found")

type Store interface {
	Insert(ctx context.Context, q Question) (Question, error)
	Get(ctx context.Context, id primitive.ObjectID) (Question, error)
	List(ctx context.Context) ([]Question, error)
	// Replace swaps the full document and returns the stored result.
	// Returns ErrNotFound when the id matched nothing (e.g. deleted between
	// the caller's existence check and the write).
	Replace(ctx context.Context, id primitive.ObjectID, q Question) (Question, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
