package quiz

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by lookups and mutations that match no document.
var ErrNotFound = errors.New("quiz not found")

type Store interface {
	Insert(ctx context.Context, z Quiz) (Quiz, error)
	Get(ctx context.Context, id primitive.ObjectID) (Quiz, error)
	List(ctx context.Context) ([]Quiz, error)
	// Replace swaps the full document and returns the stored result.
	// Returns ErrNotFound when the id matched nothing.
	Replace(ctx context.Context, id primitive.ObjectID, z Quiz) (Quiz, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
