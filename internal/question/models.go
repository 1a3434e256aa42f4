package question

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind discriminates the two question variants. It is fixed at validation
// time; serialization switches on it exhaustively.
type Kind string

const (
	KindFreeText       Kind = "free_text"
	KindMultipleChoice Kind = "multiple_choice"
)

// Question is the persisted form of a question. Options and CorrectOptionKey
// are only set for the multiple_choice variant and stay out of the document
// otherwise.
type Question struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Prompt           string             `bson:"prompt"`
	Kind             Kind               `bson:"kind"`
	Options          map[string]string  `bson:"options,omitempty"`
	CorrectOptionKey string             `bson:"correctOptionKey,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}
