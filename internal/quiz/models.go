package quiz

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz is the persisted form of a quiz. All three text fields are mandatory
// on every create and update; updates replace the full document, carrying
// only CreatedAt over from the stored record.
type Quiz struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	Title                 string             `bson:"title"`
	Description           string             `bson:"description"`
	CandidateInstructions string             `bson:"candidateInstructions"`
	CreatedAt             time.Time          `bson:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt"`
}
