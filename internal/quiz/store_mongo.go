package quiz

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "quizzes"

type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(collectionName)}
}

func (s *MongoStore) Insert(ctx context.Context, z Quiz) (Quiz, error) {
	res, err := s.col.InsertOne(ctx, z)
	if err != nil {
		return Quiz{}, err
	}
	z.ID = res.InsertedID.(primitive.ObjectID)
	return z, nil
}

func (s *MongoStore) Get(ctx context.Context, id primitive.ObjectID) (Quiz, error) {
	var z Quiz
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&z); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Quiz{}, ErrNotFound
		}
		return Quiz{}, err
	}
	return z, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Quiz, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []Quiz
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Replace(ctx context.Context, id primitive.ObjectID, z Quiz) (Quiz, error) {
	z.ID = id
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, z)
	if err != nil {
		return Quiz{}, err
	}
	if res.MatchedCount == 0 {
		return Quiz{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
