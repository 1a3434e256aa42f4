package question

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "questions"

type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(collectionName)}
}

func (s *MongoStore) Insert(ctx context.Context, q Question) (Question, error) {
	res, err := s.col.InsertOne(ctx, q)
	if err != nil {
		return Question{}, err
	}
	q.ID = res.InsertedID.(primitive.ObjectID)
	return q, nil
}

func (s *MongoStore) Get(ctx context.Context, id primitive.ObjectID) (Question, error) {
	var q Question
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Question{}, ErrNotFound
		}
		return Question{}, err
	}
	return q, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Question, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []Question
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Replace(ctx context.Context, id primitive.ObjectID, q Question) (Question, error) {
	q.ID = id
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, q)
	if err != nil {
		return Question{}, err
	}
	if res.MatchedCount == 0 {
		return Question{}, ErrNotFound
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
