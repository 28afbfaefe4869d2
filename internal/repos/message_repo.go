package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stridewear/internal/apperr"
	"stridewear/internal/domain"
)

type MessageRepo struct{ c *mongo.Collection }

func NewMessageRepo(db *mongo.Database) *MessageRepo {
	return &MessageRepo{c: db.Collection("messages")}
}

func (r *MessageRepo) Insert(ctx context.Context, m domain.Message) (domain.Message, error) {
	res, err := r.c.InsertOne(ctx, m)
	if err != nil {
		return domain.Message{}, apperr.StoreUnavailable(err)
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return m, nil
}

// List returns every message, newest first.
func (r *MessageRepo) List(ctx context.Context) ([]domain.Message, error) {
	cur, err := r.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	out := []domain.Message{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return out, nil
}

func (r *MessageRepo) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("message")
	}
	return nil
}

func (r *MessageRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFoundf("message")
	}
	return nil
}
