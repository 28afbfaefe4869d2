package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stridewear/internal/apperr"
	"stridewear/internal/domain"
)

type SettingsRepo struct{ c *mongo.Collection }

func NewSettingsRepo(db *mongo.Database) *SettingsRepo {
	return &SettingsRepo{c: db.Collection("settings")}
}

// Get fetches the singleton document as a loose map so keys written
// verbatim by Put survive a round trip.
func (r *SettingsRepo) Get(ctx context.Context) (map[string]any, error) {
	var doc bson.M
	err := r.c.FindOne(ctx, bson.M{"key": domain.SettingsKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFoundf("settings")
	}
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return doc, nil
}

// Put merge-upserts the provided fields into the singleton. Only the
// given keys are set; the document is created on first write.
func (r *SettingsRepo) Put(ctx context.Context, fields map[string]any) error {
	set := bson.M{"key": domain.SettingsKey}
	for k, v := range fields {
		if k == "_id" || k == "key" {
			continue
		}
		set[k] = v
	}
	_, err := r.c.UpdateOne(ctx,
		bson.M{"key": domain.SettingsKey},
		bson.M{"$set": set},
		options.Update().SetUpsert(true))
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	return nil
}
