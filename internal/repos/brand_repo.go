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

type BrandRepo struct{ c *mongo.Collection }

func NewBrandRepo(db *mongo.Database) *BrandRepo {
	return &BrandRepo{c: db.Collection("brands")}
}

// brandFilter builds the listing filter: public callers see visible
// brands only, admin callers see everything. Sort is order ascending
// in both cases.
func brandFilter(includeHidden bool) bson.M {
	if includeHidden {
		return bson.M{}
	}
	return bson.M{"visible": true}
}

func (r *BrandRepo) List(ctx context.Context, includeHidden bool) ([]domain.Brand, error) {
	cur, err := r.c.Find(ctx, brandFilter(includeHidden),
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	out := []domain.Brand{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return out, nil
}

func (r *BrandRepo) Insert(ctx context.Context, b domain.Brand) (domain.Brand, error) {
	res, err := r.c.InsertOne(ctx, b)
	if err != nil {
		return domain.Brand{}, apperr.StoreUnavailable(err)
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return b, nil
}

// Update replaces the editable fields in place; created_at survives.
func (r *BrandRepo) Update(ctx context.Context, id primitive.ObjectID, b domain.Brand) error {
	set := bson.M{
		"name":        b.Name,
		"slug":        b.Slug,
		"logo_url":    b.LogoURL,
		"banner_url":  b.BannerURL,
		"description": b.Description,
		"visible":     b.Visible,
		"in_navbar":   b.InNavbar,
		"order":       b.Order,
		"updated_at":  b.UpdatedAt,
	}
	res, err := r.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("brand")
	}
	return nil
}

func (r *BrandRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFoundf("brand")
	}
	return nil
}
