package repos

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stridewear/internal/apperr"
	"stridewear/internal/domain"
)

type ProductRepo struct{ c *mongo.Collection }

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{c: db.Collection("products")}
}

// listFilter composes the public product query: hidden items are
// always excluded, brand/category are exact matches, and a non-empty
// search term becomes a case-insensitive substring match on name or
// description. The term is escaped so it matches literally. An
// empty or whitespace term adds no clause at all.
func listFilter(brand, category, search string) bson.M {
	f := bson.M{"status": bson.M{"$ne": domain.StatusHidden}}
	if brand != "" {
		f["brand"] = brand
	}
	if category != "" {
		f["category"] = category
	}
	if term := strings.TrimSpace(search); term != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		f["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
		}
	}
	return f
}

func (r *ProductRepo) List(ctx context.Context, brand, category, search string) ([]domain.Product, error) {
	cur, err := r.c.Find(ctx, listFilter(brand, category, search),
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	out := []domain.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	var p domain.Product
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, apperr.NotFoundf("product")
	}
	if err != nil {
		return domain.Product{}, apperr.StoreUnavailable(err)
	}
	return p, nil
}

func (r *ProductRepo) Insert(ctx context.Context, p domain.Product) (domain.Product, error) {
	res, err := r.c.InsertOne(ctx, p)
	if err != nil {
		return domain.Product{}, apperr.StoreUnavailable(err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *ProductRepo) Update(ctx context.Context, id primitive.ObjectID, p domain.Product) error {
	set := bson.M{
		"name":        p.Name,
		"brand":       p.Brand,
		"category":    p.Category,
		"description": p.Description,
		"images":      p.Images,
		"sizes":       p.Sizes,
		"status":      p.Status,
		"featured":    p.Featured,
		"updated_at":  p.UpdatedAt,
	}
	res, err := r.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("product")
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.StoreUnavailable(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFoundf("product")
	}
	return nil
}
