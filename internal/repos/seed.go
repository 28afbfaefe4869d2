package repos

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stridewear/internal/domain"
)

// Seed inserts demo brands and products. Each collection is skipped
// when it already has documents, so running the seeder twice is safe.
func Seed(ctx context.Context, db *mongo.Database) error {
	if err := seedBrands(ctx, db.Collection("brands")); err != nil {
		return err
	}
	return seedProducts(ctx, db.Collection("products"))
}

func seedBrands(ctx context.Context, c *mongo.Collection) error {
	n, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[seed] brands collection has %d documents, skipping", n)
		return nil
	}

	now := time.Now().UTC()
	mk := func(name, slug, desc string, order int) any {
		return domain.Brand{
			Name:        name,
			Slug:        slug,
			LogoURL:     "https://via.placeholder.com/150x50.png?text=" + name + "+Logo",
			BannerURL:   "https://via.placeholder.com/1200x400.png?text=" + name + "+Banner",
			Description: desc,
			Visible:     true,
			InNavbar:    true,
			Order:       order,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	brands := []any{
		mk("BEST", "best", "Premium PU Slippers Collection", 1),
		mk("Walkaroo", "walkaroo", "Comfortable PU Slippers for Every Occasion", 2),
		mk("Action", "action", "EVA Footwear, School Shoes & Sneakers", 3),
		mk("Brilliant", "brilliant", "Quality Footwear for Everyone", 4),
		mk("Chinese", "chinese", "Affordable and Stylish Footwear", 5),
	}
	res, err := c.InsertMany(ctx, brands)
	if err != nil {
		return err
	}
	log.Printf("[seed] inserted %d brands", len(res.InsertedIDs))
	return nil
}

func seedProducts(ctx context.Context, c *mongo.Collection) error {
	n, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[seed] products collection has %d documents, skipping", n)
		return nil
	}

	now := time.Now().UTC()
	mk := func(name, brand, category, desc, status string, sizes []string) any {
		return domain.Product{
			Name:        name,
			Brand:       brand,
			Category:    category,
			Description: desc,
			Images:      []string{"https://via.placeholder.com/600x600.png?text=" + brand},
			Sizes:       sizes,
			Status:      status,
			Featured:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	adult := []string{"7", "8", "9", "10", "11"}
	products := []any{
		mk("Comfort PU Slippers", "best", "mens",
			"Premium quality PU material with enhanced comfort", domain.StatusAvailable, adult),
		mk("Elite PU Slippers", "best", "womens",
			"Stylish design with superior comfort technology", domain.StatusAvailable,
			[]string{"6", "7", "8", "9", "10"}),
		mk("Walkaroo Comfort", "walkaroo", "mens",
			"Enhanced comfort with premium PU construction", domain.StatusAvailable, adult),
		mk("Action EVA Sports", "action", "mens",
			"Lightweight EVA material for active lifestyle", domain.StatusAvailable, adult),
		mk("Action School Shoes", "action", "kids",
			"Durable and comfortable for daily school wear", domain.StatusAvailable,
			[]string{"1", "2", "3", "4", "5", "6"}),
		mk("Action Sneakers", "action", "unisex",
			"Premium sneakers launching soon", domain.StatusComingSoon, adult),
	}
	res, err := c.InsertMany(ctx, products)
	if err != nil {
		return err
	}
	log.Printf("[seed] inserted %d products", len(res.InsertedIDs))
	return nil
}
