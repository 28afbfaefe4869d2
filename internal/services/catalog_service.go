package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stridewear/internal/domain"
)

// BrandStore and ProductStore are the document-store views the
// catalog needs; internal/repos provides the Mongo-backed ones.
type BrandStore interface {
	List(ctx context.Context, includeHidden bool) ([]domain.Brand, error)
	Insert(ctx context.Context, b domain.Brand) (domain.Brand, error)
	Update(ctx context.Context, id primitive.ObjectID, b domain.Brand) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductStore interface {
	List(ctx context.Context, brand, category, search string) ([]domain.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, p domain.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CatalogService struct {
	Brands BrandStore
	Prods  ProductStore
}

func NewCatalogService(brands BrandStore, prods ProductStore) *CatalogService {
	return &CatalogService{Brands: brands, Prods: prods}
}

func (s *CatalogService) ListBrands(ctx context.Context, includeHidden bool) ([]domain.Brand, error) {
	return s.Brands.List(ctx, includeHidden)
}

func (s *CatalogService) CreateBrand(ctx context.Context, b domain.Brand) (domain.Brand, error) {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.Brands.Insert(ctx, b)
}

func (s *CatalogService) UpdateBrand(ctx context.Context, id primitive.ObjectID, b domain.Brand) error {
	b.UpdatedAt = time.Now().UTC()
	return s.Brands.Update(ctx, id, b)
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id primitive.ObjectID) error {
	return s.Brands.Delete(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, brand, category, search string) ([]domain.Product, error) {
	return s.Prods.List(ctx, brand, category, search)
}

func (s *CatalogService) GetProduct(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	return s.Prods.Get(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p = normalizeProduct(p)
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.Prods.Insert(ctx, p)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id primitive.ObjectID, p domain.Product) error {
	p = normalizeProduct(p)
	p.UpdatedAt = time.Now().UTC()
	return s.Prods.Update(ctx, id, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return s.Prods.Delete(ctx, id)
}

func normalizeProduct(p domain.Product) domain.Product {
	if p.Status == "" {
		p.Status = domain.StatusAvailable
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	return p
}
