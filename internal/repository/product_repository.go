package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/fallback"
	"github.com/azharul-dev/islamichub-api/internal/models"
)

var productDescriptor = Descriptor{
	Collection:   "products",
	SearchFields: []string{"name", "description", "sku"},
	DefaultSort:  bson.D{{Key: "created_at", Value: -1}},
}

// ProductRepository persists catalog items, degrading reads to the
// sample catalog.
type ProductRepository struct {
	store *ContentStore[models.Product]
}

// NewProductRepository wires the two-tier product store.
func NewProductRepository(db *mongo.Database, logger *zap.Logger, opts StoreOptions) *ProductRepository {
	primary := NewMongoStore[models.Product](db, productDescriptor, opts)
	fb := NewFallbackStore(productDescriptor, fallback.Products())
	return &ProductRepository{store: NewContentStore(primary, fb, logger, opts.Observer)}
}

// List returns products newest-first.
func (r *ProductRepository) List(ctx context.Context, f models.ProductFilter) ([]models.Product, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	if f.Category != "" {
		p.Filter["category"] = f.Category
	}
	if f.Featured != nil {
		p.Filter["featured"] = *f.Featured
	}
	if f.Active != nil {
		p.Filter["active"] = *f.Active
	}
	return r.store.List(ctx, p)
}

// FindByID looks a product up by object id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// SKUExists reports whether a SKU is already taken, optionally
// excluding one document.
func (r *ProductRepository) SKUExists(ctx context.Context, sku string, excludeID string) (bool, error) {
	filter := bson.M{"sku": sku}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	return r.store.Exists(ctx, filter)
}

// Insert persists a new product.
func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) error {
	return r.store.Insert(ctx, p)
}

// Update replaces the mutable fields of a product.
func (r *ProductRepository) Update(ctx context.Context, id string, p *models.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	set := bson.M{
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"original_price": p.OriginalPrice,
		"images":         p.Images,
		"category":       p.Category,
		"stock":          p.Stock,
		"sku":            p.SKU,
		"featured":       p.Featured,
		"active":         p.Active,
		"updated_at":     p.UpdatedAt,
	}
	return r.store.Update(ctx, oid, set)
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
