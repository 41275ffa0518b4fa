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

var newsDescriptor = Descriptor{
	Collection:   "news",
	SearchFields: []string{"title", "excerpt", "content"},
	TagFields:    []string{"tags"},
	DefaultSort:  bson.D{{Key: "created_at", Value: -1}},
}

// NewsRepository persists news articles, degrading reads to the sample
// catalog.
type NewsRepository struct {
	store *ContentStore[models.News]
}

// NewNewsRepository wires the two-tier news store.
func NewNewsRepository(db *mongo.Database, logger *zap.Logger, opts StoreOptions) *NewsRepository {
	primary := NewMongoStore[models.News](db, newsDescriptor, opts)
	fb := NewFallbackStore(newsDescriptor, fallback.NewsArticles())
	return &NewsRepository{store: NewContentStore(primary, fb, logger, opts.Observer)}
}

// List returns articles newest-first.
func (r *NewsRepository) List(ctx context.Context, f models.NewsFilter) ([]models.News, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	if f.Category != "" {
		p.Filter["category"] = f.Category
	}
	if f.Featured != nil {
		p.Filter["featured"] = *f.Featured
	}
	return r.store.List(ctx, p)
}

// FindByID looks an article up by object id.
func (r *NewsRepository) FindByID(ctx context.Context, id string) (*models.News, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// Insert persists a new article.
func (r *NewsRepository) Insert(ctx context.Context, n *models.News) error {
	return r.store.Insert(ctx, n)
}

// Update replaces the mutable fields of an article.
func (r *NewsRepository) Update(ctx context.Context, id string, n *models.News) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	set := bson.M{
		"title":      n.Title,
		"content":    n.Content,
		"excerpt":    n.Excerpt,
		"image":      n.Image,
		"category":   n.Category,
		"featured":   n.Featured,
		"tags":       n.Tags,
		"updated_at": n.UpdatedAt,
	}
	return r.store.Update(ctx, oid, set)
}

// IncrementViews bumps the article view counter.
func (r *NewsRepository) IncrementViews(ctx context.Context, id string, delta int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Increment(ctx, oid, "views", delta)
}

// Delete removes an article.
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
