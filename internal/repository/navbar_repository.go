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

var navbarDescriptor = Descriptor{
	Collection:   "navbar",
	SearchFields: []string{"label"},
	DefaultSort:  bson.D{{Key: "order", Value: 1}},
}

// NavbarRepository persists navigation links, degrading reads to the
// sample catalog.
type NavbarRepository struct {
	store *ContentStore[models.NavLink]
}

// NewNavbarRepository wires the two-tier navbar store.
func NewNavbarRepository(db *mongo.Database, logger *zap.Logger, opts StoreOptions) *NavbarRepository {
	primary := NewMongoStore[models.NavLink](db, navbarDescriptor, opts)
	fb := NewFallbackStore(navbarDescriptor, fallback.NavLinks())
	return &NavbarRepository{store: NewContentStore(primary, fb, logger, opts.Observer)}
}

// List returns links in display order.
func (r *NavbarRepository) List(ctx context.Context, f models.NavbarFilter) ([]models.NavLink, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	return r.store.List(ctx, p)
}

// FindByID looks a link up by object id.
func (r *NavbarRepository) FindByID(ctx context.Context, id string) (*models.NavLink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// Insert persists a new link.
func (r *NavbarRepository) Insert(ctx context.Context, l *models.NavLink) error {
	return r.store.Insert(ctx, l)
}

// Update replaces the mutable fields of a link.
func (r *NavbarRepository) Update(ctx context.Context, id string, l *models.NavLink) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	set := bson.M{
		"label":      l.Label,
		"url":        l.URL,
		"order":      l.Order,
		"visible":    l.Visible,
		"updated_at": l.UpdatedAt,
	}
	return r.store.Update(ctx, oid, set)
}

// Delete removes a link.
func (r *NavbarRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
