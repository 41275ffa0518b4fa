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

var videoDescriptor = Descriptor{
	Collection:   "videos",
	SearchFields: []string{"title", "description"},
	TagFields:    []string{"tags"},
	DefaultSort:  bson.D{{Key: "created_at", Value: -1}},
}

// VideoRepository persists videos, degrading reads to the sample catalog.
type VideoRepository struct {
	store *ContentStore[models.Video]
}

// NewVideoRepository wires the two-tier video store.
func NewVideoRepository(db *mongo.Database, logger *zap.Logger, opts StoreOptions) *VideoRepository {
	primary := NewMongoStore[models.Video](db, videoDescriptor, opts)
	fb := NewFallbackStore(videoDescriptor, fallback.Videos())
	return &VideoRepository{store: NewContentStore(primary, fb, logger, opts.Observer)}
}

// List returns videos newest-first.
func (r *VideoRepository) List(ctx context.Context, f models.VideoFilter) ([]models.Video, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	if f.Category != "" {
		p.Filter["category"] = f.Category
	}
	return r.store.List(ctx, p)
}

// FindByID looks a video up by object id.
func (r *VideoRepository) FindByID(ctx context.Context, id string) (*models.Video, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// Insert persists a new video.
func (r *VideoRepository) Insert(ctx context.Context, v *models.Video) error {
	return r.store.Insert(ctx, v)
}

// Update replaces the mutable fields of a video.
func (r *VideoRepository) Update(ctx context.Context, id string, v *models.Video) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	set := bson.M{
		"title":       v.Title,
		"description": v.Description,
		"video_url":   v.VideoURL,
		"thumbnail":   v.Thumbnail,
		"category":    v.Category,
		"duration":    v.Duration,
		"tags":        v.Tags,
		"updated_at":  v.UpdatedAt,
	}
	return r.store.Update(ctx, oid, set)
}

// IncrementViews bumps the video view counter.
func (r *VideoRepository) IncrementViews(ctx context.Context, id string, delta int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Increment(ctx, oid, "views", delta)
}

// Delete removes a video.
func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
