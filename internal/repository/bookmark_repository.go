package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/azharul-dev/islamichub-api/internal/models"
)

var bookmarkDescriptor = Descriptor{
	Collection:  "bookmarks",
	DefaultSort: bson.D{{Key: "created_at", Value: -1}},
}

// BookmarkRepository persists per-user bookmarks. Bookmarks are private
// user state with no sample-data tier.
type BookmarkRepository struct {
	store *MongoStore[models.Bookmark]
}

// NewBookmarkRepository binds the bookmarks collection.
func NewBookmarkRepository(db *mongo.Database, opts StoreOptions) *BookmarkRepository {
	return &BookmarkRepository{store: NewMongoStore[models.Bookmark](db, bookmarkDescriptor, opts)}
}

// List returns bookmarks newest-first.
func (r *BookmarkRepository) List(ctx context.Context, f models.BookmarkFilter) ([]models.Bookmark, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Filter: bson.M{}}
	if oid, err := primitive.ObjectIDFromHex(f.UserID); err == nil {
		p.Filter["user_id"] = oid
	}
	if f.ContentType != "" {
		p.Filter["content_type"] = f.ContentType
	}
	return r.store.List(ctx, p)
}

// FindByID looks a bookmark up by object id.
func (r *BookmarkRepository) FindByID(ctx context.Context, id string) (*models.Bookmark, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// Exists reports whether the user already bookmarked this record.
func (r *BookmarkRepository) Exists(ctx context.Context, userID primitive.ObjectID, contentType models.BookmarkContentType, contentID primitive.ObjectID) (bool, error) {
	return r.store.Exists(ctx, bson.M{
		"user_id":      userID,
		"content_type": contentType,
		"content_id":   contentID,
	})
}

// Insert persists a new bookmark.
func (r *BookmarkRepository) Insert(ctx context.Context, b *models.Bookmark) error {
	return r.store.Insert(ctx, b)
}

// Delete removes a bookmark.
func (r *BookmarkRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
