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

var hadithDescriptor = Descriptor{
	Collection: "hadiths",
	SearchFields: []string{
		"arabic_text", "english_translation", "bangla_translation",
		"narrator", "chapter",
	},
	TagFields:   []string{"tags"},
	DefaultSort: bson.D{{Key: "created_at", Value: -1}},
}

// HadithRepository persists hadiths, degrading reads to the sample catalog.
type HadithRepository struct {
	store *ContentStore[models.Hadith]
}

// NewHadithRepository wires the two-tier hadith store.
func NewHadithRepository(db *mongo.Database, logger *zap.Logger, opts StoreOptions) *HadithRepository {
	primary := NewMongoStore[models.Hadith](db, hadithDescriptor, opts)
	fb := NewFallbackStore(hadithDescriptor, fallback.Hadiths())
	return &HadithRepository{store: NewContentStore(primary, fb, logger, opts.Observer)}
}

// List returns hadiths newest-first.
func (r *HadithRepository) List(ctx context.Context, f models.HadithFilter) ([]models.Hadith, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	if f.Collection != "" {
		p.Filter["collection"] = f.Collection
	}
	if f.Book != "" {
		p.Filter["book"] = f.Book
	}
	return r.store.List(ctx, p)
}

// FindByID looks a hadith up by object id.
func (r *HadithRepository) FindByID(ctx context.Context, id string) (*models.Hadith, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// NumberExists reports whether (collection, hadithNumber) is already
// taken, optionally excluding one document.
func (r *HadithRepository) NumberExists(ctx context.Context, collection models.HadithCollection, number int, excludeID string) (bool, error) {
	filter := bson.M{"collection": collection, "hadith_number": number}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	return r.store.Exists(ctx, filter)
}

// Insert persists a new hadith.
func (r *HadithRepository) Insert(ctx context.Context, h *models.Hadith) error {
	return r.store.Insert(ctx, h)
}

// Update replaces the mutable fields of a hadith.
func (r *HadithRepository) Update(ctx context.Context, id string, h *models.Hadith) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	set := bson.M{
		"collection":          h.Collection,
		"hadith_number":       h.HadithNumber,
		"arabic_text":         h.ArabicText,
		"english_translation": h.EnglishTranslation,
		"bangla_translation":  h.BanglaTranslation,
		"narrator":            h.Narrator,
		"chapter":             h.Chapter,
		"book":                h.Book,
		"volume":              h.Volume,
		"page":                h.Page,
		"tags":                h.Tags,
		"updated_at":          h.UpdatedAt,
	}
	return r.store.Update(ctx, oid, set)
}

// Delete removes a hadith.
func (r *HadithRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
