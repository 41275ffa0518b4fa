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

var quranDescriptor = Descriptor{
	Collection:   "quran",
	SearchFields: []string{"name_arabic", "name_english", "name_bangla"},
	DefaultSort:  bson.D{{Key: "surah_number", Value: 1}},
}

// QuranRepository persists surahs, degrading reads to the sample catalog.
type QuranRepository struct {
	store *ContentStore[models.Surah]
}

// NewQuranRepository wires the two-tier surah store.
func NewQuranRepository(db *mongo.Database, logger *zap.Logger, opts StoreOptions) *QuranRepository {
	primary := NewMongoStore[models.Surah](db, quranDescriptor, opts)
	fb := NewFallbackStore(quranDescriptor, fallback.Surahs())
	return &QuranRepository{store: NewContentStore(primary, fb, logger, opts.Observer)}
}

// List returns surahs ordered by surah number.
func (r *QuranRepository) List(ctx context.Context, f models.QuranFilter) ([]models.Surah, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	if f.RevelationPlace != "" {
		p.Filter["revelation_place"] = f.RevelationPlace
	}
	return r.store.List(ctx, p)
}

// FindByID looks a surah up by object id.
func (r *QuranRepository) FindByID(ctx context.Context, id string) (*models.Surah, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// FindBySurah looks a surah up by its number (1..114).
func (r *QuranRepository) FindBySurah(ctx context.Context, number int) (*models.Surah, error) {
	return r.store.FindOne(ctx, bson.M{"surah_number": number})
}

// SurahExists reports whether a surah number is already taken,
// optionally excluding one document (for updates).
func (r *QuranRepository) SurahExists(ctx context.Context, number int, excludeID string) (bool, error) {
	filter := bson.M{"surah_number": number}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	return r.store.Exists(ctx, filter)
}

// Insert persists a new surah.
func (r *QuranRepository) Insert(ctx context.Context, s *models.Surah) error {
	return r.store.Insert(ctx, s)
}

// Update replaces the mutable fields of a surah.
func (r *QuranRepository) Update(ctx context.Context, id string, s *models.Surah) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	set := bson.M{
		"surah_number":     s.SurahNumber,
		"name_arabic":      s.NameArabic,
		"name_english":     s.NameEnglish,
		"name_bangla":      s.NameBangla,
		"total_ayahs":      s.TotalAyahs,
		"revelation_place": s.RevelationPlace,
		"ayahs":            s.Ayahs,
		"updated_at":       s.UpdatedAt,
	}
	return r.store.Update(ctx, oid, set)
}

// Delete removes a surah.
func (r *QuranRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
