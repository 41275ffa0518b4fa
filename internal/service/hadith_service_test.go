package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
)

type hadithKey struct {
	collection models.HadithCollection
	number     int
}

type mockHadithRepo struct {
	hadiths    map[string]models.Hadith
	numbers    map[hadithKey]string
	inserted   []models.Hadith
	insertErr  error
	lastFilter models.HadithFilter
}

func (m *mockHadithRepo) List(ctx context.Context, filter models.HadithFilter) ([]models.Hadith, int64, error) {
	m.lastFilter = filter
	out := make([]models.Hadith, 0, len(m.hadiths))
	for _, h := range m.hadiths {
		out = append(out, h)
	}
	return out, int64(len(out)), nil
}

func (m *mockHadithRepo) FindByID(ctx context.Context, id string) (*models.Hadith, error) {
	if h, ok := m.hadiths[id]; ok {
		return &h, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockHadithRepo) NumberExists(ctx context.Context, collection models.HadithCollection, number int, excludeID string) (bool, error) {
	if id, ok := m.numbers[hadithKey{collection, number}]; ok {
		if excludeID == "" || id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockHadithRepo) Insert(ctx context.Context, h *models.Hadith) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, *h)
	return nil
}

func (m *mockHadithRepo) Update(ctx context.Context, id string, h *models.Hadith) error {
	if _, ok := m.hadiths[id]; !ok {
		return mongo.ErrNoDocuments
	}
	m.hadiths[id] = *h
	return nil
}

func (m *mockHadithRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.hadiths[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.hadiths, id)
	return nil
}

func validHadithRequest() HadithRequest {
	return HadithRequest{
		Collection:         "bukhari",
		HadithNumber:       52,
		EnglishTranslation: "The lawful is clear and the unlawful is clear.",
		Narrator:           "An-Numan ibn Bashir",
		Tags:               "halal, doubt , ",
	}
}

func TestHadithServiceCreateSplitsTags(t *testing.T) {
	repo := &mockHadithRepo{numbers: make(map[hadithKey]string)}
	svc := NewHadithService(repo, validator.New(), zap.NewNop(), nil, false)

	hadith, demo, err := svc.Create(context.Background(), validHadithRequest())
	require.NoError(t, err)
	assert.False(t, demo)
	assert.Equal(t, models.CollectionBukhari, hadith.Collection)
	assert.Equal(t, []string{"halal", "doubt"}, hadith.Tags)
	require.Len(t, repo.inserted, 1)
}

func TestHadithServiceCreateDemoModeRecordsWrite(t *testing.T) {
	repo := &mockHadithRepo{numbers: make(map[hadithKey]string), insertErr: errors.New("server selection timeout")}
	observer := &mockContentObserver{}
	svc := NewHadithService(repo, validator.New(), zap.NewNop(), observer, true)

	hadith, demo, err := svc.Create(context.Background(), validHadithRequest())
	require.NoError(t, err)
	assert.True(t, demo)
	assert.False(t, hadith.ID.IsZero())
	assert.Equal(t, 1, observer.demoWrites)
}

func TestHadithServiceCreateMissingNarrator(t *testing.T) {
	repo := &mockHadithRepo{}
	svc := NewHadithService(repo, validator.New(), zap.NewNop(), nil, false)

	req := validHadithRequest()
	req.Narrator = ""
	_, _, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.inserted)
}

func TestHadithServiceCreateUnknownCollection(t *testing.T) {
	svc := NewHadithService(&mockHadithRepo{}, validator.New(), zap.NewNop(), nil, false)

	req := validHadithRequest()
	req.Collection = "forged"
	_, _, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestHadithServiceCreateDuplicateNumber(t *testing.T) {
	repo := &mockHadithRepo{
		numbers: map[hadithKey]string{{models.CollectionBukhari, 52}: "a"},
	}
	svc := NewHadithService(repo, validator.New(), zap.NewNop(), nil, false)

	_, _, err := svc.Create(context.Background(), validHadithRequest())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrAlreadyExists.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestHadithServiceListRejectsUnknownCollection(t *testing.T) {
	svc := NewHadithService(&mockHadithRepo{}, validator.New(), zap.NewNop(), nil, false)

	_, _, err := svc.List(context.Background(), models.HadithFilter{Collection: "forged"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestHadithServiceUpdateKeepsIdentity(t *testing.T) {
	existing := models.Hadith{Collection: models.CollectionBukhari, HadithNumber: 52}
	repo := &mockHadithRepo{
		hadiths: map[string]models.Hadith{"a": existing},
		numbers: map[hadithKey]string{{models.CollectionBukhari, 52}: "a"},
	}
	svc := NewHadithService(repo, validator.New(), zap.NewNop(), nil, false)

	req := validHadithRequest()
	req.Chapter = "Transactions"
	hadith, demo, err := svc.Update(context.Background(), "a", req)
	require.NoError(t, err)
	assert.False(t, demo)
	assert.Equal(t, "Transactions", hadith.Chapter)
	assert.Equal(t, existing.CreatedAt, hadith.CreatedAt)
}

func TestHadithServiceGetMissing(t *testing.T) {
	svc := NewHadithService(&mockHadithRepo{}, validator.New(), zap.NewNop(), nil, false)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
