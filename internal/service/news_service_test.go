package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
)

type mockNewsRepo struct {
	articles map[string]models.News
	inserted []models.News
	views    map[string]int64
}

func (m *mockNewsRepo) List(ctx context.Context, filter models.NewsFilter) ([]models.News, int64, error) {
	out := make([]models.News, 0, len(m.articles))
	for _, n := range m.articles {
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (m *mockNewsRepo) FindByID(ctx context.Context, id string) (*models.News, error) {
	if n, ok := m.articles[id]; ok {
		return &n, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockNewsRepo) Insert(ctx context.Context, n *models.News) error {
	m.inserted = append(m.inserted, *n)
	return nil
}

func (m *mockNewsRepo) Update(ctx context.Context, id string, n *models.News) error {
	if _, ok := m.articles[id]; !ok {
		return mongo.ErrNoDocuments
	}
	m.articles[id] = *n
	return nil
}

func (m *mockNewsRepo) IncrementViews(ctx context.Context, id string, delta int64) error {
	if _, ok := m.articles[id]; !ok {
		return mongo.ErrNoDocuments
	}
	if m.views == nil {
		m.views = make(map[string]int64)
	}
	m.views[id] += delta
	return nil
}

func (m *mockNewsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.articles[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.articles, id)
	return nil
}

func validNewsRequest() NewsRequest {
	return NewsRequest{
		Title:    "Ramadan Begins Tomorrow",
		Content:  "The crescent moon was sighted this evening.",
		Category: "islamic-world",
		Tags:     "ramadan, moon-sighting",
	}
}

func TestNewsServiceCreateStampsAuthor(t *testing.T) {
	repo := &mockNewsRepo{}
	svc := NewNewsService(repo, validator.New(), zap.NewNop(), nil, false)

	author := models.UserInfo{ID: primitive.NewObjectID().Hex(), Name: "Azharul Islam"}
	article, demo, err := svc.Create(context.Background(), validNewsRequest(), author)
	require.NoError(t, err)
	assert.False(t, demo)
	assert.Equal(t, author.ID, article.AuthorID.Hex())
	assert.Equal(t, "Azharul Islam", article.AuthorName)
	assert.Equal(t, []string{"ramadan", "moon-sighting"}, article.Tags)
	require.Len(t, repo.inserted, 1)
}

func TestNewsServiceCreateUnknownCategory(t *testing.T) {
	svc := NewNewsService(&mockNewsRepo{}, validator.New(), zap.NewNop(), nil, false)

	req := validNewsRequest()
	req.Category = "sports"
	_, _, err := svc.Create(context.Background(), req, models.UserInfo{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestNewsServiceUpdatePreservesAuthorAndViews(t *testing.T) {
	existing := models.News{
		AuthorID:   primitive.NewObjectID(),
		AuthorName: "Original Author",
		Views:      42,
	}
	repo := &mockNewsRepo{articles: map[string]models.News{"a": existing}}
	svc := NewNewsService(repo, validator.New(), zap.NewNop(), nil, false)

	article, demo, err := svc.Update(context.Background(), "a", validNewsRequest())
	require.NoError(t, err)
	assert.False(t, demo)
	assert.Equal(t, existing.AuthorID, article.AuthorID)
	assert.Equal(t, "Original Author", article.AuthorName)
	assert.Equal(t, int64(42), article.Views)
}

func TestNewsServiceIncrementViews(t *testing.T) {
	repo := &mockNewsRepo{articles: map[string]models.News{"a": {}}}
	svc := NewNewsService(repo, validator.New(), zap.NewNop(), nil, false)

	require.NoError(t, svc.IncrementViews(context.Background(), "a", 3))
	assert.Equal(t, int64(3), repo.views["a"])

	err := svc.IncrementViews(context.Background(), "missing", 1)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
