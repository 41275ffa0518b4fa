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

type mockBookmarkRepo struct {
	bookmarks  map[string]models.Bookmark
	inserted   []models.Bookmark
	lastFilter models.BookmarkFilter
}

func (m *mockBookmarkRepo) List(ctx context.Context, filter models.BookmarkFilter) ([]models.Bookmark, int64, error) {
	m.lastFilter = filter
	out := make([]models.Bookmark, 0, len(m.bookmarks))
	for _, b := range m.bookmarks {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (m *mockBookmarkRepo) FindByID(ctx context.Context, id string) (*models.Bookmark, error) {
	if b, ok := m.bookmarks[id]; ok {
		return &b, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockBookmarkRepo) Exists(ctx context.Context, userID primitive.ObjectID, contentType models.BookmarkContentType, contentID primitive.ObjectID) (bool, error) {
	for _, b := range m.bookmarks {
		if b.UserID == userID && b.ContentType == contentType && b.ContentID == contentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBookmarkRepo) Insert(ctx context.Context, b *models.Bookmark) error {
	m.inserted = append(m.inserted, *b)
	return nil
}

func (m *mockBookmarkRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.bookmarks[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.bookmarks, id)
	return nil
}

func TestBookmarkServiceCreate(t *testing.T) {
	repo := &mockBookmarkRepo{}
	svc := NewBookmarkService(repo, validator.New(), zap.NewNop())

	owner := models.UserInfo{ID: primitive.NewObjectID().Hex()}
	contentID := primitive.NewObjectID()
	bookmark, err := svc.Create(context.Background(), owner, BookmarkRequest{
		ContentType: "hadith",
		ContentID:   contentID.Hex(),
		Note:        "read again on friday",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, bookmark.UserID.Hex())
	assert.Equal(t, models.BookmarkHadith, bookmark.ContentType)
	assert.Equal(t, contentID, bookmark.ContentID)
	require.Len(t, repo.inserted, 1)
}

func TestBookmarkServiceCreateDuplicate(t *testing.T) {
	owner := primitive.NewObjectID()
	contentID := primitive.NewObjectID()
	repo := &mockBookmarkRepo{bookmarks: map[string]models.Bookmark{
		"a": {UserID: owner, ContentType: models.BookmarkQuran, ContentID: contentID},
	}}
	svc := NewBookmarkService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), models.UserInfo{ID: owner.Hex()}, BookmarkRequest{
		ContentType: "quran",
		ContentID:   contentID.Hex(),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAlreadyExists.Code, appErrors.FromError(err).Code)
}

func TestBookmarkServiceCreateRejectsBadPayload(t *testing.T) {
	svc := NewBookmarkService(&mockBookmarkRepo{}, validator.New(), zap.NewNop())
	owner := models.UserInfo{ID: primitive.NewObjectID().Hex()}

	_, err := svc.Create(context.Background(), owner, BookmarkRequest{
		ContentType: "playlist",
		ContentID:   primitive.NewObjectID().Hex(),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Create(context.Background(), owner, BookmarkRequest{
		ContentType: "quran",
		ContentID:   "not-a-hex-id",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestBookmarkServiceListScopesToOwner(t *testing.T) {
	repo := &mockBookmarkRepo{}
	svc := NewBookmarkService(repo, validator.New(), zap.NewNop())

	owner := models.UserInfo{ID: primitive.NewObjectID().Hex()}
	_, _, err := svc.List(context.Background(), owner, models.BookmarkFilter{UserID: "someone-else"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, repo.lastFilter.UserID)
}

func TestBookmarkServiceDeleteOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	repo := &mockBookmarkRepo{bookmarks: map[string]models.Bookmark{
		"a": {UserID: owner},
	}}
	svc := NewBookmarkService(repo, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), models.UserInfo{ID: primitive.NewObjectID().Hex()}, false, "a")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	require.NoError(t, svc.Delete(context.Background(), models.UserInfo{ID: owner.Hex()}, false, "a"))
	assert.Empty(t, repo.bookmarks)
}

func TestBookmarkServiceDeleteAsAdmin(t *testing.T) {
	repo := &mockBookmarkRepo{bookmarks: map[string]models.Bookmark{
		"a": {UserID: primitive.NewObjectID()},
	}}
	svc := NewBookmarkService(repo, validator.New(), zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), models.UserInfo{ID: primitive.NewObjectID().Hex()}, true, "a"))
	assert.Empty(t, repo.bookmarks)
}
