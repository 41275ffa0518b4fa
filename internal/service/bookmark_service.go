package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
)

type bookmarkRepository interface {
	List(ctx context.Context, filter models.BookmarkFilter) ([]models.Bookmark, int64, error)
	FindByID(ctx context.Context, id string) (*models.Bookmark, error)
	Exists(ctx context.Context, userID primitive.ObjectID, contentType models.BookmarkContentType, contentID primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, b *models.Bookmark) error
	Delete(ctx context.Context, id string) error
}

// BookmarkRequest holds payload for pinning a content record.
type BookmarkRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	ContentID   string `json:"content_id" validate:"required"`
	Note        string `json:"note"`
}

// BookmarkService handles per-user bookmark use-cases. Every operation is
// scoped to the owning user; admins may delete any bookmark.
type BookmarkService struct {
	repo      bookmarkRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBookmarkService constructs the bookmark service.
func NewBookmarkService(repo bookmarkRepository, validate *validator.Validate, logger *zap.Logger) *BookmarkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookmarkService{repo: repo, validator: validate, logger: logger}
}

// List returns the owner's bookmarks and pagination metadata.
func (s *BookmarkService) List(ctx context.Context, owner models.UserInfo, filter models.BookmarkFilter) ([]models.Bookmark, *models.Pagination, error) {
	if filter.ContentType != "" && !models.BookmarkContentType(filter.ContentType).Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown content type")
	}
	filter.UserID = owner.ID
	bookmarks, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list bookmarks")
	}
	return bookmarks, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Create pins a content record for the owner.
func (s *BookmarkService) Create(ctx context.Context, owner models.UserInfo, req BookmarkRequest) (*models.Bookmark, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bookmark payload")
	}
	contentType := models.BookmarkContentType(req.ContentType)
	if !contentType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown content type")
	}
	contentID, err := primitive.ObjectIDFromHex(req.ContentID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid content id")
	}
	userID, err := primitive.ObjectIDFromHex(owner.ID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session")
	}

	exists, err := s.repo.Exists(ctx, userID, contentType, contentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate bookmark")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrAlreadyExists, "bookmark already exists")
	}

	bookmark := &models.Bookmark{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		Note:        req.Note,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, bookmark); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create bookmark")
	}
	return bookmark, nil
}

// Delete removes a bookmark. Owners may delete their own; admins any.
func (s *BookmarkService) Delete(ctx context.Context, owner models.UserInfo, admin bool, id string) error {
	bookmark, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "bookmark not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load bookmark")
	}
	if !admin && bookmark.UserID.Hex() != owner.ID {
		return appErrors.Clone(appErrors.ErrForbidden, "bookmark belongs to another user")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "bookmark not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete bookmark")
	}
	return nil
}
