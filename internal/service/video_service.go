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

type videoRepository interface {
	List(ctx context.Context, filter models.VideoFilter) ([]models.Video, int64, error)
	FindByID(ctx context.Context, id string) (*models.Video, error)
	Insert(ctx context.Context, v *models.Video) error
	Update(ctx context.Context, id string, v *models.Video) error
	IncrementViews(ctx context.Context, id string, delta int64) error
	Delete(ctx context.Context, id string) error
}

// VideoRequest holds payload for creating or replacing a video. Tags
// arrive as one comma separated string.
type VideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url" validate:"required,url"`
	Thumbnail   string `json:"thumbnail"`
	Category    string `json:"category" validate:"required"`
	Duration    string `json:"duration"`
	Tags        string `json:"tags"`
}

// VideoService handles video use-cases.
type VideoService struct {
	repo      videoRepository
	validator *validator.Validate
	logger    *zap.Logger
	observer  demoObserver
	demo      bool
}

// NewVideoService constructs the video service.
func NewVideoService(repo videoRepository, validate *validator.Validate, logger *zap.Logger, observer demoObserver, demo bool) *VideoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VideoService{repo: repo, validator: validate, logger: logger, observer: observer, demo: demo}
}

// List returns videos and pagination metadata.
func (s *VideoService) List(ctx context.Context, filter models.VideoFilter) ([]models.Video, *models.Pagination, error) {
	if filter.Category != "" && !models.VideoCategory(filter.Category).Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown video category")
	}
	videos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list videos")
	}
	return videos, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one video by document id.
func (s *VideoService) Get(ctx context.Context, id string) (*models.Video, error) {
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "video not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load video")
	}
	return video, nil
}

// Create stores a new video.
func (s *VideoService) Create(ctx context.Context, req VideoRequest) (*models.Video, bool, error) {
	video, err := s.buildVideo(req)
	if err != nil {
		return nil, false, err
	}

	if err := s.repo.Insert(ctx, video); err != nil {
		if s.demo {
			video.ID = primitive.NewObjectID()
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return video, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create video")
	}
	return video, false, nil
}

// Update replaces a video's content. View count carries over.
func (s *VideoService) Update(ctx context.Context, id string, req VideoRequest) (*models.Video, bool, error) {
	video, err := s.buildVideo(req)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	video.ID = existing.ID
	video.Views = existing.Views
	video.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, id, video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "video not found")
		}
		if s.demo {
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return video, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update video")
	}
	return video, false, nil
}

// IncrementViews bumps a video's view counter.
func (s *VideoService) IncrementViews(ctx context.Context, id string, delta int64) error {
	if err := s.repo.IncrementViews(ctx, id, delta); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "video not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record views")
	}
	return nil
}

// Delete removes a video by id.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "video not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete video")
	}
	return nil
}

func (s *VideoService) buildVideo(req VideoRequest) (*models.Video, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid video payload")
	}
	category := models.VideoCategory(req.Category)
	if !category.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown video category")
	}
	now := time.Now().UTC()
	return &models.Video{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		Category:    category,
		Duration:    req.Duration,
		Tags:        splitTags(req.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *VideoService) observeDemoWrite() {
	if s.observer != nil {
		s.observer.ObserveDemoWrite()
	}
}
