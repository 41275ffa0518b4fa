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

type newsRepository interface {
	List(ctx context.Context, filter models.NewsFilter) ([]models.News, int64, error)
	FindByID(ctx context.Context, id string) (*models.News, error)
	Insert(ctx context.Context, n *models.News) error
	Update(ctx context.Context, id string, n *models.News) error
	IncrementViews(ctx context.Context, id string, delta int64) error
	Delete(ctx context.Context, id string) error
}

// NewsRequest holds payload for creating or replacing an article. Tags
// arrive as one comma separated string.
type NewsRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Category string `json:"category" validate:"required"`
	Featured bool   `json:"featured"`
	Tags     string `json:"tags"`
}

// NewsService handles news article use-cases.
type NewsService struct {
	repo      newsRepository
	validator *validator.Validate
	logger    *zap.Logger
	observer  demoObserver
	demo      bool
}

// NewNewsService constructs the news service.
func NewNewsService(repo newsRepository, validate *validator.Validate, logger *zap.Logger, observer demoObserver, demo bool) *NewsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsService{repo: repo, validator: validate, logger: logger, observer: observer, demo: demo}
}

// List returns articles and pagination metadata.
func (s *NewsService) List(ctx context.Context, filter models.NewsFilter) ([]models.News, *models.Pagination, error) {
	if filter.Category != "" && !models.NewsCategory(filter.Category).Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown news category")
	}
	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list news")
	}
	return articles, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one article by document id.
func (s *NewsService) Get(ctx context.Context, id string) (*models.News, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load article")
	}
	return article, nil
}

// Create stores a new article stamped with its author.
func (s *NewsService) Create(ctx context.Context, req NewsRequest, author models.UserInfo) (*models.News, bool, error) {
	article, err := s.buildArticle(req)
	if err != nil {
		return nil, false, err
	}
	if oid, err := primitive.ObjectIDFromHex(author.ID); err == nil {
		article.AuthorID = oid
	}
	article.AuthorName = author.Name

	if err := s.repo.Insert(ctx, article); err != nil {
		if s.demo {
			article.ID = primitive.NewObjectID()
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return article, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create article")
	}
	return article, false, nil
}

// Update replaces an article's content. Author and view count carry over.
func (s *NewsService) Update(ctx context.Context, id string, req NewsRequest) (*models.News, bool, error) {
	article, err := s.buildArticle(req)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	article.ID = existing.ID
	article.AuthorID = existing.AuthorID
	article.AuthorName = existing.AuthorName
	article.Views = existing.Views
	article.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, id, article); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		if s.demo {
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return article, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update article")
	}
	return article, false, nil
}

// IncrementViews bumps an article's view counter. Called from the
// asynchronous view queue, so misses are logged and swallowed.
func (s *NewsService) IncrementViews(ctx context.Context, id string, delta int64) error {
	if err := s.repo.IncrementViews(ctx, id, delta); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record views")
	}
	return nil
}

// Delete removes an article by id.
func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete article")
	}
	return nil
}

func (s *NewsService) buildArticle(req NewsRequest) (*models.News, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid article payload")
	}
	category := models.NewsCategory(req.Category)
	if !category.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown news category")
	}
	now := time.Now().UTC()
	return &models.News{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Image:     req.Image,
		Category:  category,
		Featured:  req.Featured,
		Tags:      splitTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *NewsService) observeDemoWrite() {
	if s.observer != nil {
		s.observer.ObserveDemoWrite()
	}
}
