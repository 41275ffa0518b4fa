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

type navbarRepository interface {
	List(ctx context.Context, filter models.NavbarFilter) ([]models.NavLink, int64, error)
	FindByID(ctx context.Context, id string) (*models.NavLink, error)
	Insert(ctx context.Context, l *models.NavLink) error
	Update(ctx context.Context, id string, l *models.NavLink) error
	Delete(ctx context.Context, id string) error
}

// NavLinkRequest holds payload for creating or replacing a navigation link.
type NavLinkRequest struct {
	Label   string `json:"label" validate:"required"`
	URL     string `json:"url" validate:"required"`
	Order   int    `json:"order" validate:"min=0"`
	Visible bool   `json:"visible"`
}

// NavbarService handles site navigation use-cases.
type NavbarService struct {
	repo      navbarRepository
	validator *validator.Validate
	logger    *zap.Logger
	observer  demoObserver
	demo      bool
}

// NewNavbarService constructs the navbar service.
func NewNavbarService(repo navbarRepository, validate *validator.Validate, logger *zap.Logger, observer demoObserver, demo bool) *NavbarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NavbarService{repo: repo, validator: validate, logger: logger, observer: observer, demo: demo}
}

// List returns navigation links ordered by position.
func (s *NavbarService) List(ctx context.Context, filter models.NavbarFilter) ([]models.NavLink, *models.Pagination, error) {
	links, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list navigation links")
	}
	return links, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one navigation link by document id.
func (s *NavbarService) Get(ctx context.Context, id string) (*models.NavLink, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "navigation link not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load navigation link")
	}
	return link, nil
}

// Create stores a new navigation link.
func (s *NavbarService) Create(ctx context.Context, req NavLinkRequest) (*models.NavLink, bool, error) {
	link, err := s.buildLink(req)
	if err != nil {
		return nil, false, err
	}

	if err := s.repo.Insert(ctx, link); err != nil {
		if s.demo {
			link.ID = primitive.NewObjectID()
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return link, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create navigation link")
	}
	return link, false, nil
}

// Update replaces a navigation link.
func (s *NavbarService) Update(ctx context.Context, id string, req NavLinkRequest) (*models.NavLink, bool, error) {
	link, err := s.buildLink(req)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	link.ID = existing.ID
	link.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, id, link); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "navigation link not found")
		}
		if s.demo {
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return link, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update navigation link")
	}
	return link, false, nil
}

// Delete removes a navigation link by id.
func (s *NavbarService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "navigation link not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete navigation link")
	}
	return nil
}

func (s *NavbarService) buildLink(req NavLinkRequest) (*models.NavLink, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid navigation link payload")
	}
	now := time.Now().UTC()
	return &models.NavLink{
		Label:     req.Label,
		URL:       req.URL,
		Order:     req.Order,
		Visible:   req.Visible,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *NavbarService) observeDemoWrite() {
	if s.observer != nil {
		s.observer.ObserveDemoWrite()
	}
}
