package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
)

type hadithRepository interface {
	List(ctx context.Context, filter models.HadithFilter) ([]models.Hadith, int64, error)
	FindByID(ctx context.Context, id string) (*models.Hadith, error)
	NumberExists(ctx context.Context, collection models.HadithCollection, number int, excludeID string) (bool, error)
	Insert(ctx context.Context, h *models.Hadith) error
	Update(ctx context.Context, id string, h *models.Hadith) error
	Delete(ctx context.Context, id string) error
}

// HadithRequest holds payload for creating or replacing a hadith. Tags
// arrive as one comma separated string.
type HadithRequest struct {
	Collection         string `json:"collection" validate:"required"`
	HadithNumber       int    `json:"hadith_number" validate:"required,min=1"`
	ArabicText         string `json:"arabic_text"`
	EnglishTranslation string `json:"english_translation" validate:"required"`
	BanglaTranslation  string `json:"bangla_translation"`
	Narrator           string `json:"narrator" validate:"required"`
	Chapter            string `json:"chapter"`
	Book               string `json:"book"`
	Volume             int    `json:"volume"`
	Page               int    `json:"page"`
	Tags               string `json:"tags"`
}

// HadithService handles hadith use-cases.
type HadithService struct {
	repo      hadithRepository
	validator *validator.Validate
	logger    *zap.Logger
	observer  demoObserver
	demo      bool
}

// NewHadithService constructs the hadith service.
func NewHadithService(repo hadithRepository, validate *validator.Validate, logger *zap.Logger, observer demoObserver, demo bool) *HadithService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HadithService{repo: repo, validator: validate, logger: logger, observer: observer, demo: demo}
}

// List returns hadiths and pagination metadata.
func (s *HadithService) List(ctx context.Context, filter models.HadithFilter) ([]models.Hadith, *models.Pagination, error) {
	if filter.Collection != "" && !models.HadithCollection(filter.Collection).Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown hadith collection")
	}
	hadiths, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list hadiths")
	}
	return hadiths, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one hadith by document id.
func (s *HadithService) Get(ctx context.Context, id string) (*models.Hadith, error) {
	hadith, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "hadith not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hadith")
	}
	return hadith, nil
}

// Create stores a new hadith.
func (s *HadithService) Create(ctx context.Context, req HadithRequest) (*models.Hadith, bool, error) {
	hadith, err := s.buildHadith(req)
	if err != nil {
		return nil, false, err
	}

	exists, err := s.repo.NumberExists(ctx, hadith.Collection, hadith.HadithNumber, "")
	if err != nil {
		s.logger.Warn("hadith uniqueness check unavailable", zap.Error(err))
	} else if exists {
		return nil, false, appErrors.Clone(appErrors.ErrAlreadyExists, "hadith number already exists in this collection")
	}

	if err := s.repo.Insert(ctx, hadith); err != nil {
		if s.demo {
			hadith.ID = primitive.NewObjectID()
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return hadith, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create hadith")
	}
	return hadith, false, nil
}

// Update replaces a hadith's content.
func (s *HadithService) Update(ctx context.Context, id string, req HadithRequest) (*models.Hadith, bool, error) {
	hadith, err := s.buildHadith(req)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	exists, err := s.repo.NumberExists(ctx, hadith.Collection, hadith.HadithNumber, id)
	if err != nil {
		s.logger.Warn("hadith uniqueness check unavailable", zap.Error(err))
	} else if exists {
		return nil, false, appErrors.Clone(appErrors.ErrAlreadyExists, "hadith number already exists in this collection")
	}

	hadith.ID = existing.ID
	hadith.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, id, hadith); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "hadith not found")
		}
		if s.demo {
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return hadith, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update hadith")
	}
	return hadith, false, nil
}

// Delete removes a hadith by id.
func (s *HadithService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "hadith not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete hadith")
	}
	return nil
}

func (s *HadithService) buildHadith(req HadithRequest) (*models.Hadith, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid hadith payload")
	}
	collection := models.HadithCollection(req.Collection)
	if !collection.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown hadith collection")
	}
	now := time.Now().UTC()
	return &models.Hadith{
		Collection:         collection,
		HadithNumber:       req.HadithNumber,
		ArabicText:         req.ArabicText,
		EnglishTranslation: req.EnglishTranslation,
		BanglaTranslation:  req.BanglaTranslation,
		Narrator:           req.Narrator,
		Chapter:            req.Chapter,
		Book:               req.Book,
		Volume:             req.Volume,
		Page:               req.Page,
		Tags:               splitTags(req.Tags),
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// splitTags turns a comma separated string into trimmed, non-empty tags.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func (s *HadithService) observeDemoWrite() {
	if s.observer != nil {
		s.observer.ObserveDemoWrite()
	}
}
