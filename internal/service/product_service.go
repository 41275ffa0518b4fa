package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/export"
)

type productRepository interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	SKUExists(ctx context.Context, sku string, excludeID string) (bool, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, p *models.Product) error
	Delete(ctx context.Context, id string) error
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ProductRequest holds payload for creating or replacing a catalog item.
type ProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice float64  `json:"original_price"`
	Images        []string `json:"images"`
	Category      string   `json:"category" validate:"required"`
	Stock         int      `json:"stock" validate:"min=0"`
	SKU           string   `json:"sku" validate:"required"`
	Featured      bool     `json:"featured"`
	Active        bool     `json:"active"`
}

// ProductService handles catalog use-cases.
type ProductService struct {
	repo      productRepository
	validator *validator.Validate
	logger    *zap.Logger
	csv       datasetRenderer
	observer  demoObserver
	demo      bool
}

// NewProductService constructs the product service.
func NewProductService(repo productRepository, validate *validator.Validate, logger *zap.Logger, csv datasetRenderer, observer demoObserver, demo bool) *ProductService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &ProductService{repo: repo, validator: validate, logger: logger, csv: csv, observer: observer, demo: demo}
}

// List returns catalog items and pagination metadata.
func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, *models.Pagination, error) {
	if filter.Category != "" && !models.ProductCategory(filter.Category).Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown product category")
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list products")
	}
	return products, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one catalog item by document id.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "product not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load product")
	}
	return product, nil
}

// Create stores a new catalog item.
func (s *ProductService) Create(ctx context.Context, req ProductRequest) (*models.Product, bool, error) {
	product, err := s.buildProduct(req)
	if err != nil {
		return nil, false, err
	}

	exists, err := s.repo.SKUExists(ctx, product.SKU, "")
	if err != nil {
		s.logger.Warn("sku uniqueness check unavailable", zap.Error(err))
	} else if exists {
		return nil, false, appErrors.Clone(appErrors.ErrAlreadyExists, "sku already exists")
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		if s.demo {
			product.ID = primitive.NewObjectID()
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return product, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create product")
	}
	return product, false, nil
}

// Update replaces a catalog item's content.
func (s *ProductService) Update(ctx context.Context, id string, req ProductRequest) (*models.Product, bool, error) {
	product, err := s.buildProduct(req)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	exists, err := s.repo.SKUExists(ctx, product.SKU, id)
	if err != nil {
		s.logger.Warn("sku uniqueness check unavailable", zap.Error(err))
	} else if exists {
		return nil, false, appErrors.Clone(appErrors.ErrAlreadyExists, "sku already exists")
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, id, product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "product not found")
		}
		if s.demo {
			s.logger.Warn("store write failed, acknowledging in demo mode", zap.Error(err))
			s.observeDemoWrite()
			return product, true, nil
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update product")
	}
	return product, false, nil
}

// Delete removes a catalog item by id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "product not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete product")
	}
	return nil
}

// ExportCSV renders the full catalog matching the filter as CSV bytes.
func (s *ProductService) ExportCSV(ctx context.Context, filter models.ProductFilter) ([]byte, string, error) {
	filter.Page = 1
	filter.Limit = 1000
	products, _, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog for export")
	}

	data := export.Dataset{
		Headers: []string{"sku", "name", "category", "price", "original_price", "stock", "featured", "active"},
	}
	for _, p := range products {
		data.Rows = append(data.Rows, map[string]string{
			"sku":            p.SKU,
			"name":           p.Name,
			"category":       string(p.Category),
			"price":          fmt.Sprintf("%.2f", p.Price),
			"original_price": fmt.Sprintf("%.2f", p.OriginalPrice),
			"stock":          fmt.Sprintf("%d", p.Stock),
			"featured":       fmt.Sprintf("%t", p.Featured),
			"active":         fmt.Sprintf("%t", p.Active),
		})
	}

	payload, err := s.csv.Render(data)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render catalog export")
	}
	filename := fmt.Sprintf("products-%s.csv", time.Now().UTC().Format("20060102-150405"))
	return payload, filename, nil
}

func (s *ProductService) buildProduct(req ProductRequest) (*models.Product, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid product payload")
	}
	category := models.ProductCategory(req.Category)
	if !category.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown product category")
	}
	now := time.Now().UTC()
	return &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Images:        req.Images,
		Category:      category,
		Stock:         req.Stock,
		SKU:           strings.ToUpper(strings.TrimSpace(req.SKU)),
		Featured:      req.Featured,
		Active:        req.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (s *ProductService) observeDemoWrite() {
	if s.observer != nil {
		s.observer.ObserveDemoWrite()
	}
}
