package service

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
)

type mockProductRepo struct {
	products   map[string]models.Product
	skus       map[string]string
	inserted   []models.Product
	lastFilter models.ProductFilter
}

func (m *mockProductRepo) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error) {
	m.lastFilter = filter
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		return &p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockProductRepo) SKUExists(ctx context.Context, sku string, excludeID string) (bool, error) {
	if id, ok := m.skus[sku]; ok {
		if excludeID == "" || id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProductRepo) Insert(ctx context.Context, p *models.Product) error {
	m.inserted = append(m.inserted, *p)
	return nil
}

func (m *mockProductRepo) Update(ctx context.Context, id string, p *models.Product) error {
	if _, ok := m.products[id]; !ok {
		return mongo.ErrNoDocuments
	}
	m.products[id] = *p
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.products, id)
	return nil
}

func validProductRequest() ProductRequest {
	return ProductRequest{
		Name:     "Prayer Mat",
		Price:    24.99,
		Category: "prayer-items",
		Stock:    10,
		SKU:      " pm-basic-01 ",
		Active:   true,
	}
}

func TestProductServiceCreateNormalisesSKU(t *testing.T) {
	repo := &mockProductRepo{skus: make(map[string]string)}
	svc := NewProductService(repo, validator.New(), zap.NewNop(), nil, nil, false)

	product, demo, err := svc.Create(context.Background(), validProductRequest())
	require.NoError(t, err)
	assert.False(t, demo)
	assert.Equal(t, "PM-BASIC-01", product.SKU)
	assert.Equal(t, models.ProductCategoryPrayerItems, product.Category)
	require.Len(t, repo.inserted, 1)
}

func TestProductServiceCreateDuplicateSKU(t *testing.T) {
	repo := &mockProductRepo{skus: map[string]string{"PM-BASIC-01": "a"}}
	svc := NewProductService(repo, validator.New(), zap.NewNop(), nil, nil, false)

	_, _, err := svc.Create(context.Background(), validProductRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAlreadyExists.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.inserted)
}

func TestProductServiceCreateRejectsBadPayload(t *testing.T) {
	repo := &mockProductRepo{}
	svc := NewProductService(repo, validator.New(), zap.NewNop(), nil, nil, false)

	req := validProductRequest()
	req.Price = 0
	_, _, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	req = validProductRequest()
	req.Category = "electronics"
	_, _, err = svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestProductServiceListRejectsUnknownCategory(t *testing.T) {
	svc := NewProductService(&mockProductRepo{}, validator.New(), zap.NewNop(), nil, nil, false)

	_, _, err := svc.List(context.Background(), models.ProductFilter{Category: "electronics"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestProductServiceExportCSV(t *testing.T) {
	repo := &mockProductRepo{products: map[string]models.Product{
		"a": {
			SKU:      "PM-BASIC-01",
			Name:     "Prayer Mat",
			Category: models.ProductCategoryPrayerItems,
			Price:    24.99,
			Stock:    10,
			Active:   true,
		},
	}}
	svc := NewProductService(repo, validator.New(), zap.NewNop(), nil, nil, false)

	payload, filename, err := svc.ExportCSV(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "products-"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	content := string(payload)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "sku,name,category,price,original_price,stock,featured,active", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "PM-BASIC-01")
	assert.Contains(t, lines[1], "24.99")
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 1000, repo.lastFilter.Limit)
}

func TestProductServiceUpdateSKUOwnRecord(t *testing.T) {
	existing := models.Product{SKU: "PM-BASIC-01", Name: "Prayer Mat"}
	repo := &mockProductRepo{
		products: map[string]models.Product{"a": existing},
		skus:     map[string]string{"PM-BASIC-01": "a"},
	}
	svc := NewProductService(repo, validator.New(), zap.NewNop(), nil, nil, false)

	product, demo, err := svc.Update(context.Background(), "a", validProductRequest())
	require.NoError(t, err)
	assert.False(t, demo)
	assert.Equal(t, "PM-BASIC-01", product.SKU)
}
