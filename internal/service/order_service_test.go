package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
)

type mockOrderRepo struct {
	orders   map[string]models.Order
	inserted []models.Order
	statuses map[string]models.OrderStatus
}

func (m *mockOrderRepo) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int64, error) {
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id string) (*models.Order, error) {
	if o, ok := m.orders[id]; ok {
		return &o, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockOrderRepo) Insert(ctx context.Context, o *models.Order) error {
	m.inserted = append(m.inserted, *o)
	return nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, updatedAt time.Time) error {
	if _, ok := m.orders[id]; !ok {
		return mongo.ErrNoDocuments
	}
	if m.statuses == nil {
		m.statuses = make(map[string]models.OrderStatus)
	}
	m.statuses[id] = status
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.orders[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.orders, id)
	return nil
}

type mockCatalogReader struct {
	products map[string]models.Product
}

func (m *mockCatalogReader) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		return &p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func testCatalog() *mockCatalogReader {
	return &mockCatalogReader{products: map[string]models.Product{
		"p1": {
			ID:     primitive.NewObjectID(),
			SKU:    "BOOK-01",
			Name:   "Riyad as-Salihin",
			Price:  15.50,
			Stock:  5,
			Active: true,
		},
		"p2": {
			ID:     primitive.NewObjectID(),
			SKU:    "MAT-01",
			Name:   "Prayer Mat",
			Price:  24.99,
			Stock:  1,
			Active: true,
		},
		"p3": {
			ID:     primitive.NewObjectID(),
			SKU:    "OLD-01",
			Name:   "Discontinued",
			Price:  9.99,
			Stock:  3,
			Active: false,
		},
	}}
}

func validOrderRequest() OrderRequest {
	return OrderRequest{
		CustomerName:    "Abdullah",
		CustomerEmail:   "abdullah@example.com",
		Phone:           "+8801700000000",
		ShippingAddress: "12 Baitul Mukarram Road, Dhaka",
		Items: []OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
}

func TestOrderServiceCreatePricesFromCatalog(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewOrderService(repo, testCatalog(), validator.New(), zap.NewNop(), nil)

	customer := models.UserInfo{ID: primitive.NewObjectID().Hex(), Name: "Abdullah"}
	order, err := svc.Create(context.Background(), validOrderRequest(), customer)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "IH-"))
	assert.Len(t, order.OrderNumber, 13)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Riyad as-Salihin", order.Items[0].Name)
	assert.InDelta(t, 2*15.50+24.99, order.Total, 0.001)
	assert.Equal(t, customer.ID, order.UserID.Hex())
	require.Len(t, repo.inserted, 1)
}

func TestOrderServiceCreateUnknownProduct(t *testing.T) {
	svc := NewOrderService(&mockOrderRepo{}, testCatalog(), validator.New(), zap.NewNop(), nil)

	req := validOrderRequest()
	req.Items = []OrderItemRequest{{ProductID: "ghost", Quantity: 1}}
	_, err := svc.Create(context.Background(), req, models.UserInfo{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "does not exist")
}

func TestOrderServiceCreateInactiveProduct(t *testing.T) {
	svc := NewOrderService(&mockOrderRepo{}, testCatalog(), validator.New(), zap.NewNop(), nil)

	req := validOrderRequest()
	req.Items = []OrderItemRequest{{ProductID: "p3", Quantity: 1}}
	_, err := svc.Create(context.Background(), req, models.UserInfo{})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "not available")
}

func TestOrderServiceCreateInsufficientStock(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewOrderService(repo, testCatalog(), validator.New(), zap.NewNop(), nil)

	req := validOrderRequest()
	req.Items = []OrderItemRequest{{ProductID: "p2", Quantity: 3}}
	_, err := svc.Create(context.Background(), req, models.UserInfo{})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "insufficient stock")
	assert.Empty(t, repo.inserted)
}

func TestOrderServiceCreateRejectsEmptyItems(t *testing.T) {
	svc := NewOrderService(&mockOrderRepo{}, testCatalog(), validator.New(), zap.NewNop(), nil)

	req := validOrderRequest()
	req.Items = nil
	_, err := svc.Create(context.Background(), req, models.UserInfo{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	repo := &mockOrderRepo{orders: map[string]models.Order{
		"a": {Status: models.OrderStatusPending},
	}}
	svc := NewOrderService(repo, testCatalog(), validator.New(), zap.NewNop(), nil)

	order, err := svc.UpdateStatus(context.Background(), "a", UpdateOrderStatusRequest{Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, models.OrderStatusPaid, repo.statuses["a"])
}

func TestOrderServiceUpdateStatusTerminal(t *testing.T) {
	repo := &mockOrderRepo{orders: map[string]models.Order{
		"a": {Status: models.OrderStatusDelivered},
		"b": {Status: models.OrderStatusCancelled},
	}}
	svc := NewOrderService(repo, testCatalog(), validator.New(), zap.NewNop(), nil)

	_, err := svc.UpdateStatus(context.Background(), "a", UpdateOrderStatusRequest{Status: "shipped"})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "already delivered")

	_, err = svc.UpdateStatus(context.Background(), "b", UpdateOrderStatusRequest{Status: "paid"})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "already cancelled")
}

func TestOrderServiceUpdateStatusUnknownValue(t *testing.T) {
	svc := NewOrderService(&mockOrderRepo{}, testCatalog(), validator.New(), zap.NewNop(), nil)

	_, err := svc.UpdateStatus(context.Background(), "a", UpdateOrderStatusRequest{Status: "teleported"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestOrderServiceInvoiceOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	repo := &mockOrderRepo{orders: map[string]models.Order{
		"a": {
			OrderNumber: "IH-TEST000001",
			UserID:      owner,
			Items:       []models.OrderItem{{Name: "Riyad as-Salihin", Price: 15.50, Quantity: 1}},
			Total:       15.50,
		},
	}}
	svc := NewOrderService(repo, testCatalog(), validator.New(), zap.NewNop(), nil)

	_, _, err := svc.Invoice(context.Background(), "a", models.UserInfo{ID: primitive.NewObjectID().Hex()}, false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	payload, filename, err := svc.Invoice(context.Background(), "a", models.UserInfo{ID: owner.Hex()}, false)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.Equal(t, "invoice-IH-TEST000001.pdf", filename)

	_, _, err = svc.Invoice(context.Background(), "a", models.UserInfo{ID: primitive.NewObjectID().Hex()}, true)
	require.NoError(t, err)
}
