package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
	"github.com/azharul-dev/islamichub-api/pkg/export"
)

type orderRepository interface {
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int64, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Insert(ctx context.Context, o *models.Order) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type orderProductReader interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

type invoiceRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// OrderRequest holds payload for placing an order. Name, price and total
// are snapshotted from the catalog, never trusted from the client.
type OrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"required,email"`
	Phone           string             `json:"phone" validate:"required"`
	ShippingAddress string             `json:"shipping_address" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest holds payload for moving an order through its
// lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderService handles storefront order use-cases.
type OrderService struct {
	repo      orderRepository
	products  orderProductReader
	validator *validator.Validate
	logger    *zap.Logger
	pdf       invoiceRenderer
}

// NewOrderService constructs the order service.
func NewOrderService(repo orderRepository, products orderProductReader, validate *validator.Validate, logger *zap.Logger, pdf invoiceRenderer) *OrderService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &OrderService{repo: repo, products: products, validator: validate, logger: logger, pdf: pdf}
}

// List returns orders and pagination metadata.
func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, *models.Pagination, error) {
	if filter.Status != "" && !models.OrderStatus(filter.Status).Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown order status")
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list orders")
	}
	return orders, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one order by document id.
func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load order")
	}
	return order, nil
}

// Create places a new order for the given customer. Each line is priced
// from the current catalog and checked against stock.
func (s *OrderService) Create(ctx context.Context, req OrderRequest, customer models.UserInfo) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid order payload")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0.0
	for _, line := range req.Items {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("product %s does not exist", line.ProductID))
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to price order")
		}
		if !product.Active {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("product %s is not available", product.SKU))
		}
		if product.Stock < line.Quantity {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("insufficient stock for %s", product.SKU))
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		total += product.Price * float64(line.Quantity)
	}

	now := time.Now().UTC()
	order := &models.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
		Total:           total,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if oid, err := primitive.ObjectIDFromHex(customer.ID); err == nil {
		order.UserID = oid
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to place order")
	}
	return order, nil
}

// UpdateStatus moves an order through its lifecycle. Delivered and
// cancelled orders are terminal.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req UpdateOrderStatusRequest) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}
	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown order status")
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("order is already %s", order.Status))
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, status, now); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update order status")
	}
	order.Status = status
	order.UpdatedAt = now
	return order, nil
}

// Invoice renders a PDF invoice for one order. Non-admin callers may only
// fetch invoices for their own orders.
func (s *OrderService) Invoice(ctx context.Context, id string, caller models.UserInfo, admin bool) ([]byte, string, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !admin && order.UserID.Hex() != caller.ID {
		return nil, "", appErrors.Clone(appErrors.ErrForbidden, "invoice belongs to another customer")
	}

	data := export.Dataset{
		Headers: []string{"item", "unit price", "qty", "amount"},
	}
	for _, item := range order.Items {
		data.Rows = append(data.Rows, map[string]string{
			"item":       item.Name,
			"unit price": fmt.Sprintf("%.2f", item.Price),
			"qty":        fmt.Sprintf("%d", item.Quantity),
			"amount":     fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)),
		})
	}
	data.Rows = append(data.Rows, map[string]string{
		"item":   "TOTAL",
		"amount": fmt.Sprintf("%.2f", order.Total),
	})

	payload, err := s.pdf.Render(data, fmt.Sprintf("Invoice %s", order.OrderNumber))
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render invoice")
	}
	return payload, fmt.Sprintf("invoice-%s.pdf", order.OrderNumber), nil
}

// Delete removes an order by id.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "order not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete order")
	}
	return nil
}

func newOrderNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("IH-%s", raw[:10])
}
