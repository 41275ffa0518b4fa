package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/azharul-dev/islamichub-api/internal/models"
)

var orderDescriptor = Descriptor{
	Collection:   "orders",
	SearchFields: []string{"order_number", "customer_name", "customer_email"},
	DefaultSort:  bson.D{{Key: "created_at", Value: -1}},
}

// OrderRepository persists storefront orders. Orders carry real money
// and have no sample-data tier: a store failure surfaces to the caller.
type OrderRepository struct {
	store *MongoStore[models.Order]
}

// NewOrderRepository binds the orders collection.
func NewOrderRepository(db *mongo.Database, opts StoreOptions) *OrderRepository {
	return &OrderRepository{store: NewMongoStore[models.Order](db, orderDescriptor, opts)}
}

// List returns orders newest-first.
func (r *OrderRepository) List(ctx context.Context, f models.OrderFilter) ([]models.Order, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	if f.Status != "" {
		p.Filter["status"] = f.Status
	}
	if oid, err := primitive.ObjectIDFromHex(f.UserID); err == nil {
		p.Filter["user_id"] = oid
	}
	return r.store.List(ctx, p)
}

// FindByID looks an order up by object id.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// Insert persists a new order.
func (r *OrderRepository) Insert(ctx context.Context, o *models.Order) error {
	return r.store.Insert(ctx, o)
}

// UpdateStatus transitions an order's fulfilment status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, updatedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Update(ctx, oid, bson.M{"status": status, "updated_at": updatedAt})
}

// Delete removes an order.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
