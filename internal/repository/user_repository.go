package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/azharul-dev/islamichub-api/internal/models"
)

var userDescriptor = Descriptor{
	Collection:   "users",
	SearchFields: []string{"name", "email"},
	DefaultSort:  bson.D{{Key: "created_at", Value: -1}},
}

// UserRepository persists accounts. Identity data never degrades to
// sample records: a store failure surfaces to the caller.
type UserRepository struct {
	store *MongoStore[models.User]
}

// NewUserRepository binds the users collection.
func NewUserRepository(db *mongo.Database, opts StoreOptions) *UserRepository {
	return &UserRepository{store: NewMongoStore[models.User](db, userDescriptor, opts)}
}

// List returns accounts newest-first.
func (r *UserRepository) List(ctx context.Context, f models.UserFilter) ([]models.User, int64, error) {
	p := ListParams{Page: f.Page, Limit: f.Limit, Search: f.Search, Filter: bson.M{}}
	if f.Role != "" {
		p.Filter["role"] = f.Role
	}
	if f.Active != nil {
		p.Filter["active"] = *f.Active
	}
	return r.store.List(ctx, p)
}

// FindByID looks an account up by object id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.store.FindByID(ctx, oid)
}

// FindByEmail looks an account up by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.store.FindOne(ctx, bson.M{"email": email})
}

// EmailExists reports whether an email is already registered,
// optionally excluding one account.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	filter := bson.M{"email": email}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	return r.store.Exists(ctx, filter)
}

// Insert persists a new account.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	return r.store.Insert(ctx, u)
}

// Update replaces the mutable fields of an account. The password hash
// is only touched when non-empty.
func (r *UserRepository) Update(ctx context.Context, id string, u *models.User) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	set := bson.M{
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"active":     u.Active,
		"updated_at": u.UpdatedAt,
	}
	if u.PasswordHash != "" {
		set["password_hash"] = u.PasswordHash
	}
	return r.store.Update(ctx, oid, set)
}

// TouchLastLogin records a successful login timestamp.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return r.store.Update(ctx, id, bson.M{"last_login": at})
}

// Delete removes an account.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	return r.store.Delete(ctx, oid)
}
