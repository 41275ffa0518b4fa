package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QueryObserver is notified with the duration of every primary-store
// query, labelled by collection.
type QueryObserver interface {
	ObserveStoreQuery(collection string, duration time.Duration)
}

// StoreObserver is the metrics surface the storage tiers report to.
type StoreObserver interface {
	QueryObserver
	FallbackObserver
}

// StoreOptions carries the cross-cutting knobs shared by every
// collection store. Observer may be nil; a zero QueryTimeout disables
// the per-query deadline.
type StoreOptions struct {
	QueryTimeout time.Duration
	Observer     StoreObserver
}

// MongoStore is the primary persistence tier for one content type. All
// content collections share the same query surface: filtered, sorted,
// paginated listings plus id lookups and CRUD. Every call runs under
// the configured query timeout and reports its duration.
type MongoStore[T any] struct {
	c        *mongo.Collection
	desc     Descriptor
	timeout  time.Duration
	observer QueryObserver
}

// NewMongoStore binds a descriptor to its collection.
func NewMongoStore[T any](db *mongo.Database, desc Descriptor, opts StoreOptions) *MongoStore[T] {
	return &MongoStore[T]{
		c:        db.Collection(desc.Collection),
		desc:     desc,
		timeout:  opts.QueryTimeout,
		observer: opts.Observer,
	}
}

// List returns one page of documents plus the total count of the
// filtered set.
func (s *MongoStore[T]) List(ctx context.Context, p ListParams) ([]T, int64, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()
	defer s.observe(time.Now())

	p = p.Normalize()
	filter := buildFilter(s.desc, p)

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(s.desc.DefaultSort).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := make([]T, 0, p.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID fetches a single document by its object id.
// Returns mongo.ErrNoDocuments on a clean miss.
func (s *MongoStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

// FindOne fetches the first document matching an equality filter.
func (s *MongoStore[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()
	defer s.observe(time.Now())

	var out T
	if err := s.c.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Exists reports whether any document matches the equality filter. Used
// for uniqueness pre-checks before inserts.
func (s *MongoStore[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()
	defer s.observe(time.Now())

	n, err := s.c.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert persists a new document. The caller assigns id and timestamps.
func (s *MongoStore[T]) Insert(ctx context.Context, doc *T) error {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()
	defer s.observe(time.Now())

	_, err := s.c.InsertOne(ctx, doc)
	return err
}

// Update applies a $set mutation to the document with the given id.
// Returns mongo.ErrNoDocuments when no document matched.
func (s *MongoStore[T]) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()
	defer s.observe(time.Now())

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Increment atomically adds delta to a numeric field.
func (s *MongoStore[T]) Increment(ctx context.Context, id primitive.ObjectID, field string, delta int64) error {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()
	defer s.observe(time.Now())

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes the document with the given id. Deletion is immediate
// and destructive; there is no soft-delete tier.
func (s *MongoStore[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()
	defer s.observe(time.Now())

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// queryContext bounds one driver call with the configured timeout.
func (s *MongoStore[T]) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoStore[T]) observe(start time.Time) {
	if s.observer != nil {
		s.observer.ObserveStoreQuery(s.desc.Collection, time.Since(start))
	}
}
