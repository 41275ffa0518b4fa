package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// FallbackObserver is notified whenever a read degrades to the sample
// catalog, so the activation can be counted without coupling this layer
// to the metrics registry.
type FallbackObserver interface {
	ObserveFallback(collection string)
}

// ContentStore composes the primary Mongo tier with the in-memory
// fallback tier behind one read surface. Reads try the primary store
// first; on a store error (not a clean miss) the identical query runs
// against the fallback catalog and the error is consumed. Writes always
// target the primary tier; degraded-write policy lives in the service
// layer.
//
// The store decides reachability freshly per request; there is no
// circuit breaker or health-check caching.
type ContentStore[T any] struct {
	primary  *MongoStore[T]
	fallback *FallbackStore[T]
	logger   *zap.Logger
	observer FallbackObserver
}

// NewContentStore wires both tiers. observer may be nil.
func NewContentStore[T any](primary *MongoStore[T], fallback *FallbackStore[T], logger *zap.Logger, observer FallbackObserver) *ContentStore[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentStore[T]{primary: primary, fallback: fallback, logger: logger, observer: observer}
}

// List reads one page, degrading to the fallback catalog on store failure.
func (s *ContentStore[T]) List(ctx context.Context, p ListParams) ([]T, int64, error) {
	items, total, err := s.primary.List(ctx, p)
	if err == nil {
		return items, total, nil
	}
	s.degraded("list", err)
	return s.fallback.List(ctx, p)
}

// FindByID reads one document. A clean miss surfaces as
// mongo.ErrNoDocuments without touching the fallback; only a store
// error degrades the lookup.
func (s *ContentStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	out, err := s.primary.FindByID(ctx, id)
	if err == nil || errors.Is(err, mongo.ErrNoDocuments) {
		return out, err
	}
	s.degraded("find_by_id", err)
	return s.fallback.FindByID(ctx, id)
}

// FindOne reads the first document matching an equality filter, with
// the same degradation rules as FindByID.
func (s *ContentStore[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	out, err := s.primary.FindOne(ctx, filter)
	if err == nil || errors.Is(err, mongo.ErrNoDocuments) {
		return out, err
	}
	s.degraded("find_one", err)
	return s.fallback.FindOne(ctx, filter)
}

// Exists checks the primary tier only: uniqueness is a durability
// concern and the sample catalog has no say in it.
func (s *ContentStore[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	return s.primary.Exists(ctx, filter)
}

// Insert persists to the primary tier.
func (s *ContentStore[T]) Insert(ctx context.Context, doc *T) error {
	return s.primary.Insert(ctx, doc)
}

// Update mutates the primary tier.
func (s *ContentStore[T]) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return s.primary.Update(ctx, id, set)
}

// Increment atomically bumps a counter on the primary tier.
func (s *ContentStore[T]) Increment(ctx context.Context, id primitive.ObjectID, field string, delta int64) error {
	return s.primary.Increment(ctx, id, field, delta)
}

// Delete removes from the primary tier.
func (s *ContentStore[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.primary.Delete(ctx, id)
}

func (s *ContentStore[T]) degraded(op string, err error) {
	s.logger.Warn("store unreachable, serving fallback catalog",
		zap.String("collection", s.primary.desc.Collection),
		zap.String("op", op),
		zap.Error(err))
	if s.observer != nil {
		s.observer.ObserveFallback(s.primary.desc.Collection)
	}
}
