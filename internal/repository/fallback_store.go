package repository

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FallbackStore serves an immutable in-memory sample catalog with the
// same filter, search, sort and pagination semantics as the Mongo tier.
// It backs the read path when the document store is unreachable, so a
// repeated degraded read always produces identical results.
//
// Field access is resolved through the models' bson tags, which keeps
// the descriptor's field names meaningful for both tiers.
type FallbackStore[T any] struct {
	desc   Descriptor
	items  []T
	fields map[string]int
}

// NewFallbackStore copies and pre-sorts the catalog according to the
// descriptor's default sort. The catalog is never mutated afterwards.
func NewFallbackStore[T any](desc Descriptor, catalog []T) *FallbackStore[T] {
	items := make([]T, len(catalog))
	copy(items, catalog)

	s := &FallbackStore[T]{
		desc:   desc,
		items:  items,
		fields: bsonFieldIndex[T](),
	}

	sort.SliceStable(s.items, func(i, j int) bool {
		for _, key := range desc.DefaultSort {
			a := s.field(s.items[i], key.Key)
			b := s.field(s.items[j], key.Key)
			cmp := compareValues(a, b)
			if cmp == 0 {
				continue
			}
			if asc, _ := key.Value.(int); asc >= 0 {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})

	return s
}

// List applies the shared listing contract to the in-memory catalog.
func (s *FallbackStore[T]) List(_ context.Context, p ListParams) ([]T, int64, error) {
	p = p.Normalize()

	matched := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if s.matches(item, p) {
			matched = append(matched, item)
		}
	}

	total := int64(len(matched))
	start := int(p.Skip())
	if start >= len(matched) {
		return []T{}, total, nil
	}
	end := start + p.Limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]T, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

// FindByID returns the catalog record with the given id, or
// mongo.ErrNoDocuments to mirror the primary tier's miss signal.
func (s *FallbackStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

// FindOne returns the first record matching an equality filter.
func (s *FallbackStore[T]) FindOne(_ context.Context, filter bson.M) (*T, error) {
	for _, item := range s.items {
		if s.matchesEquals(item, filter) {
			out := item
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *FallbackStore[T]) matches(item T, p ListParams) bool {
	if !s.matchesEquals(item, p.Filter) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(p.Search))
	if term == "" {
		return true
	}

	for _, f := range s.desc.SearchFields {
		if v, ok := s.field(item, f).(string); ok {
			if strings.Contains(strings.ToLower(v), term) {
				return true
			}
		}
	}
	for _, f := range s.desc.TagFields {
		if tags, ok := s.field(item, f).([]string); ok {
			for _, tag := range tags {
				if strings.Contains(strings.ToLower(tag), term) {
					return true
				}
			}
		}
	}
	return false
}

func (s *FallbackStore[T]) matchesEquals(item T, filter bson.M) bool {
	for key, want := range filter {
		if key == "$or" {
			continue
		}
		if !equalValues(s.field(item, key), want) {
			return false
		}
	}
	return true
}

func (s *FallbackStore[T]) field(item T, name string) interface{} {
	idx, ok := s.fields[name]
	if !ok {
		return nil
	}
	return reflect.ValueOf(item).Field(idx).Interface()
}

// bsonFieldIndex maps top-level bson tag names to struct field indexes.
func bsonFieldIndex[T any]() map[string]int {
	var zero T
	t := reflect.TypeOf(zero)
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("bson")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			out[name] = i
		}
	}
	return out
}

// equalValues compares a document field with a filter value. Enum
// filters arrive as plain strings while fields are named string types,
// so comparison happens on the rendered value.
func equalValues(got, want interface{}) bool {
	if got == nil {
		return false
	}
	if reflect.DeepEqual(got, want) {
		return true
	}
	return fmt.Sprint(got) == fmt.Sprint(want)
}

// compareValues orders two field values for the default sort.
func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case int:
		bv, _ := b.(int)
		return av - bv
	case int64:
		bv, _ := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case time.Time:
		bv, _ := b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case primitive.ObjectID:
		bv, _ := b.(primitive.ObjectID)
		return strings.Compare(av.Hex(), bv.Hex())
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
