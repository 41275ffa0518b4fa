package repository

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/azharul-dev/islamichub-api/internal/models"
)

// Descriptor describes how one content type is stored and queried. The
// same descriptor drives the Mongo store and the in-memory fallback store
// so both tiers apply identical filter and search semantics.
type Descriptor struct {
	// Collection is the store collection name.
	Collection string
	// SearchFields are string fields matched case-insensitively by the
	// free-text search term, combined with OR.
	SearchFields []string
	// TagFields are string-array fields included in the search.
	TagFields []string
	// DefaultSort orders listings (newest-first for most types).
	DefaultSort bson.D
}

// ListParams carries per-request listing inputs shared by every content
// type: pagination, free-text search and exact-match equality filters
// keyed by bson field name.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Filter bson.M
}

// Normalize coerces out-of-range pagination values to defaults.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = models.DefaultPageSize
	}
	if p.Filter == nil {
		p.Filter = bson.M{}
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p ListParams) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// buildFilter merges the equality filters with a case-insensitive
// substring $or across the descriptor's search and tag fields.
func buildFilter(desc Descriptor, p ListParams) bson.M {
	filter := bson.M{}
	for k, v := range p.Filter {
		filter[k] = v
	}

	term := strings.TrimSpace(p.Search)
	if term == "" {
		return filter
	}

	pattern := regexp.QuoteMeta(term)
	or := make([]bson.M, 0, len(desc.SearchFields)+len(desc.TagFields))
	for _, f := range desc.SearchFields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	for _, f := range desc.TagFields {
		or = append(or, bson.M{f: bson.M{"$elemMatch": bson.M{"$regex": pattern, "$options": "i"}}})
	}
	if len(or) > 0 {
		filter["$or"] = or
	}
	return filter
}
