package models

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// DefaultPageSize is the page size applied when a request omits limit.
const DefaultPageSize = 12

// NewPagination normalises page/limit and derives the page count.
func NewPagination(page, limit int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
