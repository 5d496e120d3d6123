// ABOUTME: Query domain model represents one aggregation request
// ABOUTME: Provides defaults and validation; a Query is immutable once built

package domain

import "strings"

// Sort field names accepted by a Query. Any other value falls back to a
// lexical compare on the raw field (see the catalog sorter).
const (
	OrderByDate  = "date"
	OrderByPrice = "price"
	OrderByTitle = "title"
	OrderByName  = "name"
)

// Sort directions. Descending is the default.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Query describes one aggregation request. It is the unit hashed into a
// cache fingerprint, so equivalent queries must normalize identically.
type Query struct {
	// Sources restricts the query to specific source IDs; empty means
	// every enabled source
	Sources []string

	// Page is the 1-based page number of the global result
	Page int

	// PerPage is the number of items per page
	PerPage int

	// OrderBy is the sort field (date, price, title/name)
	OrderBy string

	// Order is the sort direction, ASC or DESC
	Order string

	// Optional filters, forwarded to each source when non-empty
	Category string
	Tag      string
	MinPrice string
	MaxPrice string
}

// ApplyDefaults normalizes a query in place: page and per-page floors,
// default sort field and direction.
func (q *Query) ApplyDefaults() {
	if q.Page < 1 {
		q.Page = 1
	}

	if q.PerPage < 1 {
		q.PerPage = 12
	}

	if q.OrderBy == "" {
		q.OrderBy = OrderByDate
	}

	if strings.ToUpper(q.Order) == OrderAsc {
		q.Order = OrderAsc
	} else {
		q.Order = OrderDesc
	}
}

// PageResult is the merged, sorted, paginated response unit. It is never
// mutated after construction; cached copies are returned verbatim.
type PageResult struct {
	// Items is the page window of the globally sorted union
	Items []Product

	// Total is the sum of every successful source's reported total
	Total int

	// MaxPages is ceil(Total / PerPage)
	MaxPages int
}

// EmptyPageResult is the defined response when no source is resolved or
// no source returned anything.
func EmptyPageResult() PageResult {
	return PageResult{
		Items:    []Product{},
		Total:    0,
		MaxPages: 0,
	}
}
