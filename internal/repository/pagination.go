package repository

import "github.com/maxviazov/article-catalog-service/pkg/query"

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; range negotiation belongs to pkg/query.
type Page struct {
	Limit  int
	Offset int
}

// PageFromRange flattens a negotiated query.Range into a Page.
// The range is already validated by the parser, so no checks here.
func PageFromRange(r *query.Range) Page {
	return Page{Limit: r.Limit(), Offset: int(r.Offset())}
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so handlers can render Content-Range without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}
