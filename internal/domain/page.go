package domain

// Pagination defaults and bounds for item listing.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PaginationParams carries validated page/limit values from the HTTP layer to
// the repo layer. Page is 1-indexed.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams normalizes optional query parameters into a usable
// PaginationParams. Nil or out-of-range values fall back to the defaults,
// and the limit is clamped to MaxLimit so a single request cannot page the
// whole table.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: DefaultPage, Limit: DefaultLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}
	return p
}

// Offset converts the page number to a zero-based row offset for SQL.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
