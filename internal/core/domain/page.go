package domain

// Page size bounds applied to every list endpoint.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is the raw page selection of a list call.
type PageRequest struct {
	Page     int
	PageSize int
}

// Pagination describes the page actually returned.
type Pagination struct {
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate clamps the request against total and returns the resulting
// pagination together with the row offset. Out of range pages snap to the
// nearest valid page instead of failing.
func Paginate(req PageRequest, total int) (Pagination, int) {
	size := req.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	page := req.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
	}, (page - 1) * size
}
