package tal3a

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one window of a listing.
type Page[T any] struct {
	Items    []T
	Page     int // 1-based
	PageSize int
	Total    int
	HasNext  bool
	HasPrev  bool
}

// Paginate cuts items into the requested page. Out-of-range values fall back
// to page 1 and DefaultPageSize; page sizes above MaxPageSize are clamped.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(items)
	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return Page[T]{
		Items:    items[start:end],
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasNext:  end < total,
		HasPrev:  page > 1,
	}
}
