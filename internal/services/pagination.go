package services

// Pagination metadata returned alongside paged result sets.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
}

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// NormalizePage clamps page and pageSize into their valid ranges.
// Out-of-range values fall back to the defaults rather than erroring,
// matching the behavior of the HTTP layer this backs.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// TotalPages is ceil(totalCount / pageSize).
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// NewPagination assembles metadata for one page of a result set.
func NewPagination(page, pageSize int, totalCount int64) Pagination {
	return Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, pageSize),
	}
}
