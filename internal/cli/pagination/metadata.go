package pagination

import (
	"math"
	"net/url"
	"strconv"

	"github.com/rshade/dexterm/internal/catalog"
)

// PaginationMeta describes where a loaded page sits in the catalog.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	Offset      int  `json:"offset"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewPaginationMeta derives page metadata from a loaded cursor. The page size
// and offset are read from the cursor's limit/offset query parameters;
// fallbackSize is used when the URL carries no limit. Next/previous
// availability always follows the cursor, not the arithmetic.
func NewPaginationMeta(cursor catalog.Cursor, totalCount, fallbackSize int) PaginationMeta {
	pageSize, offset := parseWindow(cursor.Current)
	if pageSize <= 0 {
		pageSize = fallbackSize
	}
	if pageSize <= 0 {
		pageSize = DefaultLimit
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))
	currentPage := (offset / pageSize) + 1

	return PaginationMeta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		Offset:      offset,
		HasPrevious: cursor.HasPrevious(),
		HasNext:     cursor.HasNext(),
	}
}

//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func parseWindow(rawURL string) (limit, offset int) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, 0
	}
	q := u.Query()
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
