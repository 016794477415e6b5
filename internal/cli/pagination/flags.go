package pagination

import (
	"errors"

	"github.com/spf13/cobra"
)

// Pagination defaults and validation limits.
const (
	DefaultLimit  = 20
	MinLimit      = 1
	MaxLimit      = 1000
	DefaultOffset = 0
	MinPage       = 1
)

// Common validation errors.
var (
	ErrInvalidLimit         = errors.New("limit must be between 1 and 1000")
	ErrInvalidOffset        = errors.New("offset must be non-negative")
	ErrInvalidPage          = errors.New("page must be >= 1")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset) and page-based (--page) pagination")
)

// PaginationParams holds the paging flags. Two modes are supported:
//   - Offset-based: --limit and --offset
//   - Page-based: --page (1-based) with --limit as the page size
//
// The modes are mutually exclusive.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Limit is the number of entries per page; 0 defers to the configured page size.
	Limit int

	// Offset is the number of entries to skip (offset-based mode).
	Offset int

	// Page is the 1-based page number (page-based mode); 0 means unset.
	Page int
}

// NewPaginationParams creates a PaginationParams with default values.
func NewPaginationParams() *PaginationParams {
	return &PaginationParams{Offset: DefaultOffset}
}

// WithDefaultLimit returns a copy whose unset limit is replaced by limit.
func (p PaginationParams) WithDefaultLimit(limit int) PaginationParams {
	if p.Limit == 0 {
		p.Limit = limit
	}
	return p
}

// AddFlags registers --limit, --offset and --page on cmd, bound to p.
func (p *PaginationParams) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.Limit, "limit", p.Limit, "entries per page, 1-1000 (default: configured page size)")
	cmd.Flags().IntVar(&p.Offset, "offset", p.Offset, "entries to skip before the first page")
	cmd.Flags().IntVar(&p.Page, "page", p.Page, "1-based page number (alternative to --offset)")
}

// Validate checks that the parameters are in range and consistent.
func (p PaginationParams) Validate() error {
	if p.Limit != 0 && (p.Limit < MinLimit || p.Limit > MaxLimit) {
		return ErrInvalidLimit
	}
	if p.Offset < 0 {
		return ErrInvalidOffset
	}
	if p.Page < 0 {
		return ErrInvalidPage
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p PaginationParams) IsPageBased() bool {
	return p.Page >= MinPage
}

// CalculateOffsetLimit returns the effective offset and limit.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p PaginationParams) CalculateOffsetLimit() (offset, limit int) {
	limit = p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if p.IsPageBased() {
		return (p.Page - 1) * limit, limit
	}
	return p.Offset, limit
}
