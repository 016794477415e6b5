package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/rshade/dexterm/internal/catalog"
)

// ErrSuperseded is returned by Load when a newer request was issued before
// this one completed. The loader state was left to the newer request.
var ErrSuperseded = errors.New("request superseded by a newer one")

// ErrEmptyIdentifier is returned for a blank detail identifier. It wraps
// catalog.ErrFetch.
var ErrEmptyIdentifier = fmt.Errorf("%w: empty identifier", catalog.ErrFetch)

// Fetcher is the HTTP+JSON capability the loaders depend on.
// *catalog.Client satisfies it.
type Fetcher interface {
	FetchPage(ctx context.Context, pageURL string) (catalog.PageResponse, error)
	FetchDetail(ctx context.Context, detailURL string) (catalog.DetailResponse, error)
	DetailURL(identifier string) string
}

// Ticket identifies one request issued by Begin. Only the ticket from the
// most recent Begin can change loader state.
type Ticket struct {
	Generation uint64
	Target     string
}
