package loader

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/logging"
)

// Page is the enriched result of one page load.
type Page struct {
	Entries []catalog.Entry
	Cursor  catalog.Cursor
	Count   int
}

// ListState is what a list view renders.
type ListState struct {
	Entries []catalog.Entry
	Cursor  catalog.Cursor
	Count   int
	Loading bool
	// Loaded is true once any page load has succeeded.
	Loaded bool
}

// ListOption configures a ListLoader.
type ListOption func(*ListLoader)

// WithConcurrency caps the number of detail fetches in flight per page.
// Zero or negative means one goroutine per summary.
func WithConcurrency(n int) ListOption {
	return func(l *ListLoader) { l.concurrency = n }
}

// ListLoader loads pages of enriched entries.
type ListLoader struct {
	fetcher     Fetcher
	concurrency int

	mu    sync.Mutex
	gen   uint64
	state ListState
}

// NewListLoader returns a loader with empty state.
func NewListLoader(fetcher Fetcher, opts ...ListOption) *ListLoader {
	l := &ListLoader{fetcher: fetcher}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns a snapshot of the current state.
func (l *ListLoader) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.state
	s.Entries = append([]catalog.Entry(nil), l.state.Entries...)
	return s
}

// Begin starts a request for pageURL: it marks the loader as loading and
// supersedes any request still in flight.
func (l *ListLoader) Begin(pageURL string) Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.state.Loading = true
	return Ticket{Generation: l.gen, Target: pageURL}
}

// Fetch performs the network work for t without touching loader state.
func (l *ListLoader) Fetch(ctx context.Context, t Ticket) (Page, error) {
	return FetchPage(ctx, l.fetcher, t.Target, l.concurrency)
}

// Complete applies the outcome of t. It reports whether state was replaced.
// Outcomes for superseded tickets are dropped. A failure clears the loading
// flag, is logged, and leaves the previous entries and cursor in place.
func (l *ListLoader) Complete(ctx context.Context, t Ticket, page Page, err error) bool {
	log := logging.FromContext(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if t.Generation != l.gen {
		log.Debug().
			Str("page_url", t.Target).
			Uint64("generation", t.Generation).
			Uint64("current", l.gen).
			Msg("dropping stale page load")
		return false
	}

	l.state.Loading = false
	if err != nil {
		log.Error().Err(err).Str("page_url", t.Target).Msg("page load failed")
		return false
	}

	l.state.Entries = page.Entries
	l.state.Cursor = page.Cursor
	l.state.Count = page.Count
	l.state.Loaded = true
	return true
}

// Load runs Begin, Fetch and Complete for pageURL.
func (l *ListLoader) Load(ctx context.Context, pageURL string) (Page, error) {
	t := l.Begin(pageURL)
	page, err := l.Fetch(ctx, t)
	if applied := l.Complete(ctx, t, page, err); !applied && err == nil {
		return Page{}, ErrSuperseded
	}
	return page, err
}

// FetchPage fetches the page at pageURL and then every summary's detail
// concurrently, at most limit at a time (unbounded when limit <= 0).
// Entries keep the order of the page results regardless of completion
// order. Any failure fails the whole page; a failing fetch does not cancel
// its siblings, only ctx does.
func FetchPage(ctx context.Context, fetcher Fetcher, pageURL string, limit int) (Page, error) {
	resp, err := fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		return Page{}, fmt.Errorf("loading page %s: %w", pageURL, err)
	}

	entries := make([]catalog.Entry, len(resp.Results))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, summary := range resp.Summaries() {
		g.Go(func() error {
			detail, detailErr := fetcher.FetchDetail(ctx, summary.DetailURL)
			if detailErr != nil {
				return fmt.Errorf("loading detail for %q: %w", summary.Name, detailErr)
			}
			entry := detail.Detail().Entry()
			entry.Name = summary.Name
			entries[i] = entry
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Page{}, err
	}

	logging.FromContext(ctx).Debug().
		Str("page_url", pageURL).
		Int("entries", len(entries)).
		Msg("page loaded")

	return Page{
		Entries: entries,
		Cursor:  resp.Cursor(pageURL),
		Count:   resp.Count,
	}, nil
}
