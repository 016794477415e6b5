package loader

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/logging"
)

// DetailState is what a detail view renders. Detail is nil until a load for
// Identifier succeeds.
type DetailState struct {
	Identifier string
	Detail     *catalog.Detail
	Loading    bool
}

// DetailLoader loads a single detail record by identifier.
type DetailLoader struct {
	fetcher Fetcher

	mu    sync.Mutex
	gen   uint64
	state DetailState
}

// NewDetailLoader returns a loader with no record.
func NewDetailLoader(fetcher Fetcher) *DetailLoader {
	return &DetailLoader{fetcher: fetcher}
}

// State returns a snapshot of the current state.
func (d *DetailLoader) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	if s.Detail != nil {
		cp := *s.Detail
		s.Detail = &cp
	}
	return s
}

// Begin starts a request for identifier and drops the current record, so a
// failed reload never leaves an earlier record on screen.
func (d *DetailLoader) Begin(identifier string) Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.state.Detail = nil
	d.state.Identifier = identifier
	d.state.Loading = true
	return Ticket{Generation: d.gen, Target: identifier}
}

// Fetch performs the network work for t without touching loader state.
func (d *DetailLoader) Fetch(ctx context.Context, t Ticket) (catalog.Detail, error) {
	return FetchDetail(ctx, d.fetcher, t.Target)
}

// Complete applies the outcome of t and reports whether the record was set.
func (d *DetailLoader) Complete(ctx context.Context, t Ticket, detail catalog.Detail, err error) bool {
	log := logging.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	if t.Generation != d.gen {
		log.Debug().
			Str("identifier", t.Target).
			Uint64("generation", t.Generation).
			Uint64("current", d.gen).
			Msg("dropping stale detail load")
		return false
	}

	d.state.Loading = false
	if err != nil {
		log.Error().Err(err).Str("identifier", t.Target).Msg("detail load failed")
		return false
	}

	d.state.Detail = &detail
	return true
}

// Load runs Begin, Fetch and Complete for identifier.
func (d *DetailLoader) Load(ctx context.Context, identifier string) (catalog.Detail, error) {
	t := d.Begin(identifier)
	detail, err := d.Fetch(ctx, t)
	if applied := d.Complete(ctx, t, detail, err); !applied && err == nil {
		return catalog.Detail{}, ErrSuperseded
	}
	return detail, err
}

// FetchDetail fetches and projects the record for identifier.
// A blank identifier is rejected before any request is made.
func FetchDetail(ctx context.Context, fetcher Fetcher, identifier string) (catalog.Detail, error) {
	if strings.TrimSpace(identifier) == "" {
		return catalog.Detail{}, ErrEmptyIdentifier
	}
	resp, err := fetcher.FetchDetail(ctx, fetcher.DetailURL(identifier))
	if err != nil {
		return catalog.Detail{}, fmt.Errorf("loading %q: %w", identifier, err)
	}
	return resp.Detail(), nil
}
