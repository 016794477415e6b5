package loader_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rshade/dexterm/internal/catalog"
)

// fakeFetcher serves pages and details from memory. A detail hook, when
// set, runs before the detail is returned and may block or fail.
type fakeFetcher struct {
	pages   map[string]catalog.PageResponse
	details map[string]catalog.DetailResponse
	hook    func(url string) error
	// onComplete runs after a detail is recorded as completed.
	onComplete func(name string)

	mu        sync.Mutex
	completed []string
	inFlight  atomic.Int32
	maxFlight atomic.Int32
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages:   make(map[string]catalog.PageResponse),
		details: make(map[string]catalog.DetailResponse),
	}
}

func (f *fakeFetcher) FetchPage(_ context.Context, pageURL string) (catalog.PageResponse, error) {
	page, ok := f.pages[pageURL]
	if !ok {
		return catalog.PageResponse{}, fmt.Errorf("%w: no page %s", catalog.ErrFetch, pageURL)
	}
	return page, nil
}

func (f *fakeFetcher) FetchDetail(_ context.Context, detailURL string) (catalog.DetailResponse, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxFlight.Load()
		if n <= cur || f.maxFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	if f.hook != nil {
		if err := f.hook(detailURL); err != nil {
			return catalog.DetailResponse{}, err
		}
	}
	d, ok := f.details[detailURL]
	if !ok {
		return catalog.DetailResponse{}, fmt.Errorf("%w: no detail %s", catalog.ErrFetch, detailURL)
	}

	f.mu.Lock()
	f.completed = append(f.completed, d.Name)
	f.mu.Unlock()
	if f.onComplete != nil {
		f.onComplete(d.Name)
	}
	return d, nil
}

func (f *fakeFetcher) DetailURL(identifier string) string {
	return "detail://" + identifier
}

func (f *fakeFetcher) completionOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.completed...)
}

// addPage registers a page whose results are names, each with a detail of
// the given classification.
func (f *fakeFetcher) addPage(pageURL string, next, previous *string, names ...string) {
	results := make([]catalog.SummaryRecord, 0, len(names))
	for _, name := range names {
		url := "detail://" + name
		results = append(results, catalog.SummaryRecord{Name: name, URL: url})
		f.details[url] = detailResponse(name, "normal", 6)
	}
	f.pages[pageURL] = catalog.PageResponse{
		Count:    len(names),
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

func detailResponse(name, classification string, stats int) catalog.DetailResponse {
	front := "https://img.test/" + name + ".png"
	back := "https://img.test/back/" + name + ".png"
	r := catalog.DetailResponse{
		Name:    name,
		Height:  4,
		Weight:  60,
		Sprites: catalog.SpriteSet{FrontDefault: &front, BackDefault: &back},
		Types:   []catalog.TypeSlot{{Slot: 1, Type: catalog.NamedRecord{Name: classification}}},
	}
	for i := range stats {
		r.Stats = append(r.Stats, catalog.StatRecord{
			BaseStat: 10 * (i + 1),
			Stat:     catalog.NamedRecord{Name: fmt.Sprintf("stat-%d", i)},
		})
	}
	return r
}

func strPtr(s string) *string { return &s }

var errBoom = errors.New("boom")
