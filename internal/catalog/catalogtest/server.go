// Package catalogtest serves a small in-memory catalog over httptest for tests.
package catalogtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// DefaultStats are the six base stats the catalog reports for every item.
var DefaultStats = []string{ //nolint:gochecknoglobals // Fixture data.
	"hp", "attack", "defense", "special-attack", "special-defense", "speed",
}

// Creature is one fixture entry.
type Creature struct {
	ID     int
	Name   string
	Types  []string
	Stats  []int
	Height int
	Weight int
	// NoSprites leaves both sprite URLs null.
	NoSprites bool
}

// Server is a fake paginated catalog.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	creatures []Creature
	delays    map[string]time.Duration
	failures  map[string]int
	hits      atomic.Int64
}

// NewServer starts a server with the given creatures and registers cleanup on t.
func NewServer(t testing.TB, creatures ...Creature) *Server {
	t.Helper()
	s := &Server{
		creatures: creatures,
		delays:    make(map[string]time.Duration),
		failures:  make(map[string]int),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon/", s.handle)
	mux.HandleFunc("/sprites/", s.handleSprite)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root to hand to catalog.NewClient.
func (s *Server) BaseURL() string { return s.URL + "/api/v2" }

// Delay holds the detail response for name by d.
func (s *Server) Delay(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[name] = d
}

// Fail makes requests for name (a creature name, "page" for list pages, or a
// sprite file name) answer with status.
func (s *Server) Fail(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[name] = status
}

// Hits returns the number of requests served.
func (s *Server) Hits() int64 { return s.hits.Load() }

// PageURL returns the list URL for limit/offset.
func (s *Server) PageURL(limit, offset int) string {
	return fmt.Sprintf("%s/pokemon/?limit=%d&offset=%d", s.BaseURL(), limit, offset)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon"), "/")
	if rest == "" {
		s.handlePage(w, r)
		return
	}
	s.handleDetail(w, rest)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if status, ok := s.failure("page"); ok {
		http.Error(w, "page unavailable", status)
		return
	}

	limit := atoiDefault(r.URL.Query().Get("limit"), 20)
	offset := atoiDefault(r.URL.Query().Get("offset"), 0)

	s.mu.Lock()
	total := len(s.creatures)
	end := min(offset+limit, total)
	start := min(offset, total)
	page := s.creatures[start:end]
	s.mu.Unlock()

	results := make([]map[string]string, 0, len(page))
	for _, c := range page {
		results = append(results, map[string]string{
			"name": c.Name,
			"url":  fmt.Sprintf("%s/pokemon/%d/", s.BaseURL(), c.ID),
		})
	}

	body := map[string]any{
		"count":    total,
		"next":     nil,
		"previous": nil,
		"results":  results,
	}
	if end < total {
		body["next"] = s.PageURL(limit, end)
	}
	if offset > 0 {
		body["previous"] = s.PageURL(limit, max(offset-limit, 0))
	}
	writeJSON(w, body)
}

func (s *Server) handleDetail(w http.ResponseWriter, key string) {
	c, ok := s.lookup(key)
	if !ok {
		http.NotFound(w, nil)
		return
	}
	if status, failing := s.failure(c.Name); failing {
		http.Error(w, "detail unavailable", status)
		return
	}
	s.mu.Lock()
	delay := s.delays[c.Name]
	s.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	types := make([]map[string]any, 0, len(c.Types))
	for i, t := range c.Types {
		types = append(types, map[string]any{"slot": i + 1, "type": map[string]string{"name": t}})
	}
	stats := make([]map[string]any, 0, len(c.Stats))
	for i, v := range c.Stats {
		label := fmt.Sprintf("stat-%d", i)
		if i < len(DefaultStats) {
			label = DefaultStats[i]
		}
		stats = append(stats, map[string]any{"base_stat": v, "stat": map[string]string{"name": label}})
	}
	sprites := map[string]any{"front_default": nil, "back_default": nil}
	if !c.NoSprites {
		sprites["front_default"] = fmt.Sprintf("%s/sprites/%d.png", s.URL, c.ID)
		sprites["back_default"] = fmt.Sprintf("%s/sprites/back/%d.png", s.URL, c.ID)
	}

	writeJSON(w, map[string]any{
		"id":      c.ID,
		"name":    c.Name,
		"height":  c.Height,
		"weight":  c.Weight,
		"sprites": sprites,
		"types":   types,
		"stats":   stats,
	})
}

func (s *Server) handleSprite(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	name := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	if status, ok := s.failure(name); ok {
		http.Error(w, "sprite unavailable", status)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write([]byte("PNG:" + r.URL.Path))
}

func (s *Server) lookup(key string) (Creature, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := strconv.Atoi(key)
	for _, c := range s.creatures {
		if (err == nil && c.ID == id) || c.Name == key {
			return c, true
		}
	}
	return Creature{}, false
}

func (s *Server) failure(name string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.failures[name]
	return status, ok
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Starters returns a small fixture set of nine creatures.
func Starters() []Creature {
	return []Creature{
		{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}, Stats: []int{45, 49, 49, 65, 65, 45}, Height: 7, Weight: 69},
		{ID: 2, Name: "ivysaur", Types: []string{"grass", "poison"}, Stats: []int{60, 62, 63, 80, 80, 60}, Height: 10, Weight: 130},
		{ID: 3, Name: "venusaur", Types: []string{"grass", "poison"}, Stats: []int{80, 82, 83, 100, 100, 80}, Height: 20, Weight: 1000},
		{ID: 4, Name: "charmander", Types: []string{"fire"}, Stats: []int{39, 52, 43, 60, 50, 65}, Height: 6, Weight: 85},
		{ID: 5, Name: "charmeleon", Types: []string{"fire"}, Stats: []int{58, 64, 58, 80, 65, 80}, Height: 11, Weight: 190},
		{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}, Stats: []int{78, 84, 78, 109, 85, 100}, Height: 17, Weight: 905},
		{ID: 7, Name: "squirtle", Types: []string{"water"}, Stats: []int{44, 48, 65, 50, 64, 43}, Height: 5, Weight: 90},
		{ID: 8, Name: "wartortle", Types: []string{"water"}, Stats: []int{59, 63, 80, 65, 80, 58}, Height: 10, Weight: 225},
		{ID: 25, Name: "pikachu", Types: []string{"electric"}, Stats: []int{35, 55, 40, 50, 50, 90}, Height: 4, Weight: 60},
	}
}
