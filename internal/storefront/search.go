package storefront

import (
	"strings"
	"sync"
	"time"

	"github.com/menzofashion/menzo/internal/models"
)

const (
	searchResultCap  = 10
	recentSearchCap  = 5
	DebounceInterval = 250 * time.Millisecond
)

// Search matches queries against the product collection and keeps a small
// persisted list of recent queries. Debounced searching waits for input to
// settle and replaces any pending search when the query changes again.
type Search struct {
	client *Client
	local  *LocalStore

	mu      sync.Mutex
	results []models.Product
	query   string
	recent  []string
	err     string
	pending *time.Timer
}

func NewSearch(client *Client, local *LocalStore) *Search {
	s := &Search{client: client, local: local}
	if local != nil {
		local.Get(KeyRecentSearches, &s.recent)
	}
	return s
}

// Perform runs a case-insensitive substring match of the query against
// product name, category, and description, keeping at most 10 matches in
// collection order. A blank query clears the results.
func (s *Search) Perform(query string) []models.Product {
	if strings.TrimSpace(query) == "" {
		s.Clear()
		return nil
	}

	var products []models.Product
	if err := s.client.Get("/products", &products); err != nil {
		s.mu.Lock()
		s.results = nil
		s.err = err.Error()
		s.mu.Unlock()
		return nil
	}

	q := strings.ToLower(query)
	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
			if len(matched) == searchResultCap {
				break
			}
		}
	}

	s.mu.Lock()
	s.results = matched
	s.query = query
	s.err = ""
	s.mu.Unlock()
	return matched
}

// PerformDebounced schedules Perform after the debounce interval, cancelling
// any still-pending search (classic trailing debounce). The callback receives
// the results when the search actually runs.
func (s *Search) PerformDebounced(query string, done func([]models.Product)) {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(DebounceInterval, func() {
		results := s.Perform(query)
		if done != nil {
			done(results)
		}
	})
	s.mu.Unlock()
}

func (s *Search) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
	s.query = ""
}

func (s *Search) Results() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Search) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Search) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// AddRecent puts the query at the front of the recent list, deduplicated and
// capped at 5. Blank queries are ignored.
func (s *Search) AddRecent(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]string, 0, len(s.recent)+1)
	updated = append(updated, query)
	for _, q := range s.recent {
		if q != query {
			updated = append(updated, q)
		}
	}
	if len(updated) > recentSearchCap {
		updated = updated[:recentSearchCap]
	}
	s.recent = updated
	if s.local != nil {
		s.local.Put(KeyRecentSearches, s.recent)
	}
}

func (s *Search) Recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}
