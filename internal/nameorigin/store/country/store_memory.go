package country

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/pkg/platform/sentinel"
	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

// InMemoryStore keeps countries in a map. Values are copied in and out so
// callers never share state with the store.
type InMemoryStore struct {
	mu        sync.RWMutex
	countries map[string]models.Country
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{countries: make(map[string]models.Country)}
}

func (s *InMemoryStore) FindByCode(_ context.Context, code string) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.countries[code]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return c.Clone(), nil
}

func (s *InMemoryStore) Add(_ context.Context, c *models.Country) (*models.Country, error) {
	if c == nil {
		return nil, fmt.Errorf("country is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.countries[c.Code]; exists {
		return nil, fmt.Errorf("add country %s: %w", c.Code, sentinel.ErrConflict)
	}
	s.countries[c.Code] = *c.Clone()
	return c.Clone(), nil
}

func (s *InMemoryStore) Update(ctx context.Context, code string, c *models.Country) (*models.Country, error) {
	if c == nil {
		return nil, fmt.Errorf("country is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.countries[code]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	updated := *c.Clone()
	updated.Code = code
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = requestcontext.Now(ctx)
	s.countries[code] = updated
	return updated.Clone(), nil
}

func (s *InMemoryStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.countries[code]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.countries, code)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
