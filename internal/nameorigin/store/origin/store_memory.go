package origin

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

// InMemoryStore keeps rows in insertion order with a snapshot of their
// country.
type InMemoryStore struct {
	mu      sync.RWMutex
	origins []models.NameOrigin
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) FindByName(_ context.Context, name models.Name) ([]*models.NameOrigin, error) {
	return s.filter(func(o *models.NameOrigin) bool { return o.Name == name }, 0), nil
}

func (s *InMemoryStore) FindTopByCountry(_ context.Context, code string, limit int) ([]*models.NameOrigin, error) {
	if limit <= 0 {
		return []*models.NameOrigin{}, nil
	}
	return s.filter(func(o *models.NameOrigin) bool { return o.CountryCode == code }, limit), nil
}

func (s *InMemoryStore) Add(_ context.Context, origin *models.NameOrigin) error {
	if origin == nil || !origin.Resolved() {
		return fmt.Errorf("add name origin: resolved country is required")
	}
	stored := *origin
	stored.Country = origin.Country.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.origins = append(s.origins, stored)
	return nil
}

func (s *InMemoryStore) Touch(_ context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.origins {
		if _, ok := want[s.origins[i].ID]; ok {
			s.origins[i].LastAccessedAt = at
		}
	}
	return nil
}

func (s *InMemoryStore) filter(match func(*models.NameOrigin) bool, limit int) []*models.NameOrigin {
	s.mu.RLock()
	out := []*models.NameOrigin{}
	for i := range s.origins {
		if match(&s.origins[i]) {
			o := s.origins[i]
			o.Country = o.Country.Clone()
			out = append(out, &o)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Probability.Float64(), out[j].Probability.Float64()
		if pi != pj {
			return pi > pj
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
