package meal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests. It mirrors the GormStore
// contract, including the silent no-op on cross-owner update/delete.
type MemoryStore struct {
	mu    sync.RWMutex
	meals map[string]Meal
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{meals: make(map[string]Meal)}
}

func (s *MemoryStore) Create(ctx context.Context, m Meal) (Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.meals[m.ID] = m
	return m, nil
}

func (s *MemoryStore) ListByOwner(ctx context.Context, ownerID string) ([]Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Meal
	for _, m := range s.meals {
		if m.UserID == ownerID {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoMeals
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) GetOne(ctx context.Context, ownerID, id string) (Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meals[id]
	if !ok || m.UserID != ownerID {
		return Meal{}, ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) Update(ctx context.Context, ownerID, id string, f UpdateFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meals[id]
	if !ok || m.UserID != ownerID {
		return nil
	}
	if f.Name != nil {
		m.Name = *f.Name
	}
	if f.Description != nil {
		m.Description = *f.Description
	}
	if f.Date != nil {
		m.Date = *f.Date
	}
	if f.IsDiet != nil {
		m.IsDiet = *f.IsDiet
	}
	m.UpdatedAt = time.Now()
	s.meals[id] = m
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.meals[id]
	if !ok || m.UserID != ownerID {
		return nil
	}
	delete(s.meals, id)
	return nil
}

func (s *MemoryStore) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, m := range s.meals {
		if m.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CountByOwnerAndDiet(ctx context.Context, ownerID string, isDiet bool) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, m := range s.meals {
		if m.UserID == ownerID && m.IsDiet == isDiet {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) ListDietDatesAsc(ctx context.Context, ownerID string) ([]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dates []time.Time
	for _, m := range s.meals {
		if m.UserID == ownerID && m.IsDiet {
			dates = append(dates, m.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
