// Package memory provides an in-process EntityStore used by the unit suites
// and local development. Semantics mirror the postgres store: last write
// wins, reads return isolated copies.
package memory

import (
	"context"
	"sort"
	"sync"

	"pawhaven/internal/infra"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/pkg/clock"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string]map[uuid.UUID]store.Item
	clk         clock.Clock
}

var _ store.EntityStore = (*Store)(nil)

func New(clk clock.Clock) *Store {
	return &Store{
		collections: make(map[string]map[uuid.UUID]store.Item),
		clk:         clk,
	}
}

func (s *Store) Find(_ context.Context, collection string, filter store.Filter) ([]store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Item
	for _, it := range s.collections[collection] {
		if filter.Matches(it) {
			out = append(out, it.Clone())
		}
	}

	if field := filter.SortDescField(); field != "" {
		sort.Slice(out, func(i, j int) bool {
			ti, tj := out[i].Time(field), out[j].Time(field)
			if !ti.IsZero() || !tj.IsZero() {
				return tj.Before(ti)
			}
			return out[i].String(field) > out[j].String(field)
		})
	} else {
		// Stable order for tests: oldest first, id as tie-break.
		sort.Slice(out, func(i, j int) bool {
			ti, tj := out[i].Time(store.FieldCreatedAt), out[j].Time(store.FieldCreatedAt)
			if !ti.Equal(tj) {
				return ti.Before(tj)
			}
			return out[i].ID().String() < out[j].ID().String()
		})
	}

	if limit := filter.LimitCount(); limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *Store) Get(_ context.Context, collection string, id uuid.UUID) (store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.collections[collection][id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "item not found in "+collection, nil)
	}
	return it.Clone(), nil
}

func (s *Store) Create(_ context.Context, collection string, data map[string]any) (store.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := store.Item(data).Clone()
	id := it.ID()
	if id == uuid.Nil {
		id = uuid.New()
		it[store.FieldID] = id.String()
	}

	now := s.clk.Now()
	if _, ok := it[store.FieldCreatedAt]; !ok {
		it[store.FieldCreatedAt] = now
	}
	it[store.FieldUpdatedAt] = now

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[uuid.UUID]store.Item)
	}
	if _, exists := s.collections[collection][id]; exists {
		return nil, infra.WrapRepoErr(infra.KindDuplicateKey, "item already exists in "+collection, nil)
	}
	s.collections[collection][id] = it

	return it.Clone(), nil
}

func (s *Store) Update(_ context.Context, collection string, id uuid.UUID, patch map[string]any) (store.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.collections[collection][id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "item not found in "+collection, nil)
	}

	updated := it.Clone()
	for k, v := range patch {
		updated[k] = v
	}
	updated[store.FieldUpdatedAt] = s.clk.Now()
	s.collections[collection][id] = updated

	return updated.Clone(), nil
}

func (s *Store) Delete(_ context.Context, collection string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "item not found in "+collection, nil)
	}
	delete(s.collections[collection], id)
	return nil
}
