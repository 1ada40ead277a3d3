package storage

import (
	"context"
	"sort"
	"sync"

	"ewintr.nl/ytchecklist/model"
)

// Memory keeps lookups in process. Used when no database is configured.
type Memory struct {
	mu      sync.Mutex
	lookups map[string]model.Lookup
}

func NewMemory() *Memory {
	return &Memory{
		lookups: map[string]model.Lookup{},
	}
}

func (m *Memory) Save(_ context.Context, lookup *model.Lookup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups[lookup.ID.String()] = *lookup

	return nil
}

func (m *Memory) Recent(_ context.Context, limit int) ([]*model.Lookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lookups := make([]*model.Lookup, 0, len(m.lookups))
	for _, l := range m.lookups {
		l := l
		lookups = append(lookups, &l)
	}
	sort.Slice(lookups, func(i, j int) bool {
		return lookups[i].CreatedAt.After(lookups[j].CreatedAt)
	})
	if limit >= 0 && len(lookups) > limit {
		lookups = lookups[:limit]
	}

	return lookups, nil
}
