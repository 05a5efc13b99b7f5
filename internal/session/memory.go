// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/matcalc/matrix"
)

// MemoryStore keeps entries in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	next    int
	entries map[int]Entry
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int]Entry), now: time.Now}
}

// Add implements Store.
func (s *MemoryStore) Add(ctx context.Context, name string, m *matrix.Matrix) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	if m == nil {
		return Entry{}, fmt.Errorf("add %q: %w", name, ErrNilMatrix)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := newEntry(s.next, name, m, s.now())
	s.entries[e.Index] = e
	s.next++
	return e, nil
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, index int) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[index]
	if !ok {
		return Entry{}, fmt.Errorf("get %d: %w", index, ErrNotFound)
	}
	return e, nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// Remove implements Store.
func (s *MemoryStore) Remove(ctx context.Context, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[index]; !ok {
		return fmt.Errorf("remove %d: %w", index, ErrNotFound)
	}
	delete(s.entries, index)
	return nil
}

// Close implements Store. It is a no-op.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
