// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrNotFound is returned when no entry has the requested index.
	ErrNotFound = errors.New("session: matrix not found")

	// ErrNilMatrix is returned by Add when given a nil matrix.
	ErrNilMatrix = errors.New("session: nil matrix")
)

// Entry is one stored matrix.
type Entry struct {
	Index     int            `json:"index"`
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Matrix    *matrix.Matrix `json:"matrix"`
	CreatedAt time.Time      `json:"created_at"`
}

// Label returns the entry name, or "#<index>" for unnamed entries.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return "#" + strconv.Itoa(e.Index)
}

// Store is an indexed, insertion-ordered collection of matrices.
type Store interface {
	// Add stores m under name and returns the new entry.
	Add(ctx context.Context, name string, m *matrix.Matrix) (Entry, error)
	// Get returns the entry at index or ErrNotFound.
	Get(ctx context.Context, index int) (Entry, error)
	// List returns all entries ordered by index.
	List(ctx context.Context) ([]Entry, error)
	// Remove deletes the entry at index or returns ErrNotFound.
	Remove(ctx context.Context, index int) error
	// Close releases resources held by the store.
	Close() error
}

func newEntry(index int, name string, m *matrix.Matrix, now time.Time) Entry {
	return Entry{
		Index:     index,
		ID:        uuid.New(),
		Name:      name,
		Matrix:    m,
		CreatedAt: now.UTC(),
	}
}
