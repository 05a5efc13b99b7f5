// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func mustMatrix(t *testing.T, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromInts(len(rows), len(rows[0]), rows)
	require.NoError(t, err)
	return m
}

// storeFactories lets every contract test run against both implementations.
func storeFactories() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "session.db"))
			require.NoError(t, err)
			return s
		},
		"sqlite-memory": func(t *testing.T) Store {
			s, err := OpenSQLite(":memory:")
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore_AddAssignsSequentialIndices(t *testing.T) {
	for name, open := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			defer s.Close()

			a, err := s.Add(ctx, "A", mustMatrix(t, [][]int64{{1, 2}, {3, 4}}))
			require.NoError(t, err)
			b, err := s.Add(ctx, "", mustMatrix(t, [][]int64{{5}}))
			require.NoError(t, err)

			assert.Equal(t, 0, a.Index)
			assert.Equal(t, 1, b.Index)
			assert.NotEqual(t, a.ID, b.ID)
			assert.Equal(t, "A", a.Label())
			assert.Equal(t, "#1", b.Label())
		})
	}
}

func TestStore_GetReturnsStoredMatrix(t *testing.T) {
	for name, open := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			defer s.Close()

			m := mustMatrix(t, [][]int64{{1, -2, 3}})
			added, err := s.Add(ctx, "row", m)
			require.NoError(t, err)

			got, err := s.Get(ctx, added.Index)
			require.NoError(t, err)
			assert.Equal(t, added.ID, got.ID)
			assert.Equal(t, "row", got.Name)
			assert.True(t, got.Matrix.Equal(m))
			assert.True(t, added.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func TestStore_RemoveDoesNotReuseIndex(t *testing.T) {
	for name, open := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			defer s.Close()

			for i := 0; i < 3; i++ {
				_, err := s.Add(ctx, "", mustMatrix(t, [][]int64{{int64(i)}}))
				require.NoError(t, err)
			}
			require.NoError(t, s.Remove(ctx, 2))

			_, err := s.Get(ctx, 2)
			require.ErrorIs(t, err, ErrNotFound)
			require.ErrorIs(t, s.Remove(ctx, 2), ErrNotFound)

			next, err := s.Add(ctx, "", mustMatrix(t, [][]int64{{9}}))
			require.NoError(t, err)
			assert.Equal(t, 3, next.Index)

			list, err := s.List(ctx)
			require.NoError(t, err)
			idx := make([]int, len(list))
			for i, e := range list {
				idx[i] = e.Index
			}
			assert.Equal(t, []int{0, 1, 3}, idx)
		})
	}
}

func TestStore_Errors(t *testing.T) {
	for name, open := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, err := s.Add(context.Background(), "nil", nil)
			require.ErrorIs(t, err, ErrNilMatrix)

			_, err = s.Get(context.Background(), -1)
			require.ErrorIs(t, err, ErrNotFound)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = s.List(ctx)
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestStore_EmptyList(t *testing.T) {
	for name, open := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			list, err := s.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}
