// SPDX-License-Identifier: MIT

// Package session holds the caller-owned collection of matrices a calculator
// session works with.
//
// Entries are addressed by a 0-based index assigned in insertion order.
// Removing an entry never frees its index for reuse, so an index printed
// to a user stays valid (or becomes ErrNotFound) for the session's lifetime.
//
// # Implementations
//
//   - MemoryStore: process-local, guarded by a sync.RWMutex.
//   - SQLiteStore: durable, backed by modernc.org/sqlite.
//     WAL journal, NORMAL synchronous mode, 5s busy timeout, a single
//     connection, schema versioned through PRAGMA user_version.
//     Matrices are stored in their JSON form.
package session
