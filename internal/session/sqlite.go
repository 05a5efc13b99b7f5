// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/matcalc/matrix"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - initial schema
// 1 - rows/cols columns and name index
const currentSchemaVersion = 1

const timeFormat = time.RFC3339Nano

// SQLiteStore persists entries in a SQLite database.
//
// Indices map to the AUTOINCREMENT key minus one, so the first matrix of a
// fresh database is index 0.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite creates or opens the database at path. ":memory:" yields a
// private in-memory database. Pragmas and migrations are applied on every
// open; opening is idempotent.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("session: storage path is required")
	}
	if path != ":memory:" {
		path = filepath.Clean(path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	// SQLite has one writer; a single connection also keeps ":memory:"
	// databases from splitting across pool connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add implements Store.
func (s *SQLiteStore) Add(ctx context.Context, name string, m *matrix.Matrix) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	if m == nil {
		return Entry{}, fmt.Errorf("add %q: %w", name, ErrNilMatrix)
	}

	data, err := json.Marshal(m)
	if err != nil {
		return Entry{}, fmt.Errorf("add %q: encode matrix: %w", name, err)
	}

	e := newEntry(0, name, m, s.now())
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO matrices (id, name, rows, cols, data, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.Name, m.Rows(), m.Cols(), string(data), e.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("add %q: %w", name, err)
	}
	idx, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("add %q: last insert id: %w", name, err)
	}
	e.Index = int(idx) - 1
	return e, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, index int) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT idx, id, name, data, created_at FROM matrices WHERE idx = ?`, index+1)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("get %d: %w", index, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get %d: %w", index, err)
	}
	return e, nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, id, name, data, created_at FROM matrices ORDER BY idx ASC`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return out, nil
}

// Remove implements Store.
func (s *SQLiteStore) Remove(ctx context.Context, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM matrices WHERE idx = ?`, index+1)
	if err != nil {
		return fmt.Errorf("remove %d: %w", index, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove %d: rows affected: %w", index, err)
	}
	if n == 0 {
		return fmt.Errorf("remove %d: %w", index, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		idx       int64
		id        string
		name      string
		data      string
		createdAt string
	)
	if err := row.Scan(&idx, &id, &name, &data, &createdAt); err != nil {
		return Entry{}, err
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d: parse id: %w", idx-1, err)
	}
	m := new(matrix.Matrix)
	if err := json.Unmarshal([]byte(data), m); err != nil {
		return Entry{}, fmt.Errorf("entry %d: decode matrix: %w", idx-1, err)
	}
	ts, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d: parse created_at: %w", idx-1, err)
	}

	return Entry{Index: int(idx) - 1, ID: uid, Name: name, Matrix: m, CreatedAt: ts}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB, path string) error {
	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	// In-memory databases cannot use WAL.
	if path != ":memory:" {
		pragmas = append([]string{"PRAGMA journal_mode = WAL"}, pragmas...)
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist and runs migrations.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return runMigrations(db)
}

// runMigrations applies incremental schema migrations based on user_version.
func runMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version < 1 {
		if err := migrateToV1(db); err != nil {
			return err
		}
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// migrateToV1 adds the rows/cols shape columns, backfilled from data, and
// indexes name.
func migrateToV1(db *sql.DB) error {
	stmts := []string{
		`ALTER TABLE matrices ADD COLUMN rows INTEGER NOT NULL DEFAULT 0`,
		`ALTER TABLE matrices ADD COLUMN cols INTEGER NOT NULL DEFAULT 0`,
		`UPDATE matrices SET rows = json_extract(data, '$.rows'), cols = json_extract(data, '$.cols')`,
		`CREATE INDEX IF NOT EXISTS idx_matrices_name ON matrices(name)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate to v1: %w", err)
		}
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
func (s *SQLiteStore) verifyPragma(name, expected string) error {
	var value string
	if err := s.db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&value); err != nil {
		return fmt.Errorf("query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
