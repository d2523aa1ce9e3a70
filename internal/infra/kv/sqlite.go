package kv

import (
	"context"
	"database/sql"

	"salepoint/config"
	"salepoint/internal/domain/repository"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SQLite persists the key-value map in a single-table SQLite database.
// One row per slot; Set replaces the whole value, which gives the
// record stores their atomicity-by-replacement contract for free.
type SQLite struct {
	db *sql.DB
}

var _ repository.KeyValue = (*SQLite)(nil)

// NewSQLite opens (and if needed creates) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}

	// The medium is synchronous and single-writer by design.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "create slots table")
	}

	return &SQLite{db: db}, nil
}

// New selects the configured medium. Unknown drivers fall back to the
// in-memory map so the application stays usable, just not durable.
func New(cfg *config.Config) (repository.KeyValue, error) {
	if cfg.Storage != nil && cfg.Storage.Driver == "sqlite" {
		return NewSQLite(cfg.Storage.Path)
	}

	return NewMemory(), nil
}

// Get returns the value stored under key, and whether it exists.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get slot %s", key)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)

	return errors.Wrapf(err, "set slot %s", key)
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)

	return errors.Wrapf(err, "delete slot %s", key)
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return errors.WithStack(s.db.Close())
}
