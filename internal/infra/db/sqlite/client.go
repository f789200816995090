package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS quotes (
  id TEXT PRIMARY KEY,
  address TEXT,
  height REAL,
  window_count INTEGER,
  price REAL,
  created_at TEXT
);

CREATE TABLE IF NOT EXISTS gutter_quotes (
  id TEXT PRIMARY KEY,
  address TEXT,
  linear_feet REAL,
  stories INTEGER,
  price REAL,
  created_at TEXT
);
`

type DB struct {
	SQL  *sql.DB
	path string
}

// New opens the database file at path, creating its directory if needed.
// ":memory:" opens a private in-memory database.
func New(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// One connection: writes are serialized and :memory: stays a single database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: pragma: %w", err)
	}
	return &DB{SQL: db, path: path}, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.SQL.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

func (db *DB) Path() string { return db.path }

func (db *DB) Close() error { return db.SQL.Close() }
