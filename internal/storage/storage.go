// Package storage owns the single SQLite connection backing the note store and
// translates collection and note operations into statements against it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/note/internal/apperr"
)

const defaultBusyTimeout = 5 * time.Second

// DB wraps a sql.DB with store-specific operations.
type DB struct {
	conn *sql.DB
	path string
}

type openOptions struct {
	busyTimeout time.Duration
}

// OpenOption tunes how Open connects to the database file.
type OpenOption func(*openOptions)

// WithBusyTimeout sets how long SQLite waits on a lock held by another process.
func WithBusyTimeout(d time.Duration) OpenOption {
	return func(o *openOptions) {
		if d > 0 {
			o.busyTimeout = d
		}
	}
}

// Open opens (or creates) the SQLite database at path. It does not create any
// tables; see InitializeSchema.
func Open(path string, opts ...OpenOption) (*DB, error) {
	o := openOptions{busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	conn, err := sql.Open("sqlite3", dsn(path, o.busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("storage: open db: %w: %w", apperr.ErrConnection, err)
	}
	// One process, one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: ping: %w: %w", apperr.ErrConnection, err)
	}
	return &DB{conn: conn, path: path}, nil
}

// dsn builds a file: URI so that '?', '#' and '%' in path stay part of the
// file name instead of starting the parameter list.
func dsn(path string, busyTimeout time.Duration) string {
	u := &url.URL{Path: path}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", u.EscapedPath(), busyTimeout.Milliseconds())
}

// Path returns the database file the handle was opened on.
func (db *DB) Path() string {
	return db.path
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Installed reports whether the schema has been initialized.
func (db *DB) Installed(ctx context.Context) (bool, error) {
	var n int
	err := db.conn.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'collections'`,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: installed: %w", err)
	}
	return n > 0, nil
}
