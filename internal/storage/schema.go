package storage

import (
	"context"
	"fmt"
)

// The statements deliberately omit IF NOT EXISTS: installing twice is an error.
var schemaStatements = []string{
	`CREATE TABLE collections (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (name <> '')
	)`,
	`CREATE TABLE notes (
		id            INTEGER PRIMARY KEY,
		body          TEXT NOT NULL,
		collection_id INTEGER NOT NULL REFERENCES collections(id)
	)`,
	`CREATE INDEX idx_notes_collection ON notes(collection_id)`,
}

// InitializeSchema creates the collections and notes tables in one
// transaction. Running it against an initialized store fails with
// apperr.ErrSchemaConflict and leaves the store untouched.
func (db *DB) InitializeSchema(ctx context.Context) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("storage: initialize schema: %w", classify(err))
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit schema: %w", err)
	}
	return nil
}
