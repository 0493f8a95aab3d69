package storage

import (
	"context"
	"fmt"

	"github.com/starford/note/internal/models"
)

// CreateCollection inserts a collection and returns it with its assigned id.
func (db *DB) CreateCollection(ctx context.Context, name string) (*models.Collection, error) {
	res, err := db.conn.ExecContext(ctx, `INSERT INTO collections (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("storage: create collection: %w", classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("storage: create collection: last insert id: %w", err)
	}
	return &models.Collection{ID: id, Name: name}, nil
}

// ListCollections returns every collection in primary key order.
func (db *DB) ListCollections(ctx context.Context) ([]models.Collection, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM collections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: list collections: %w", classify(err))
	}
	defer rows.Close()

	out := make([]models.Collection, 0)
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("storage: list collections: scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateNote inserts a note into the given collection. An unknown collection
// fails with a foreign key violation.
func (db *DB) CreateNote(ctx context.Context, collectionID int64, body string) (*models.Note, error) {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO notes (body, collection_id) VALUES (?, ?)`, body, collectionID)
	if err != nil {
		return nil, fmt.Errorf("storage: create note: %w", classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("storage: create note: last insert id: %w", err)
	}
	return &models.Note{ID: id, Body: body, CollectionID: collectionID}, nil
}

// ListNotes returns the notes of a collection in primary key order. An unknown
// collection id yields an empty slice.
func (db *DB) ListNotes(ctx context.Context, collectionID int64) ([]models.Note, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, body, collection_id FROM notes WHERE collection_id = ? ORDER BY id`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("storage: list notes: %w", classify(err))
	}
	defer rows.Close()

	out := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Body, &n.CollectionID); err != nil {
			return nil, fmt.Errorf("storage: list notes: scan: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
