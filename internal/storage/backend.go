package storage

import (
	"context"

	"github.com/starford/note/internal/models"
)

// Backend is the set of store operations the services depend on.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type Backend interface {
	InitializeSchema(ctx context.Context) error
	Installed(ctx context.Context) (bool, error)
	CreateCollection(ctx context.Context, name string) (*models.Collection, error)
	ListCollections(ctx context.Context) ([]models.Collection, error)
	CreateNote(ctx context.Context, collectionID int64, body string) (*models.Note, error)
	ListNotes(ctx context.Context, collectionID int64) ([]models.Note, error)
}

// Verify *DB satisfies Backend at compile time.
var _ Backend = (*DB)(nil)
