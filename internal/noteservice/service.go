// Package noteservice exposes note operations scoped to a collection.
package noteservice

import (
	"context"

	"github.com/starford/note/internal/models"
	"github.com/starford/note/internal/storage"
)

// Service forwards note operations to the storage backend.
type Service struct {
	backend storage.Backend
}

// NewService creates a new note service.
func NewService(backend storage.Backend) *Service {
	return &Service{backend: backend}
}

// CreateNote adds a note to the collection identified by collectionID.
func (s *Service) CreateNote(ctx context.Context, collectionID int64, body string) (*models.Note, error) {
	return s.backend.CreateNote(ctx, collectionID, body)
}

// ListNotes returns the notes of a collection.
func (s *Service) ListNotes(ctx context.Context, collectionID int64) ([]models.Note, error) {
	return s.backend.ListNotes(ctx, collectionID)
}
