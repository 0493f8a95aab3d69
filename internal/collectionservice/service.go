// Package collectionservice exposes collection operations.
package collectionservice

import (
	"context"

	"github.com/starford/note/internal/models"
	"github.com/starford/note/internal/storage"
)

// Service forwards collection operations to the storage backend.
type Service struct {
	backend storage.Backend
}

// NewService creates a new collection service.
func NewService(backend storage.Backend) *Service {
	return &Service{backend: backend}
}

// CreateCollection creates a collection named name.
func (s *Service) CreateCollection(ctx context.Context, name string) (*models.Collection, error) {
	return s.backend.CreateCollection(ctx, name)
}

// ListCollections returns every collection.
func (s *Service) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return s.backend.ListCollections(ctx)
}
