// Package core is the single entry point over the note store: one storage
// backend shared by the collection and note services.
package core

import (
	"context"

	"github.com/starford/note/internal/collectionservice"
	"github.com/starford/note/internal/noteservice"
	"github.com/starford/note/internal/storage"
)

// API composes the services over one backend.
type API struct {
	Collections *collectionservice.Service
	Notes       *noteservice.Service

	backend storage.Backend
}

// New builds an API whose services share backend for its whole lifetime.
func New(backend storage.Backend) *API {
	return &API{
		Collections: collectionservice.NewService(backend),
		Notes:       noteservice.NewService(backend),
		backend:     backend,
	}
}

// Install initializes the schema. It is not idempotent.
func (a *API) Install(ctx context.Context) error {
	return a.backend.InitializeSchema(ctx)
}

// Installed reports whether Install has already run against the store.
func (a *API) Installed(ctx context.Context) (bool, error) {
	return a.backend.Installed(ctx)
}
