// Package testutil provides shared test helpers for setting up stores and mocks.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/starford/note/internal/models"
	"github.com/starford/note/internal/storage"
)

// TestDB creates an installed SQLite store in a temp dir that is cleaned up
// automatically.
func TestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "note-test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.InitializeSchema(context.Background()); err != nil {
		t.Fatal(err)
	}
	return db
}

// MockBackend is a mock implementation of storage.Backend.
type MockBackend struct {
	mock.Mock
}

// Ensure MockBackend implements storage.Backend.
var _ storage.Backend = (*MockBackend)(nil)

func (m *MockBackend) InitializeSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBackend) Installed(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockBackend) CreateCollection(ctx context.Context, name string) (*models.Collection, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockBackend) ListCollections(ctx context.Context) ([]models.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Collection), args.Error(1)
}

func (m *MockBackend) CreateNote(ctx context.Context, collectionID int64, body string) (*models.Note, error) {
	args := m.Called(ctx, collectionID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockBackend) ListNotes(ctx context.Context, collectionID int64) ([]models.Note, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}
