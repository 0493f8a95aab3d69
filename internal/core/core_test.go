package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/starford/note/internal/apperr"
	"github.com/starford/note/internal/models"
	"github.com/starford/note/internal/storage"
	"github.com/starford/note/internal/testutil"
)

func TestInstall_Delegates(t *testing.T) {
	backend := new(testutil.MockBackend)
	backend.On("InitializeSchema", mock.Anything).Return(nil).Once()

	require.NoError(t, New(backend).Install(context.Background()))
	backend.AssertExpectations(t)
}

func TestServicesShareBackend(t *testing.T) {
	backend := new(testutil.MockBackend)
	backend.On("CreateCollection", mock.Anything, "personal").
		Return(&models.Collection{ID: 1, Name: "personal"}, nil)
	backend.On("CreateNote", mock.Anything, int64(1), "buy milk").
		Return(&models.Note{ID: 1, Body: "buy milk", CollectionID: 1}, nil)

	api := New(backend)
	ctx := context.Background()
	_, err := api.Collections.CreateCollection(ctx, "personal")
	require.NoError(t, err)
	_, err = api.Notes.CreateNote(ctx, 1, "buy milk")
	require.NoError(t, err)

	backend.AssertExpectations(t)
}

func TestEndToEnd(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(t.TempDir() + "/note.db")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	api := New(db)

	installed, err := api.Installed(ctx)
	require.NoError(t, err)
	assert.False(t, installed)

	require.NoError(t, api.Install(ctx))
	assert.ErrorIs(t, api.Install(ctx), apperr.ErrSchemaConflict)

	coll, err := api.Collections.CreateCollection(ctx, "personal")
	require.NoError(t, err)
	assert.Equal(t, int64(1), coll.ID)

	_, err = api.Notes.CreateNote(ctx, coll.ID, "buy milk")
	require.NoError(t, err)

	notes, err := api.Notes.ListNotes(ctx, coll.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Note{{ID: 1, Body: "buy milk", CollectionID: 1}}, notes)

	_, err = api.Notes.CreateNote(ctx, 99, "orphan")
	assert.ErrorIs(t, err, apperr.ErrUnknownCollection)
}
