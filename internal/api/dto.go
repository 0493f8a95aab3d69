package api

import "github.com/starford/note/internal/models"

// CreateCollectionRequest is the request body for creating a collection.
type CreateCollectionRequest struct {
	Name string `json:"name"`
}

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Body string `json:"body"`
}

// CollectionListResponse wraps collection listings.
type CollectionListResponse struct {
	Collections []models.Collection `json:"collections"`
	Total       int                 `json:"total"`
}

// NoteListResponse wraps note listings.
type NoteListResponse struct {
	Notes []models.Note `json:"notes"`
	Total int           `json:"total"`
}
