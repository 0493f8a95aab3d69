package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/note/internal/core"
	"github.com/starford/note/internal/sse"
)

// Handler holds API route handlers.
type Handler struct {
	api    *core.API
	events Publisher
}

// NewHandler creates a new Handler. events may be nil.
func NewHandler(api *core.API, events Publisher) *Handler {
	return &Handler{api: api, events: events}
}

func (h *Handler) publish(event sse.Event) {
	if h.events != nil {
		h.events.Publish(event)
	}
}

// Request size caps for the HTTP API. The store itself does not limit note
// bodies; the CLI and MCP server accept any length.
const (
	maxCollectionRequestBytes = 1 << 20
	maxNoteRequestBytes       = 10 << 20
)

// decodeJSON reads at most limit bytes of r's body into dst. On failure it
// writes the response (413 when the body is too large, 400 otherwise).
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge,
				errorBody(fmt.Sprintf("request body exceeds %d bytes", limit)))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	return true
}

// collectionID parses the {id} URL parameter.
func collectionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// ListCollections handles GET /api/collections.
func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	colls, err := h.api.Collections.ListCollections(r.Context())
	if err != nil {
		writeStoreError(w, "list collections", err)
		return
	}
	writeJSON(w, http.StatusOK, CollectionListResponse{Collections: colls, Total: len(colls)})
}

// CreateCollection handles POST /api/collections.
func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req CreateCollectionRequest
	if !decodeJSON(w, r, maxCollectionRequestBytes, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
		return
	}
	coll, err := h.api.Collections.CreateCollection(r.Context(), req.Name)
	if err != nil {
		writeStoreError(w, "create collection", err)
		return
	}
	h.publish(sse.Event{Type: sse.EventCollectionCreated, Data: coll})
	writeJSON(w, http.StatusCreated, coll)
}

// ListNotes handles GET /api/collections/{id}/notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := collectionID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("collection id must be an integer"))
		return
	}
	notes, err := h.api.Notes.ListNotes(r.Context(), id)
	if err != nil {
		writeStoreError(w, "list notes", err)
		return
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Notes: notes, Total: len(notes)})
}

// CreateNote handles POST /api/collections/{id}/notes.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := collectionID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("collection id must be an integer"))
		return
	}
	var req CreateNoteRequest
	if !decodeJSON(w, r, maxNoteRequestBytes, &req) {
		return
	}
	if req.Body == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("body is required"))
		return
	}
	note, err := h.api.Notes.CreateNote(r.Context(), id, req.Body)
	if err != nil {
		writeStoreError(w, "create note", err)
		return
	}
	h.publish(sse.Event{Type: sse.EventNoteCreated, Collection: note.CollectionID, Data: note})
	writeJSON(w, http.StatusCreated, note)
}
