package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/starford/note/internal/core"
	"github.com/starford/note/internal/sse"
)

// Publisher receives change events after successful writes.
type Publisher interface {
	Publish(event sse.Event)
}

// RouterOptions configures NewRouter. The zero value serves the REST routes
// without auth, events or throttling.
type RouterOptions struct {
	// Auth verifies bearer credentials; nil disables auth.
	Auth Verifier
	// Events, if non-nil, is notified of every created entity.
	Events Publisher
	// Stream, if non-nil, is mounted at GET /events. It also accepts the
	// credential as a query parameter.
	Stream http.Handler
	// WriteLimiter, if non-nil, throttles POST routes.
	WriteLimiter *rate.Limiter
}

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(notes *core.API, opts RouterOptions) chi.Router {
	h := NewHandler(notes, opts.Events)

	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(opts.Auth, false))
		r.Get("/collections", h.ListCollections)
		r.Get("/collections/{id}/notes", h.ListNotes)

		r.Group(func(r chi.Router) {
			r.Use(WriteLimit(opts.WriteLimiter))
			r.Post("/collections", h.CreateCollection)
			r.Post("/collections/{id}/notes", h.CreateNote)
		})
	})

	if opts.Stream != nil {
		r.With(AuthMiddleware(opts.Auth, true)).Get("/events", opts.Stream.ServeHTTP)
	}

	return r
}
