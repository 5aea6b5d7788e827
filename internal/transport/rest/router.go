package rest

import (
	"net/http"

	"github.com/heartmarshall/vocabcheck/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Levels   *LevelsHandler
	Validate *ValidateHandler
	Sessions *SessionHandler
}

// NewRouter mounts every endpoint. limit wraps the endpoints that run the
// tagger; pass nil to disable rate limiting.
func NewRouter(h Handlers, limit middleware.Middleware) *http.ServeMux {
	limited := func(fn http.HandlerFunc) http.Handler { return middleware.Chain(limit)(fn) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/levels", h.Levels.List)
	mux.Handle("POST /api/validate", limited(h.Validate.Validate))

	mux.Handle("POST /api/sessions", limited(h.Sessions.Create))
	mux.HandleFunc("GET /api/sessions/{id}", h.Sessions.Get)
	mux.Handle("PUT /api/sessions/{id}/level", limited(h.Sessions.SelectLevel))
	mux.Handle("PUT /api/sessions/{id}/text", limited(h.Sessions.SetText))
	mux.HandleFunc("DELETE /api/sessions/{id}", h.Sessions.Delete)

	return mux
}
