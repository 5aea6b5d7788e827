package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type vocabularyProvider interface {
	Vocabulary(ctx context.Context, name string) (domain.Vocabulary, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db           dbPinger
	vocab        vocabularyProvider
	defaultLevel string
	version      string
}

// NewHealthHandler creates a HealthHandler. db may be nil when no database
// is configured; an empty defaultLevel skips the vocabulary check.
func NewHealthHandler(db dbPinger, vocab vocabularyProvider, defaultLevel, version string) *HealthHandler {
	return &HealthHandler{db: db, vocab: vocab, defaultLevel: defaultLevel, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the default vocabulary is loadable
// and the database (if configured) answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())

	status, body := http.StatusOK, "ok"
	if !ok {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{Status: body, Timestamp: time.Now()})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	status, overall := http.StatusOK, "ok"
	if !ok {
		status, overall = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	ok := true

	if h.db != nil {
		components["database"] = probe(func() error { return h.db.Ping(ctx) })
	}
	if h.vocab != nil && h.defaultLevel != "" {
		components["vocabulary"] = probe(func() error {
			_, err := h.vocab.Vocabulary(ctx, h.defaultLevel)
			return err
		})
	}

	for _, c := range components {
		if c.Status != "ok" {
			ok = false
		}
	}
	return components, ok
}

func probe(fn func() error) CompStatus {
	start := time.Now()
	if err := fn(); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
