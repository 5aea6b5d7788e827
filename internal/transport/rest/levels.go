package rest

import (
	"net/http"

	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/validator"
)

type levelLister interface {
	Levels() []domain.Level
	Cached(name string) bool
}

// LevelsHandler serves the level selector list.
type LevelsHandler struct {
	levels       levelLister
	defaultLevel string
}

// NewLevelsHandler creates a LevelsHandler.
func NewLevelsHandler(levels levelLister, defaultLevel string) *LevelsHandler {
	return &LevelsHandler{levels: levels, defaultLevel: defaultLevel}
}

// LevelEntry is one selectable level. Loaded levels switch without a fetch.
type LevelEntry struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Loaded bool   `json:"loaded"`
}

// LevelsResponse lists selectable levels in selector order together with
// the vocabulary labels the validator understands.
type LevelsResponse struct {
	Levels  []LevelEntry `json:"levels"`
	Default string       `json:"default,omitempty"`
	Labels  []string     `json:"labels"`
}

// List handles GET /api/levels.
func (h *LevelsHandler) List(w http.ResponseWriter, r *http.Request) {
	levels := h.levels.Levels()
	entries := make([]LevelEntry, 0, len(levels))
	for _, l := range levels {
		entries = append(entries, LevelEntry{
			Name:   l.Name,
			Path:   l.Path,
			Loaded: h.levels.Cached(l.Name),
		})
	}
	writeJSON(w, http.StatusOK, LevelsResponse{
		Levels:  entries,
		Default: h.defaultLevel,
		Labels:  validator.Labels(),
	})
}
