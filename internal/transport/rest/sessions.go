package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/session"
	"github.com/heartmarshall/vocabcheck/pkg/ctxutil"
)

type sessionManager interface {
	Create(ctx context.Context, level string) (*session.Session, error)
	Get(id uuid.UUID) (*session.Session, error)
	Delete(id uuid.UUID) error
}

// SessionHandler serves the editing session endpoints.
type SessionHandler struct {
	sessions sessionManager
	log      *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions sessionManager, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, log: logger.With("handler", "session")}
}

// SessionResponse is the client view of a session.
type SessionResponse struct {
	ID          uuid.UUID `json:"id"`
	Level       string    `json:"level"`
	Loading     bool      `json:"loading"`
	Pending     bool      `json:"pending"`
	Alert       string    `json:"alert,omitempty"`
	TaggerError string    `json:"taggerError,omitempty"`
	Text        string    `json:"text"`
	ResultResponse
}

func newSessionResponse(st session.State) SessionResponse {
	return SessionResponse{
		ID:             st.ID,
		Level:          st.Level,
		Loading:        st.Loading,
		Pending:        st.Pending,
		Alert:          st.Alert,
		TaggerError:    st.TaggerErr,
		Text:           st.Text,
		ResultResponse: newResultResponse(st.Result),
	}
}

// CreateSessionRequest is the body of POST /api/sessions. The body is optional.
type CreateSessionRequest struct {
	Level string `json:"level"`
}

// LevelRequest is the body of PUT /api/sessions/{id}/level.
type LevelRequest struct {
	Level string `json:"level"`
}

// TextRequest is the body of PUT /api/sessions/{id}/text.
type TextRequest struct {
	Text string `json:"text"`
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	s, err := h.sessions.Create(r.Context(), req.Level)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/sessions/"+s.ID.String())
	writeJSON(w, http.StatusCreated, newSessionResponse(s.State()))
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, r, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(s.State()))
}

// SelectLevel handles PUT /api/sessions/{id}/level. The load continues in
// the background; clients poll the session for completion.
func (h *SessionHandler) SelectLevel(w http.ResponseWriter, r *http.Request) {
	s, r, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req LevelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if req.Level == "" {
		writeError(w, r, h.log, domain.NewValidationError("level", "required"))
		return
	}

	if err := s.SelectLevel(r.Context(), req.Level); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, newSessionResponse(s.State()))
}

// SetText handles PUT /api/sessions/{id}/text.
func (h *SessionHandler) SetText(w http.ResponseWriter, r *http.Request) {
	s, r, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req TextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := s.SetText(req.Text); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, newSessionResponse(s.State()))
}

// Delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.sessions.Delete(id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, *http.Request, bool) {
	id, err := parseSessionID(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return nil, r, false
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		writeError(w, r, h.log, err)
		return nil, r, false
	}
	return s, r.WithContext(ctxutil.WithSessionID(r.Context(), id)), true
}

func parseSessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
