package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/session"
	"github.com/heartmarshall/vocabcheck/pkg/ctxutil"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

// FieldIssue is one field-level validation problem.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	// A load error can wrap ErrNotFound from its source; it is still a 502.
	case errors.Is(err, domain.ErrVocabularyLoad):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLoadInProgress):
		return http.StatusConflict
	case errors.Is(err, session.ErrTooManySessions):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes the error envelope. Internal
// errors are logged and hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Error = "validation failed"
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, FieldIssue{Field: fe.Field, Message: fe.Message})
		}
	}

	if status >= 500 && status != http.StatusBadGateway && status != http.StatusServiceUnavailable {
		attrs := []any{slog.String("error", err.Error())}
		if id, ok := ctxutil.SessionIDFromCtx(r.Context()); ok {
			attrs = append(attrs, slog.String("session_id", id.String()))
		}
		log.ErrorContext(r.Context(), "request failed", attrs...)
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}

// decodeJSON reads a JSON body of at most maxBodyBytes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return decodeBody(w, r, v, false)
}

// decodeOptionalJSON is decodeJSON for endpoints where the body may be
// omitted; an empty body leaves v untouched.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return decodeBody(w, r, v, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) error {
	if r.Body == nil {
		r.Body = http.NoBody
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "too large")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

const maxBodyBytes = 1 << 20
