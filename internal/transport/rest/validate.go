package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/render"
	"github.com/heartmarshall/vocabcheck/internal/validator"
)

type levelVocabulary interface {
	Vocabulary(ctx context.Context, name string) (domain.Vocabulary, error)
}

// ValidateHandler serves one-shot validation against a cached level.
type ValidateHandler struct {
	vocab        levelVocabulary
	tagger       domain.Tagger
	defaultLevel string
	log          *slog.Logger
}

// NewValidateHandler creates a ValidateHandler.
func NewValidateHandler(vocab levelVocabulary, tagger domain.Tagger, defaultLevel string, logger *slog.Logger) *ValidateHandler {
	return &ValidateHandler{
		vocab:        vocab,
		tagger:       tagger,
		defaultLevel: defaultLevel,
		log:          logger.With("handler", "validate"),
	}
}

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	Text  string `json:"text"`
	Level string `json:"level"`
}

// ResultResponse is a rendered validation result.
type ResultResponse struct {
	WordCount    int                 `json:"wordCount"`
	Annotations  []domain.Annotation `json:"annotations"`
	InvalidWords []string            `json:"invalidWords"`
	HTML         string              `json:"html"`
}

// ValidateResponse is the response of POST /api/validate.
type ValidateResponse struct {
	Level string `json:"level"`
	ResultResponse
}

func newResultResponse(res domain.ValidationResult) ResultResponse {
	annotations := res.Annotations
	if annotations == nil {
		annotations = []domain.Annotation{}
	}
	invalid := res.InvalidWords()
	if invalid == nil {
		invalid = []string{}
	}
	return ResultResponse{
		WordCount:    res.WordCount,
		Annotations:  annotations,
		InvalidWords: invalid,
		HTML:         render.HTML(res),
	}
}

// Validate handles POST /api/validate.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	level := req.Level
	if level == "" {
		level = h.defaultLevel
	}
	if level == "" {
		writeError(w, r, h.log, domain.NewValidationError("level", "required"))
		return
	}

	vocab, err := h.vocab.Vocabulary(r.Context(), level)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := validator.Validate(r.Context(), req.Text, h.tagger, vocab)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ValidateResponse{Level: level, ResultResponse: newResultResponse(res)})
}
