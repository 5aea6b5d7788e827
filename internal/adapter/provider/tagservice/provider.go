package tagservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// ErrMismatchedTokens is returned when the service's tokens do not
// concatenate back to the submitted text.
var ErrMismatchedTokens = errors.New("tokens do not reproduce input")

// Provider tags text with a remote tagging service. The service accepts
// POST {"text": "..."} and answers {"tokens": [{"text", "tags", "lemma"}]}.
type Provider struct {
	url        string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider that posts to url.
func NewProvider(url string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "tagservice"),
	}
}

var _ domain.Tagger = (*Provider)(nil)

// Tag sends text to the service and converts the response.
func (p *Provider) Tag(ctx context.Context, text string) ([]domain.TaggedToken, error) {
	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("tagservice: encode request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, body)
	if err != nil {
		p.log.ErrorContext(ctx, "tagservice request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("tagservice: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tagservice: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tagservice: read body: %w", err)
	}

	var decoded tagResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("tagservice: decode json: %w", err)
	}

	tokens := mapTokens(decoded.Tokens)
	if joined := joinText(tokens); joined != text {
		return nil, fmt.Errorf("tagservice: %w", ErrMismatchedTokens)
	}

	p.log.DebugContext(ctx, "tagservice response",
		slog.Int("status", resp.StatusCode),
		slog.Int("tokens", len(tokens)),
	)

	return tokens, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	do := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		return p.httpClient.Do(req)
	}

	resp, err := do()
	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	p.log.WarnContext(ctx, "tagservice retry", slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return do()
}

func mapTokens(in []apiToken) []domain.TaggedToken {
	out := make([]domain.TaggedToken, len(in))
	for i, t := range in {
		out[i] = domain.TaggedToken{
			Text:  t.Text,
			Tags:  domain.NewTagSet(t.Tags...),
			Lemma: domain.NormalizeText(t.Lemma),
		}
	}
	return out
}

func joinText(tokens []domain.TaggedToken) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
