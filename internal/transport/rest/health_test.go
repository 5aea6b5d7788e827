package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

type dbPingerMock struct {
	err error
}

func (m *dbPingerMock) Ping(_ context.Context) error {
	return m.err
}

type vocabProviderMock struct {
	err error
}

func (m *vocabProviderMock) Vocabulary(_ context.Context, _ string) (domain.Vocabulary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.Vocabulary{"go": {"verb"}}, nil
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{err: errors.New("down")}, &vocabProviderMock{}, "Elementary", "test-version")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		db         dbPinger
		vocabErr   error
		wantStatus int
	}{
		{name: "all up", db: &dbPingerMock{}, wantStatus: http.StatusOK},
		{name: "no database configured", db: nil, wantStatus: http.StatusOK},
		{name: "database down", db: &dbPingerMock{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable},
		{name: "default level unavailable", db: nil, vocabErr: domain.ErrVocabularyLoad, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(tt.db, &vocabProviderMock{err: tt.vocabErr}, "Elementary", "test-version")
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			resp := decodeHealth(t, rec)
			if resp.Components != nil {
				t.Errorf("readiness must not expose components, got %v", resp.Components)
			}
		})
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{}, &vocabProviderMock{}, "Elementary", "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}
	for _, name := range []string{"database", "vocabulary"} {
		comp, ok := resp.Components[name]
		if !ok {
			t.Fatalf("expected %q component in response", name)
		}
		if comp.Status != "ok" {
			t.Errorf("expected %s status 'ok', got %q", name, comp.Status)
		}
		if comp.Latency == "" {
			t.Errorf("expected non-empty latency for %s", name)
		}
	}
}

func TestHealth_VocabularyDown(t *testing.T) {
	t.Parallel()

	loadErr := &domain.VocabularyLoadError{Level: "Elementary", Path: "elementary.json", Err: errors.New("no such file")}
	h := NewHealthHandler(nil, &vocabProviderMock{err: loadErr}, "Elementary", "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	if _, ok := resp.Components["database"]; ok {
		t.Error("database component must be absent when not configured")
	}
	vocab := resp.Components["vocabulary"]
	if vocab.Status != "down" || vocab.Error == "" {
		t.Errorf("expected vocabulary down with error, got %+v", vocab)
	}
}
