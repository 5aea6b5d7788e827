package vocabulary

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileFetcher(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"levels/elementary.json": {Data: []byte(`{"go": ["verb"]}`)},
		"levels/broken.json":     {Data: []byte(`{"go": `)},
	}
	f := NewFileFetcher(fsys)

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		v, err := f.Fetch(context.Background(), "levels/elementary.json")
		require.NoError(t, err)
		assert.Equal(t, domain.Vocabulary{"go": {"verb"}}, v)
	})

	t.Run("leading slash", func(t *testing.T) {
		t.Parallel()
		_, err := f.Fetch(context.Background(), "/levels/elementary.json")
		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := f.Fetch(context.Background(), "levels/none.json")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := f.Fetch(context.Background(), "levels/broken.json")
		require.Error(t, err)
	})
}

func newTestHTTPFetcher() *HTTPFetcher {
	f := NewHTTPFetcher(5*time.Second, newTestLogger())
	f.retryDelay = time.Millisecond
	return f
}

func TestHTTPFetcher_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/levels/a1.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"home": ["noun", "adverb"]}`))
	}))
	defer srv.Close()

	v, err := newTestHTTPFetcher().Fetch(context.Background(), srv.URL+"/levels/a1.json")
	require.NoError(t, err)
	labels, ok := v.Get("home")
	require.True(t, ok)
	assert.Equal(t, []string{"noun", "adverb"}, labels)
}

func TestHTTPFetcher_NotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestHTTPFetcher().Fetch(context.Background(), srv.URL+"/missing.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestHTTPFetcher_RetryOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"go": ["verb"]}`))
	}))
	defer srv.Close()

	v, err := newTestHTTPFetcher().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPFetcher_PersistentFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestHTTPFetcher().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPFetcher_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := newTestHTTPFetcher().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

type fakeWordListRepo struct {
	GetVocabularyFunc func(ctx context.Context, slug string) (domain.Vocabulary, error)
}

func (f *fakeWordListRepo) GetVocabulary(ctx context.Context, slug string) (domain.Vocabulary, error) {
	return f.GetVocabularyFunc(ctx, slug)
}

func TestDBFetcher(t *testing.T) {
	t.Parallel()

	repo := &fakeWordListRepo{
		GetVocabularyFunc: func(_ context.Context, slug string) (domain.Vocabulary, error) {
			if slug != "ngsl-a1" {
				return nil, domain.ErrNotFound
			}
			return domain.Vocabulary{"go": {"verb"}}, nil
		},
	}
	f := NewDBFetcher(repo)

	v, err := f.Fetch(context.Background(), "db:ngsl-a1")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())

	_, err = f.Fetch(context.Background(), "db:other")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.Fetch(context.Background(), "db:")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

type fetcherFunc func(ctx context.Context, path string) (domain.Vocabulary, error)

func (f fetcherFunc) Fetch(ctx context.Context, path string) (domain.Vocabulary, error) {
	return f(ctx, path)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	named := func(name string) Fetcher {
		return fetcherFunc(func(context.Context, string) (domain.Vocabulary, error) {
			return domain.Vocabulary{name: nil}, nil
		})
	}
	r := Router{Files: named("file"), HTTP: named("http"), DB: named("db")}

	tests := []struct {
		path string
		want string
	}{
		{"levels/a1.json", "file"},
		{"https://example.com/a1.json", "http"},
		{"http://example.com/a1.json", "http"},
		{"db:ngsl-a1", "db"},
	}
	for _, tt := range tests {
		v, err := r.Fetch(context.Background(), tt.path)
		require.NoError(t, err, tt.path)
		assert.Contains(t, v, tt.want, tt.path)
	}
}

func TestRouter_Unconfigured(t *testing.T) {
	t.Parallel()

	r := Router{Files: fetcherFunc(func(context.Context, string) (domain.Vocabulary, error) {
		return nil, errors.New("unused")
	})}

	_, err := r.Fetch(context.Background(), "db:ngsl-a1")
	assert.ErrorIs(t, err, ErrUnsupportedPath)
}
