package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// DBPrefix marks a level path that names a word list stored in the database.
const DBPrefix = "db:"

// Fetcher retrieves and parses the vocabulary stored at path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (domain.Vocabulary, error)
}

// ---------------------------------------------------------------------------
// File system
// ---------------------------------------------------------------------------

// FileFetcher reads vocabulary files from a directory tree.
type FileFetcher struct {
	fsys fs.FS
}

// NewFileFetcher creates a FileFetcher rooted at fsys (typically os.DirFS).
func NewFileFetcher(fsys fs.FS) *FileFetcher {
	return &FileFetcher{fsys: fsys}
}

// Fetch opens path relative to the root and parses it.
func (f *FileFetcher) Fetch(_ context.Context, p string) (domain.Vocabulary, error) {
	name := path.Clean(strings.TrimPrefix(p, "/"))
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	return Parse(file)
}

// ---------------------------------------------------------------------------
// HTTP
// ---------------------------------------------------------------------------

// HTTPFetcher downloads vocabulary files over HTTP(S).
type HTTPFetcher struct {
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewHTTPFetcher creates an HTTPFetcher with the given request timeout.
func NewHTTPFetcher(timeout time.Duration, logger *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "vocabulary_http"),
	}
}

// ErrUnexpectedStatus is returned when the server answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Fetch GETs url and parses the body.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (domain.Vocabulary, error) {
	f.log.DebugContext(ctx, "vocabulary request", slog.String("url", url))

	resp, err := f.doWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	return Parse(resp.Body)
}

// doWithRetry executes the GET with a single retry on 5xx or network errors.
func (f *HTTPFetcher) doWithRetry(ctx context.Context, url string) (*http.Response, error) {
	do := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return f.httpClient.Do(req)
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
	f.log.WarnContext(ctx, "vocabulary retry", slog.String("url", url), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(f.retryDelay):
	}

	return do()
}

// ---------------------------------------------------------------------------
// Database
// ---------------------------------------------------------------------------

type wordListRepo interface {
	GetVocabulary(ctx context.Context, slug string) (domain.Vocabulary, error)
}

// DBFetcher loads word lists stored in the database; path is "db:<slug>".
type DBFetcher struct {
	repo wordListRepo
}

// NewDBFetcher creates a DBFetcher.
func NewDBFetcher(repo wordListRepo) *DBFetcher {
	return &DBFetcher{repo: repo}
}

// Fetch loads the word list named by path.
func (f *DBFetcher) Fetch(ctx context.Context, p string) (domain.Vocabulary, error) {
	slug := strings.TrimPrefix(p, DBPrefix)
	if slug == "" {
		return nil, domain.NewValidationError("path", "missing word list slug")
	}
	return f.repo.GetVocabulary(ctx, slug)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

// Router picks a Fetcher by the shape of the path: http(s) URLs, "db:" slugs,
// and everything else as a file under the data directory. Nil fetchers make
// the corresponding kind of path fail.
type Router struct {
	Files Fetcher
	HTTP  Fetcher
	DB    Fetcher
}

// ErrUnsupportedPath is returned when no fetcher is configured for a path.
var ErrUnsupportedPath = errors.New("unsupported vocabulary path")

// Fetch dispatches to the matching fetcher.
func (r Router) Fetch(ctx context.Context, p string) (domain.Vocabulary, error) {
	var f Fetcher
	switch {
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "https://"):
		f = r.HTTP
	case strings.HasPrefix(p, DBPrefix):
		f = r.DB
	default:
		f = r.Files
	}
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPath, p)
	}
	return f.Fetch(ctx, p)
}
