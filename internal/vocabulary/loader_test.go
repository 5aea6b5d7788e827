package vocabulary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

func TestLoader_Success(t *testing.T) {
	t.Parallel()

	l := NewLoader(fetcherFunc(func(_ context.Context, path string) (domain.Vocabulary, error) {
		assert.Equal(t, "a1.json", path)
		return domain.Vocabulary{"go": {"verb", "unknown-label"}}, nil
	}), newTestLogger())

	v, err := l.Load(context.Background(), domain.Level{Name: "A1", Path: "a1.json"})
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
}

func TestLoader_WrapsFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	l := NewLoader(fetcherFunc(func(context.Context, string) (domain.Vocabulary, error) {
		return nil, cause
	}), newTestLogger())

	_, err := l.Load(context.Background(), domain.Level{Name: "A1", Path: "https://example.com/a1.json"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVocabularyLoad)
	assert.ErrorIs(t, err, cause)

	var loadErr *domain.VocabularyLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "A1", loadErr.Level)
	assert.Equal(t, "https://example.com/a1.json", loadErr.Path)
}

func TestCountUnknownLabels(t *testing.T) {
	t.Parallel()

	v := domain.Vocabulary{
		"go":   {"verb", "bogus"},
		"home": {"noun", "adverb"},
		"x":    {"also-bogus"},
	}
	assert.Equal(t, 2, countUnknownLabels(v))
}
