package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabcheck/internal/adapter/provider/tagservice"
	"github.com/heartmarshall/vocabcheck/internal/config"
	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/tagger"
)

type listerFunc func(ctx context.Context) ([]domain.WordList, error)

func (f listerFunc) List(ctx context.Context) ([]domain.WordList, error) { return f(ctx) }

func TestStoredLevels(t *testing.T) {
	repo := listerFunc(func(context.Context) ([]domain.WordList, error) {
		return []domain.WordList{{Slug: "ngsl-a1", Name: "NGSL A1"}, {Slug: "ngsl-a2", Name: "NGSL A2"}}, nil
	})

	levels, err := storedLevels(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, []domain.Level{
		{Name: "NGSL A1", Path: "db:ngsl-a1"},
		{Name: "NGSL A2", Path: "db:ngsl-a2"},
	}, levels)
}

func TestStoredLevels_Error(t *testing.T) {
	boom := errors.New("relation does not exist")
	repo := listerFunc(func(context.Context) ([]domain.WordList, error) { return nil, boom })

	_, err := storedLevels(context.Background(), repo)
	assert.ErrorIs(t, err, boom)
}

func TestNewTagger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	builtin := newTagger(config.TaggerConfig{Mode: config.TaggerBuiltin}, logger)
	assert.IsType(t, &tagger.Tagger{}, builtin)

	remote := newTagger(config.TaggerConfig{Mode: config.TaggerRemote, URL: "http://tagger:8090/tag"}, logger)
	assert.IsType(t, &tagservice.Provider{}, remote)
}
