package wordlist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabcheck/internal/adapter/postgres"
	"github.com/heartmarshall/vocabcheck/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/vocabcheck/internal/adapter/postgres/wordlist"
	"github.com/heartmarshall/vocabcheck/internal/domain"
)

func TestRepo_Integration_ReplaceAndLoad(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := wordlist.New(pool)
	txm := postgres.NewTxManager(pool)
	ctx := context.Background()
	slug := testhelper.UniqueSlug("ngsl-a1")

	first := domain.Vocabulary{"go": {"verb"}, "home": {"noun", "adverb"}, "to": {"infinitive-to"}}
	err := txm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.Replace(ctx, slug, "NGSL A1", 1, first)
	})
	require.NoError(t, err)

	got, err := repo.GetVocabulary(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := domain.Vocabulary{"go": {"verb"}}
	require.NoError(t, repo.Replace(ctx, slug, "NGSL A1 (rev)", 1, second))

	got, err = repo.GetVocabulary(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	lists, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, lists, domain.WordList{Slug: slug, Name: "NGSL A1 (rev)"})

	require.NoError(t, repo.Delete(ctx, slug))
	_, err = repo.GetVocabulary(ctx, slug)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func TestRepo_Integration_RollbackKeepsPreviousEntries(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := wordlist.New(pool)
	txm := postgres.NewTxManager(pool)
	ctx := context.Background()
	slug := testhelper.UniqueSlug("rollback")
	testhelper.SeedWordList(t, pool, slug, map[string][]string{"go": {"verb"}})

	sentinel := errors.New("abort import")
	err := txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.Replace(ctx, slug, slug, 0, domain.Vocabulary{"come": {"verb"}}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := repo.GetVocabulary(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, domain.Vocabulary{"go": {"verb"}}, got)
}
