package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueSlug returns a word list slug that does not collide with other tests.
func UniqueSlug(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedWordList inserts a word list with the given entries and returns its id.
func SeedWordList(t *testing.T, pool *pgxpool.Pool, slug string, entries map[string][]string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO word_lists (slug, name) VALUES ($1, $1) RETURNING id`, slug,
	).Scan(&id)
	if err != nil {
		t.Fatalf("SeedWordList: insert list: %v", err)
	}

	for lemma, labels := range entries {
		_, err := pool.Exec(ctx,
			`INSERT INTO word_list_entries (list_id, lemma, labels) VALUES ($1, $2, $3)`,
			id, lemma, labels,
		)
		if err != nil {
			t.Fatalf("SeedWordList: insert %q: %v", lemma, err)
		}
	}

	return id
}
