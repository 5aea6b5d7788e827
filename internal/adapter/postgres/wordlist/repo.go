// Package wordlist stores graded word lists in PostgreSQL.
package wordlist

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocabcheck/internal/adapter/postgres"
	"github.com/heartmarshall/vocabcheck/internal/domain"
)

const (
	tableLists   = "word_lists"
	tableEntries = "word_list_entries"

	// insertChunk bounds the number of entries per INSERT statement.
	insertChunk = 500
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides word list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word list repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns all stored word lists ordered by position, then name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.WordList, error) {
	query, args, err := psql.
		Select("slug", "name").
		From(tableLists).
		OrderBy("position", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.WordList{}
	for rows.Next() {
		var wl domain.WordList
		if err := rows.Scan(&wl.Slug, &wl.Name); err != nil {
			return nil, fmt.Errorf("scan word list: %w", err)
		}
		lists = append(lists, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}

	return lists, nil
}

// GetVocabulary returns the entries of the list with the given slug.
// Returns domain.ErrNotFound if no such list exists.
func (r *Repo) GetVocabulary(ctx context.Context, slug string) (domain.Vocabulary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	listID, err := r.listID(ctx, q, slug)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select("lemma", "labels").
		From(tableEntries).
		Where(squirrel.Eq{"list_id": listID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word_list", slug)
	}
	defer rows.Close()

	vocab := domain.Vocabulary{}
	for rows.Next() {
		var (
			lemma  string
			labels []string
		)
		if err := rows.Scan(&lemma, &labels); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		vocab[lemma] = labels
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "word_list", slug)
	}

	return vocab, nil
}

// Replace creates or renames the list with the given slug and replaces all
// of its entries. Callers that need atomicity run it inside
// postgres.TxManager.RunInTx.
func (r *Repo) Replace(ctx context.Context, slug, name string, position int, vocab domain.Vocabulary) error {
	if slug == "" {
		return domain.NewValidationError("slug", "required")
	}
	if name == "" {
		name = slug
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	upsert, args, err := psql.
		Insert(tableLists).
		Columns("slug", "name", "position").
		Values(slug, name, position).
		Suffix("ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, position = EXCLUDED.position RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	var listID uuid.UUID
	if err := q.QueryRow(ctx, upsert, args...).Scan(&listID); err != nil {
		return postgres.MapError(err, "word_list", slug)
	}

	del, args, err := psql.Delete(tableEntries).Where(squirrel.Eq{"list_id": listID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := q.Exec(ctx, del, args...); err != nil {
		return postgres.MapError(err, "word_list", slug)
	}

	lemmas := make([]string, 0, len(vocab))
	for lemma := range vocab {
		lemmas = append(lemmas, lemma)
	}
	slices.Sort(lemmas)

	for chunk := range slices.Chunk(lemmas, insertChunk) {
		ins := psql.Insert(tableEntries).Columns("list_id", "lemma", "labels")
		for _, lemma := range chunk {
			labels := vocab[lemma]
			if labels == nil {
				labels = []string{}
			}
			ins = ins.Values(listID, lemma, labels)
		}

		query, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "word_list", slug)
		}
	}

	return nil
}

// Delete removes a list and its entries.
// Returns domain.ErrNotFound if no such list exists.
func (r *Repo) Delete(ctx context.Context, slug string) error {
	query, args, err := psql.Delete(tableLists).Where(squirrel.Eq{"slug": slug}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word_list", slug)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_list %s: %w", slug, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) listID(ctx context.Context, q postgres.Querier, slug string) (uuid.UUID, error) {
	query, args, err := psql.
		Select("id").
		From(tableLists).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build lookup: %w", err)
	}

	var id uuid.UUID
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "word_list", slug)
	}
	return id, nil
}
