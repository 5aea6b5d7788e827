// Package importer turns a frequency-ordered word list CSV into graded,
// cumulative vocabulary levels written as JSON files and/or stored in
// PostgreSQL.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/vocabcheck/internal/app/importer/ngsl"
	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/vocabulary"
)

// WordListWriter persists and removes graded levels.
type WordListWriter interface {
	Replace(ctx context.Context, slug, name string, position int, vocab domain.Vocabulary) error
	Delete(ctx context.Context, slug string) error
}

// TxRunner runs fn in a single transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LevelSummary describes one produced level.
type LevelSummary struct {
	Band  string
	Slug  string
	Name  string
	File  string
	Words int
}

// Summary is the outcome of Run.
type Summary struct {
	Entries    int
	Skipped    int
	Unlabelled int
	Levels     []LevelSummary
	Duration   time.Duration
}

// LevelsEnv formats the produced files as a VOCAB_LEVELS value.
func (s Summary) LevelsEnv() string {
	parts := make([]string, 0, len(s.Levels))
	for _, l := range s.Levels {
		parts = append(parts, l.Name+"="+l.File)
	}
	return strings.Join(parts, ",")
}

// Importer grades a word list and writes the levels.
type Importer struct {
	log  *slog.Logger
	repo WordListWriter
	txm  TxRunner
	cfg  Config
}

// New creates an Importer. repo and txm may be nil when cfg.StoreDB is false.
func New(log *slog.Logger, repo WordListWriter, txm TxRunner, cfg Config) *Importer {
	return &Importer{
		log:  log.With("service", "wordlist_import"),
		repo: repo,
		txm:  txm,
		cfg:  cfg,
	}
}

// Run parses the configured CSV and writes every level.
func (im *Importer) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	if err := im.cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if im.cfg.StoreDB && !im.cfg.DryRun && (im.repo == nil || im.txm == nil) {
		return Summary{}, errors.New("import: store_db requires a database")
	}

	f, err := os.Open(im.cfg.CSVPath)
	if err != nil {
		return Summary{}, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	parsed, err := ngsl.Parse(f)
	if err != nil {
		return Summary{}, fmt.Errorf("parse %s: %w", im.cfg.CSVPath, err)
	}

	im.log.InfoContext(ctx, "word list parsed",
		slog.Int("entries", len(parsed.Entries)),
		slog.Int("skipped", parsed.Skipped),
		slog.Int("unlabelled", parsed.Unlabelled),
	)

	graded := ngsl.Cumulative(parsed.Entries)
	summary := Summary{
		Entries:    len(parsed.Entries),
		Skipped:    parsed.Skipped,
		Unlabelled: parsed.Unlabelled,
	}
	for _, band := range ngsl.Bands {
		slug := im.cfg.SlugPrefix + "-" + strings.ToLower(band)
		summary.Levels = append(summary.Levels, LevelSummary{
			Band:  band,
			Slug:  slug,
			Name:  strings.TrimSpace(im.cfg.NamePrefix + " " + band),
			File:  slug + ".json",
			Words: graded[band].Len(),
		})
	}

	if im.cfg.DryRun {
		summary.Duration = time.Since(start)
		im.log.InfoContext(ctx, "dry run, nothing written", slog.Int("levels", len(summary.Levels)))
		return summary, nil
	}

	if im.cfg.OutDir != "" {
		if err := im.writeFiles(summary.Levels, graded); err != nil {
			return Summary{}, err
		}
	}

	if im.cfg.StoreDB {
		if err := im.store(ctx, summary.Levels, graded); err != nil {
			return Summary{}, err
		}
	}

	summary.Duration = time.Since(start)
	im.log.InfoContext(ctx, "import completed",
		slog.Int("levels", len(summary.Levels)),
		slog.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (im *Importer) writeFiles(levels []LevelSummary, graded map[string]domain.Vocabulary) error {
	if err := os.MkdirAll(im.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", im.cfg.OutDir, err)
	}

	for _, l := range levels {
		path := filepath.Join(im.cfg.OutDir, l.File)
		if err := writeVocabulary(path, graded[l.Band]); err != nil {
			return err
		}
		im.log.Info("level written", slog.String("file", path), slog.Int("words", l.Words))
	}
	return nil
}

// writeVocabulary writes to a temporary file first so a failed import never
// leaves a truncated level behind.
func writeVocabulary(path string, vocab domain.Vocabulary) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".vocab-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := vocabulary.Encode(tmp, vocab); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (im *Importer) store(ctx context.Context, levels []LevelSummary, graded map[string]domain.Vocabulary) error {
	err := im.txm.RunInTx(ctx, func(ctx context.Context) error {
		for i, l := range levels {
			if err := im.repo.Replace(ctx, l.Slug, l.Name, i, graded[l.Band]); err != nil {
				return fmt.Errorf("store level %s: %w", l.Slug, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	im.log.InfoContext(ctx, "levels stored", slog.Int("levels", len(levels)))
	return nil
}

// Remove deletes the stored lists named by slugs in one transaction. Any
// missing slug aborts the whole removal with domain.ErrNotFound.
func (im *Importer) Remove(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return domain.NewValidationError("slugs", "at least one slug is required")
	}
	if im.repo == nil || im.txm == nil {
		return errors.New("import: removing lists requires a database")
	}

	err := im.txm.RunInTx(ctx, func(ctx context.Context) error {
		for _, slug := range slugs {
			if err := im.repo.Delete(ctx, slug); err != nil {
				return fmt.Errorf("remove level %s: %w", slug, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	im.log.InfoContext(ctx, "levels removed", slog.Any("slugs", slugs))
	return nil
}
