package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/validator"
)

// Loader fetches the vocabulary of a level and reports failures as
// *domain.VocabularyLoadError.
type Loader struct {
	fetcher Fetcher
	log     *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(fetcher Fetcher, logger *slog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		log:     logger.With("service", "vocabulary_loader"),
	}
}

// Load fetches and parses the vocabulary for level.
func (l *Loader) Load(ctx context.Context, level domain.Level) (domain.Vocabulary, error) {
	start := time.Now()

	vocab, err := l.fetcher.Fetch(ctx, level.Path)
	if err != nil {
		l.log.WarnContext(ctx, "vocabulary load failed",
			slog.String("level", level.Name),
			slog.String("path", level.Path),
			slog.String("error", err.Error()),
		)
		return nil, &domain.VocabularyLoadError{Level: level.Name, Path: level.Path, Err: err}
	}

	if unknown := countUnknownLabels(vocab); unknown > 0 {
		l.log.DebugContext(ctx, "vocabulary has unknown labels",
			slog.String("level", level.Name),
			slog.Int("count", unknown),
		)
	}

	l.log.InfoContext(ctx, "vocabulary loaded",
		slog.String("level", level.Name),
		slog.Int("lemmas", vocab.Len()),
		slog.Duration("duration", time.Since(start)),
	)
	return vocab, nil
}

func countUnknownLabels(v domain.Vocabulary) int {
	n := 0
	for _, labels := range v {
		for _, label := range labels {
			if _, ok := validator.TagsFor(label); !ok {
				n++
			}
		}
	}
	return n
}
