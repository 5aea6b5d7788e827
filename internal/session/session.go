// Package session holds the per-client editing state: the selected level, its
// vocabulary, the current text and the latest validation result.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/scheduler"
	"github.com/heartmarshall/vocabcheck/internal/validator"
	"github.com/heartmarshall/vocabcheck/internal/vocabulary"
)

type vocabularySource interface {
	Level(name string) (domain.Level, error)
	Vocabulary(ctx context.Context, name string) (domain.Vocabulary, error)
}

// State is a point-in-time copy of a session.
type State struct {
	ID         uuid.UUID               `json:"id"`
	Level      string                  `json:"level"`
	Loading    bool                    `json:"loading"`
	Pending    bool                    `json:"pending"`
	Alert      string                  `json:"alert,omitempty"`
	TaggerErr  string                  `json:"taggerError,omitempty"`
	Text       string                  `json:"text"`
	Result     domain.ValidationResult `json:"result"`
	LastActive time.Time               `json:"lastActive"`
}

// Session is safe for concurrent use. Vocabulary loads run in the
// background; only the completion of the most recent SelectLevel may change
// the session.
type Session struct {
	ID uuid.UUID

	source    vocabularySource
	tagger    domain.Tagger
	store     *vocabulary.Store
	debouncer *scheduler.Debouncer
	log       *slog.Logger

	mu         sync.Mutex
	level      string
	text       string
	loading    bool
	loadToken  uint64
	runSeq     uint64
	appliedSeq uint64
	running    int
	result     domain.ValidationResult
	alert      string
	taggerErr  string
	lastActive time.Time
	changed    chan struct{}
}

// New creates a session with an empty vocabulary and no level selected.
func New(source vocabularySource, tagger domain.Tagger, debounce time.Duration, logger *slog.Logger) *Session {
	id := uuid.New()
	s := &Session{
		ID:         id,
		source:     source,
		tagger:     tagger,
		store:      vocabulary.NewStore(),
		log:        logger.With("service", "session", slog.String("session_id", id.String())),
		result:     domain.ValidationResult{Annotations: []domain.Annotation{}},
		lastActive: time.Now(),
		changed:    make(chan struct{}),
	}
	s.debouncer = scheduler.NewDebouncer(debounce, s.validate)
	return s
}

// SelectLevel starts loading the vocabulary of the named level and returns
// without waiting for it. A selection made while another load is in flight
// supersedes it.
func (s *Session) SelectLevel(ctx context.Context, name string) error {
	if _, err := s.source.Level(name); err != nil {
		return err
	}

	s.mu.Lock()
	s.loadToken++
	token := s.loadToken
	s.level = name
	s.loading = true
	s.alert = ""
	s.lastActive = time.Now()
	s.notifyLocked()
	s.mu.Unlock()

	s.log.DebugContext(ctx, "level selected", slog.String("level", name), slog.Uint64("token", token))

	go s.load(context.WithoutCancel(ctx), token, name)
	return nil
}

func (s *Session) load(ctx context.Context, token uint64, name string) {
	vocab, err := s.source.Vocabulary(ctx, name)

	s.mu.Lock()
	if token != s.loadToken {
		s.mu.Unlock()
		s.log.DebugContext(ctx, "stale vocabulary load dropped",
			slog.String("level", name),
			slog.Uint64("token", token),
		)
		return
	}

	if err != nil {
		s.store.Reset()
		s.alert = alertMessage(name, err)
		s.log.WarnContext(ctx, "vocabulary unavailable", slog.String("level", name), slog.String("error", err.Error()))
	} else {
		s.store.Replace(vocab)
		s.alert = ""
	}
	s.loading = false
	s.notifyLocked()
	s.mu.Unlock()

	s.Revalidate()
}

func alertMessage(level string, err error) string {
	var loadErr *domain.VocabularyLoadError
	if errors.As(err, &loadErr) {
		return fmt.Sprintf("Could not load the %s vocabulary (%s). Every word is marked until a level loads.", level, loadErr.Path)
	}
	return fmt.Sprintf("Could not load the %s vocabulary. Every word is marked until a level loads.", level)
}

// SetText records new text and schedules validation after the quiet period.
// Text cannot change while a vocabulary is loading.
func (s *Session) SetText(text string) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return domain.ErrLoadInProgress
	}
	s.text = text
	s.lastActive = time.Now()
	s.notifyLocked()
	s.mu.Unlock()

	s.debouncer.Trigger()
	return nil
}

// Revalidate drops any pending debounced run and validates immediately.
func (s *Session) Revalidate() {
	s.debouncer.Cancel()
	s.validate()
}

// validate checks the current text against the current vocabulary. Runs
// started later win over runs started earlier.
func (s *Session) validate() {
	s.mu.Lock()
	s.runSeq++
	seq := s.runSeq
	text := s.text
	vocab := s.store.Snapshot()
	s.running++
	s.mu.Unlock()

	res, err := validator.Validate(context.Background(), text, s.tagger, vocab)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running--
	defer s.notifyLocked()

	if seq < s.appliedSeq {
		return
	}
	s.appliedSeq = seq
	if err != nil {
		s.taggerErr = err.Error()
		s.log.Error("validation failed", slog.String("error", err.Error()))
		return
	}
	s.taggerErr = ""
	s.result = res
}

// State returns a copy of the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:         s.ID,
		Level:      s.level,
		Loading:    s.loading,
		Pending:    s.debouncer.Pending() || s.running > 0,
		Alert:      s.alert,
		TaggerErr:  s.taggerErr,
		Text:       s.text,
		Result:     s.result,
		LastActive: s.lastActive,
	}
}

// Touch marks the session as active.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// IdleSince reports when the session was last used.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Wait blocks until no load or validation is outstanding.
func (s *Session) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		idle := !s.loading && s.running == 0 && !s.debouncer.Pending()
		ch := s.changed
		s.mu.Unlock()
		if idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// Close stops pending validation. Loads still in flight finish and are
// discarded.
func (s *Session) Close() {
	s.debouncer.Stop()
	s.mu.Lock()
	s.loadToken++
	s.loading = false
	s.notifyLocked()
	s.mu.Unlock()
}

func (s *Session) notifyLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}
