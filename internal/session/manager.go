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
)

// ErrTooManySessions is returned by Create when the session limit is reached.
var ErrTooManySessions = errors.New("too many sessions")

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	Debounce        time.Duration
	IdleTTL         time.Duration
	MaxSessions     int
	CleanupInterval time.Duration
	DefaultLevel    string
}

// Manager owns all live sessions and expires idle ones in the background.
// Call Stop on shutdown.
type Manager struct {
	source vocabularySource
	tagger domain.Tagger
	cfg    ManagerConfig
	log    *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a Manager and starts its cleanup goroutine.
func NewManager(source vocabularySource, tagger domain.Tagger, cfg ManagerConfig, logger *slog.Logger) *Manager {
	m := &Manager{
		source:   source,
		tagger:   tagger,
		cfg:      cfg,
		log:      logger.With("service", "session_manager"),
		sessions: make(map[uuid.UUID]*Session),
		stop:     make(chan struct{}),
	}
	if cfg.IdleTTL > 0 && cfg.CleanupInterval > 0 {
		go m.cleanup(cfg.CleanupInterval)
	}
	return m
}

// Create starts a session on level, or on the default level when level is
// empty. The vocabulary loads in the background.
func (m *Manager) Create(ctx context.Context, level string) (*Session, error) {
	if level == "" {
		level = m.cfg.DefaultLevel
	}
	if level != "" {
		if _, err := m.source.Level(level); err != nil {
			return nil, err
		}
	}

	s := New(m.source, m.tagger, m.cfg.Debounce, m.log)

	m.mu.Lock()
	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		m.mu.Unlock()
		return nil, fmt.Errorf("create session: %w", ErrTooManySessions)
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()

	if level != "" {
		if err := s.SelectLevel(ctx, level); err != nil {
			m.Delete(s.ID)
			return nil, err
		}
	}

	m.log.InfoContext(ctx, "session created", slog.String("session_id", s.ID.String()), slog.String("level", level))
	return s, nil
}

// Get returns a live session and marks it active.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	s.Touch()
	return s, nil
}

// Delete closes and forgets a session.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	s.Close()
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stop terminates the cleanup goroutine and closes every session.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (m *Manager) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			if n := m.expire(now); n > 0 {
				m.log.Info("idle sessions expired", slog.Int("count", n))
			}
		}
	}
}

// expire closes sessions idle for longer than the TTL as of now.
func (m *Manager) expire(now time.Time) int {
	var expired []*Session

	m.mu.Lock()
	for id, s := range m.sessions {
		if now.Sub(s.IdleSince()) > m.cfg.IdleTTL {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}
