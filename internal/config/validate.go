package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Vocabulary.validate(); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	switch c.Tagger.Mode {
	case TaggerBuiltin:
	case TaggerRemote:
		if c.Tagger.URL == "" {
			return fmt.Errorf("tagger.url is required in remote mode")
		}
	default:
		return fmt.Errorf("tagger.mode must be %q or %q (got %q)", TaggerBuiltin, TaggerRemote, c.Tagger.Mode)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (v *VocabularyConfig) validate() error {
	levels, err := ParseLevels(v.LevelsRaw)
	if err != nil {
		return fmt.Errorf("levels: %w", err)
	}
	v.Levels = levels

	if v.DefaultLevel != "" {
		found := false
		for _, l := range levels {
			if l.Name == v.DefaultLevel {
				found = true
				break
			}
		}
		if !found && !v.IncludeDB {
			return fmt.Errorf("default_level %q is not among the configured levels", v.DefaultLevel)
		}
	}

	if v.LoadTimeout <= 0 {
		return fmt.Errorf("load_timeout must be > 0 (got %v)", v.LoadTimeout)
	}

	return nil
}

func (s *SessionConfig) validate() error {
	if s.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0 (got %v)", s.Debounce)
	}
	if s.MaxSessions < 0 {
		return fmt.Errorf("max_sessions must be >= 0 (got %d)", s.MaxSessions)
	}
	if s.IdleTTL > 0 && s.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 when idle_ttl is set")
	}
	return nil
}

// ParseLevels parses a comma-separated list of "Name=path" pairs
// (e.g. "Elementary=elementary.json,NGSL A1=db:ngsl-a1") into levels, in
// order. An empty string returns a nil slice.
func ParseLevels(raw string) ([]domain.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	levels := make([]domain.Level, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		name, path, ok := strings.Cut(p, "=")
		name, path = strings.TrimSpace(name), strings.TrimSpace(path)
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid level %q, want Name=path", p)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate level %q", name)
		}
		seen[name] = true
		levels = append(levels, domain.Level{Name: name, Path: path})
	}

	return levels, nil
}
