package config

import (
	"time"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Session    SessionConfig    `yaml:"session"`
	Tagger     TaggerConfig     `yaml:"tagger"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. The database is
// optional: without a DSN, "db:" vocabulary paths are unavailable.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.DSN != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// VocabularyConfig holds the level list and loading settings.
type VocabularyConfig struct {
	DataDir      string        `yaml:"data_dir"      env:"VOCAB_DATA_DIR"      env-default:"./data/levels"`
	LevelsRaw    string        `yaml:"levels"        env:"VOCAB_LEVELS"        env-default:"Elementary=elementary.json,Intermediate=intermediate.json,Advanced=advanced.json"`
	DefaultLevel string        `yaml:"default_level" env:"VOCAB_DEFAULT_LEVEL" env-default:"Elementary"`
	LoadTimeout  time.Duration `yaml:"load_timeout"  env:"VOCAB_LOAD_TIMEOUT"  env-default:"15s"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"  env:"VOCAB_HTTP_TIMEOUT"  env-default:"10s"`
	IncludeDB    bool          `yaml:"include_db"    env:"VOCAB_INCLUDE_DB"    env-default:"true"`

	// Levels is parsed from LevelsRaw during validation.
	Levels []domain.Level `yaml:"-" env:"-"`
}

// SessionConfig holds editing session settings.
type SessionConfig struct {
	Debounce        time.Duration `yaml:"debounce"         env:"SESSION_DEBOUNCE"         env-default:"300ms"`
	IdleTTL         time.Duration `yaml:"idle_ttl"         env:"SESSION_IDLE_TTL"         env-default:"30m"`
	MaxSessions     int           `yaml:"max_sessions"     env:"SESSION_MAX"              env-default:"1000"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"SESSION_CLEANUP_INTERVAL" env-default:"1m"`
}

// Tagger modes.
const (
	TaggerBuiltin = "builtin"
	TaggerRemote  = "remote"
)

// TaggerConfig selects the part-of-speech tagger.
type TaggerConfig struct {
	Mode    string        `yaml:"mode"    env:"TAGGER_MODE"    env-default:"builtin"`
	URL     string        `yaml:"url"     env:"TAGGER_URL"`
	Timeout time.Duration `yaml:"timeout" env:"TAGGER_TIMEOUT" env-default:"5s"`
}

// RateLimitConfig holds per-IP request limits for the validation endpoints.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}
