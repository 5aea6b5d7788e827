package postgres

import (
	"testing"
	"time"

	"github.com/heartmarshall/vocabcheck/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          config.DatabaseConfig
		wantMax      int32
		wantMin      int32
		wantAppName  string
		wantParseErr bool
	}{
		{
			name: "settings applied",
			cfg: config.DatabaseConfig{
				DSN:             "postgres://u:p@localhost:5432/vocab",
				MaxConns:        8,
				MinConns:        2,
				MaxConnLifetime: time.Hour,
				MaxConnIdleTime: time.Minute,
			},
			wantMax:     8,
			wantMin:     2,
			wantAppName: ApplicationName,
		},
		{
			name:        "dsn application name kept",
			cfg:         config.DatabaseConfig{DSN: "postgres://u:p@localhost:5432/vocab?application_name=importer", MaxConns: 4},
			wantMax:     4,
			wantAppName: "importer",
		},
		{
			name:        "min above max ignored",
			cfg:         config.DatabaseConfig{DSN: "postgres://u:p@localhost:5432/vocab", MaxConns: 2, MinConns: 5},
			wantMax:     2,
			wantAppName: ApplicationName,
		},
		{
			name:         "bad dsn",
			cfg:          config.DatabaseConfig{DSN: "postgres://u:p@localhost:notaport/vocab"},
			wantParseErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := poolConfig(tt.cfg)
			if tt.wantParseErr {
				if err == nil {
					t.Fatal("expected error for malformed DSN")
				}
				return
			}
			if err != nil {
				t.Fatalf("poolConfig: unexpected error: %v", err)
			}
			if got.MaxConns != tt.wantMax {
				t.Errorf("MaxConns = %d, want %d", got.MaxConns, tt.wantMax)
			}
			if got.MinConns != tt.wantMin {
				t.Errorf("MinConns = %d, want %d", got.MinConns, tt.wantMin)
			}
			if app := got.ConnConfig.RuntimeParams["application_name"]; app != tt.wantAppName {
				t.Errorf("application_name = %q, want %q", app, tt.wantAppName)
			}
		})
	}
}
