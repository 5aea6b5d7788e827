package importer

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds word list import settings.
type Config struct {
	CSVPath    string `yaml:"csv_path"    env:"IMPORT_CSV_PATH"`
	OutDir     string `yaml:"out_dir"     env:"IMPORT_OUT_DIR"`
	StoreDB    bool   `yaml:"store_db"    env:"IMPORT_STORE_DB"`
	SlugPrefix string `yaml:"slug_prefix" env:"IMPORT_SLUG_PREFIX" env-default:"ngsl"`
	NamePrefix string `yaml:"name_prefix" env:"IMPORT_NAME_PREFIX" env-default:"NGSL"`
	DryRun     bool   `yaml:"dry_run"     env:"IMPORT_DRY_RUN"`
}

// LoadConfig reads import configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("import config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("import config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration describes a runnable import.
func (c Config) Validate() error {
	if c.CSVPath == "" {
		return fmt.Errorf("import config: csv_path is required")
	}
	if c.OutDir == "" && !c.StoreDB && !c.DryRun {
		return fmt.Errorf("import config: set out_dir or store_db")
	}
	if c.SlugPrefix == "" {
		return fmt.Errorf("import config: slug_prefix is required")
	}
	return nil
}
