// Package commands implements the vocabcheck CLI.
package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabcheck/internal/adapter/provider/tagservice"
	"github.com/heartmarshall/vocabcheck/internal/app"
	"github.com/heartmarshall/vocabcheck/internal/config"
	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/tagger"
	"github.com/heartmarshall/vocabcheck/internal/vocabulary"
)

// cli holds the state shared by all subcommands.
type cli struct {
	config    string
	dataDir   string
	levels    string
	taggerURL string
	timeout   time.Duration
	verbose   bool

	defaultLevel string
	catalog      *vocabulary.Catalog
	tagger       domain.Tagger
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Defaults come from the service
// configuration (config.yaml / environment); flags override them.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "vocabcheck",
		Short:        "Check a text against a graded vocabulary",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.config, "config", "", "YAML config file (default from CONFIG_PATH, then ./config.yaml)")
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "directory with vocabulary files (default from VOCAB_DATA_DIR)")
	root.PersistentFlags().StringVar(&c.levels, "levels", "", `levels as "Name=path,Name=path" (default from VOCAB_LEVELS)`)
	root.PersistentFlags().StringVar(&c.taggerURL, "tagger-url", "", "remote tagger endpoint (default: built-in tagger)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 15*time.Second, "vocabulary load timeout")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log vocabulary loading")

	root.AddCommand(levelsCmd(c), checkCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	path := c.config
	if path == "" {
		path = os.Getenv(config.ConfigPathEnv)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	logCfg := config.LogConfig{Level: "warn", Format: "text"}
	if c.verbose {
		logCfg.Level = "debug"
	}
	logger := app.NewLoggerTo(cmd.ErrOrStderr(), logCfg)

	dataDir := cfg.Vocabulary.DataDir
	if c.dataDir != "" {
		dataDir = c.dataDir
	}

	levels := cfg.Vocabulary.Levels
	c.defaultLevel = cfg.Vocabulary.DefaultLevel
	if c.levels != "" {
		levels, err = config.ParseLevels(c.levels)
		if err != nil {
			return err
		}
		c.defaultLevel = ""
		if len(levels) > 0 {
			c.defaultLevel = levels[0].Name
		}
	}

	fetchers := vocabulary.Router{
		Files: vocabulary.NewFileFetcher(os.DirFS(dataDir)),
		HTTP:  vocabulary.NewHTTPFetcher(cfg.Vocabulary.HTTPTimeout, logger),
	}
	c.catalog = vocabulary.NewCatalog(vocabulary.NewLoader(fetchers, logger), levels, c.timeout)

	c.tagger = tagger.New()
	if c.taggerURL != "" {
		c.tagger = tagservice.NewProvider(c.taggerURL, cfg.Tagger.Timeout, logger)
	}
	return nil
}
