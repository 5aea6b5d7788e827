// Command wordlist-import grades a frequency-ordered word list CSV (NGSL
// layout: headword, labels) into cumulative CEFR levels. Levels are written
// as vocabulary JSON files and/or stored in PostgreSQL.
//
// Flags:
//
//	--csv            path to the CSV file
//	--out            directory for the level JSON files
//	--db             store levels in the database (uses DATABASE_DSN)
//	--dry-run        parse and grade without writing anything
//	--import-config  path to import YAML config file
//	--delete         comma-separated slugs of stored lists to remove, then exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/vocabcheck/internal/adapter/postgres"
	"github.com/heartmarshall/vocabcheck/internal/adapter/postgres/wordlist"
	"github.com/heartmarshall/vocabcheck/internal/app"
	"github.com/heartmarshall/vocabcheck/internal/app/importer"
	"github.com/heartmarshall/vocabcheck/internal/config"
)

// Compile-time interface assertions.
var (
	_ importer.WordListWriter = (*wordlist.Repo)(nil)
	_ importer.TxRunner       = (*postgres.TxManager)(nil)
)

func main() {
	csvFlag := flag.String("csv", "", "path to the word list CSV")
	outFlag := flag.String("out", "", "directory for level JSON files")
	dbFlag := flag.Bool("db", false, "store levels in the database")
	dryRunFlag := flag.Bool("dry-run", false, "parse without writing")
	configFlag := flag.String("import-config", "", "path to import YAML config file")
	deleteFlag := flag.String("delete", "", "comma-separated slugs of stored lists to remove")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	cfg, err := importer.LoadConfig(*configFlag)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *csvFlag != "" {
		cfg.CSVPath = *csvFlag
	}
	if *outFlag != "" {
		cfg.OutDir = *outFlag
	}
	if *dbFlag {
		cfg.StoreDB = true
	}
	if *dryRunFlag {
		cfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var (
		repo importer.WordListWriter
		txm  importer.TxRunner
	)
	slugs := splitSlugs(*deleteFlag)
	if len(slugs) > 0 {
		cfg.StoreDB = true
		cfg.DryRun = false
	}

	if cfg.StoreDB && !cfg.DryRun {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		repo = wordlist.New(pool)
		txm = postgres.NewTxManager(pool)
	}

	im := importer.New(logger, repo, txm, *cfg)

	if len(slugs) > 0 {
		if err := im.Remove(ctx, slugs); err != nil {
			logger.Error("remove failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("removed %d word lists\n", len(slugs))
		return
	}

	summary, err := im.Run(ctx)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, l := range summary.Levels {
		fmt.Printf("%-4s %-12s %6d words\n", l.Band, l.Slug, l.Words)
	}
	if cfg.OutDir != "" {
		fmt.Printf("VOCAB_LEVELS=%q\n", summary.LevelsEnv())
	}
}

func splitSlugs(s string) []string {
	var slugs []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			slugs = append(slugs, part)
		}
	}
	return slugs
}
