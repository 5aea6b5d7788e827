package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabcheck/internal/adapter/postgres"
	"github.com/heartmarshall/vocabcheck/internal/adapter/postgres/wordlist"
	"github.com/heartmarshall/vocabcheck/internal/adapter/provider/tagservice"
	"github.com/heartmarshall/vocabcheck/internal/config"
	"github.com/heartmarshall/vocabcheck/internal/domain"
	"github.com/heartmarshall/vocabcheck/internal/session"
	"github.com/heartmarshall/vocabcheck/internal/tagger"
	"github.com/heartmarshall/vocabcheck/internal/transport/middleware"
	"github.com/heartmarshall/vocabcheck/internal/transport/rest"
	"github.com/heartmarshall/vocabcheck/internal/vocabulary"
)

// Run is the application entry point. It loads configuration, wires the
// vocabulary catalog, tagger and session manager, and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("tagger", cfg.Tagger.Mode),
		slog.Bool("database", cfg.Database.Enabled()),
	)

	fetchers := vocabulary.Router{
		Files: vocabulary.NewFileFetcher(os.DirFS(cfg.Vocabulary.DataDir)),
		HTTP:  vocabulary.NewHTTPFetcher(cfg.Vocabulary.HTTPTimeout, logger),
	}

	// The health handler must see an untyped nil when there is no database.
	var db interface{ Ping(context.Context) error }
	var dbLevels []domain.Level

	if cfg.Database.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()
		db = pool

		repo := wordlist.New(pool)
		fetchers.DB = vocabulary.NewDBFetcher(repo)

		if cfg.Vocabulary.IncludeDB {
			dbLevels, err = storedLevels(ctx, repo)
			if err != nil {
				return err
			}
			logger.Info("stored word lists found", slog.Int("count", len(dbLevels)))
		}
	}

	catalog := vocabulary.NewCatalog(
		vocabulary.NewLoader(fetchers, logger),
		cfg.Vocabulary.Levels,
		cfg.Vocabulary.LoadTimeout,
	)
	catalog.AddLevels(dbLevels...)

	if cfg.Vocabulary.DefaultLevel != "" {
		if _, err := catalog.Level(cfg.Vocabulary.DefaultLevel); err != nil {
			return fmt.Errorf("default level: %w", err)
		}
	}

	tg := newTagger(cfg.Tagger, logger)

	sessions := session.NewManager(catalog, tg, session.ManagerConfig{
		Debounce:        cfg.Session.Debounce,
		IdleTTL:         cfg.Session.IdleTTL,
		MaxSessions:     cfg.Session.MaxSessions,
		CleanupInterval: cfg.Session.CleanupInterval,
		DefaultLevel:    cfg.Vocabulary.DefaultLevel,
	}, logger)
	defer sessions.Stop()

	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		limit = limiter.Limit(cfg.RateLimit.PerMinute)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(db, catalog, cfg.Vocabulary.DefaultLevel, BuildVersion()),
		Levels:   rest.NewLevelsHandler(catalog, cfg.Vocabulary.DefaultLevel),
		Validate: rest.NewValidateHandler(catalog, tg, cfg.Vocabulary.DefaultLevel, logger),
		Sessions: rest.NewSessionHandler(sessions, logger),
	}, limit)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Warm the default level so the first session does not wait for it.
	g.Go(func() error {
		if cfg.Vocabulary.DefaultLevel == "" {
			return nil
		}
		if _, err := catalog.Vocabulary(gctx, cfg.Vocabulary.DefaultLevel); err != nil {
			logger.Warn("default level not loaded", slog.String("error", err.Error()))
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

type wordListLister interface {
	List(ctx context.Context) ([]domain.WordList, error)
}

// storedLevels turns stored word lists into selector levels with "db:" paths.
func storedLevels(ctx context.Context, repo wordListLister) ([]domain.Level, error) {
	lists, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored word lists: %w", err)
	}

	levels := make([]domain.Level, 0, len(lists))
	for _, wl := range lists {
		levels = append(levels, domain.Level{Name: wl.Name, Path: vocabulary.DBPrefix + wl.Slug})
	}
	return levels, nil
}

func newTagger(cfg config.TaggerConfig, logger *slog.Logger) domain.Tagger {
	if cfg.Mode == config.TaggerRemote {
		return tagservice.NewProvider(cfg.URL, cfg.Timeout, logger)
	}
	return tagger.New()
}
