package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
	_ "modernc.org/sqlite"

	"github.com/helparr/helparr/internal/api"
	"github.com/helparr/helparr/internal/arr"
	"github.com/helparr/helparr/internal/config"
	"github.com/helparr/helparr/internal/history"
	"github.com/helparr/helparr/internal/kodi"
	"github.com/helparr/helparr/internal/playback"
	"github.com/helparr/helparr/internal/reconcile"
	"github.com/helparr/helparr/internal/resolver"
	"github.com/helparr/helparr/internal/session"
	"github.com/helparr/helparr/internal/watcher"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// historyRecorder bridges the reconciler to the history store.
type historyRecorder struct {
	store  *history.Store
	logger *slog.Logger
}

func (h *historyRecorder) ReconciliationDone(t reconcile.Target, matchedLibrary bool) {
	rec := &history.ReconciliationRecord{
		TMDBID:         t.TMDBID,
		MediaType:      string(t.Kind),
		Season:         t.Season,
		Episode:        t.Episode,
		CapturedFile:   t.CapturedFile,
		MatchedLibrary: matchedLibrary,
	}
	if err := h.store.AddReconciliation(rec); err != nil {
		h.logger.Error("recording reconciliation failed", "tmdb_id", t.TMDBID, "error", err)
	}
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	var logOut io.Writer = os.Stdout
	if cfg.Server.LogFile != "" {
		logOut = &lumberjack.Logger{
			Filename:   cfg.Server.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Validate config: warnings are logged, everything else is fatal
	var fatal []string
	for _, msg := range cfg.Validate() {
		if strings.Contains(msg, "warning:") {
			logger.Warn("config", "issue", msg)
			continue
		}
		fatal = append(fatal, msg)
	}
	if len(fatal) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(fatal, "; "))
	}

	// Ensure database directory exists
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := history.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	historyStore := history.NewStore(db)

	// === Clients ===
	kodiClient := kodi.NewClient(cfg.Kodi.URL, cfg.Kodi.Username, cfg.Kodi.Password, kodi.WithLogger(logger))

	var movieSvc resolver.MovieService
	if cfg.Radarr.URL != "" {
		movieSvc = arr.NewRadarr(cfg.Radarr.URL, cfg.Radarr.APIKey, arr.WithLogger(logger))
	}
	var seriesSvc resolver.SeriesService
	if cfg.Sonarr.URL != "" {
		seriesSvc = arr.NewSonarr(cfg.Sonarr.URL, cfg.Sonarr.APIKey, arr.WithLogger(logger))
	}

	// === Core services ===
	state := session.NewState()
	res := resolver.New(movieSvc, seriesSvc, logger)
	recorder := &historyRecorder{store: historyStore, logger: logger.With("component", "history")}
	reconciler := reconcile.New(kodiClient, recorder, cfg.Watcher.SettleDelay, logger)
	watch := watcher.New(state, kodiClient, reconciler, cfg.Watcher.PollInterval, logger)
	picker := playback.NewSelector(cfg.Player.VideoDir)

	// === HTTP Setup ===
	mux := http.NewServeMux()
	apiServer := api.New(res, kodiClient, picker, state, historyStore, version, logger)
	apiServer.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"database", cfg.Database.Path,
		"radarr", movieSvc != nil,
		"sonarr", seriesSvc != nil,
		"kodi", cfg.Kodi.URL,
		"poll_interval", cfg.Watcher.PollInterval,
		"log_level", cfg.Server.LogLevel,
	)

	srv := &http.Server{Addr: addr, Handler: logRequests(mux, logger)}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := watch.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		// Graceful HTTP shutdown with 30s timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
