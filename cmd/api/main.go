// Package main is the entry point for the liturgical calendar API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zapponejosh/liturgical-calendar/internal/api"
	"github.com/zapponejosh/liturgical-calendar/internal/calendar"
	"github.com/zapponejosh/liturgical-calendar/internal/config"
	"github.com/zapponejosh/liturgical-calendar/internal/database"
	"github.com/zapponejosh/liturgical-calendar/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	log.Info("starting liturgical calendar API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("timezone", cfg.Timezone),
		slog.Bool("boundary_cache", cfg.BoundaryCache),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return err
	}

	opts := []calendar.Option{calendar.WithLocation(cfg.Location())}
	var cache *calendar.SnapshotCache
	if cfg.BoundaryCache {
		cache = calendar.NewSnapshotCache()
		opts = append(opts, calendar.WithCache(cache))
	}
	provider := calendar.NewProvider(opts...)

	log.Debug("season classifier", slog.Any("rules", calendar.RuleNames()))

	handlers := api.NewHandlers(db, provider, cfg, log)
	srv := api.NewServer(cfg.Port, api.SetupRoutes(handlers, log), log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	today := provider.LiturgicalInfo(time.Now())
	log.Info("liturgical calendar API ready",
		slog.String("addr", srv.Addr()),
		slog.String("season", string(today.Season)),
		slog.String("color", string(today.Color)),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if cache != nil {
		log.Info("boundary cache", slog.Int("years", cache.Len()))
	}
	return srv.Shutdown(context.Background())
}
