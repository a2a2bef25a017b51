package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/voodo-app/voodo-server/internal/config"
	"github.com/voodo-app/voodo-server/internal/database"
	"github.com/voodo-app/voodo-server/internal/match"
	"github.com/voodo-app/voodo-server/internal/server"
	"github.com/voodo-app/voodo-server/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/server.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting voodo server",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The database is optional; without it the hangouts API is disabled
	// and the matchmaking relay runs on its own.
	var pool *pgxpool.Pool
	if cfg.Database.Postgres.Enabled() {
		logger.Info("connecting to database",
			"host", cfg.Database.Postgres.Host,
			"port", cfg.Database.Postgres.Port,
			"database", cfg.Database.Postgres.Name,
		)
		pool, err = database.Connect(ctx, cfg.Database.Postgres)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("database connected")
	} else {
		logger.Warn("no database configured, hangouts API disabled")
	}

	svc := match.NewService(logger)

	mux := server.NewMux(server.Deps{
		Config:  cfg,
		Service: svc,
		DB:      pool,
		Logger:  logger,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
