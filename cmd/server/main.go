/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the back-office server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env + environment)
  2. Configure the global logger
  3. Initialize SQLite store (":memory:" by default)
  4. Seed demo data unless disabled
  5. Start server with graceful shutdown

CONFIGURATION:
  BACKOFFICE_ADDR              Listen address (default :8080)
  BACKOFFICE_DB                SQLite path, ":memory:" for in-memory
  BACKOFFICE_LOG_FILE          Optional log file next to stdout
  BACKOFFICE_LOG_LEVEL         zerolog level (default info)
  BACKOFFICE_SEED              Load demo data on startup (default true)
  BACKOFFICE_SHUTDOWN_TIMEOUT  Drain timeout on SIGTERM

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete
  3. Close database connection
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment loading
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/warp/backoffice/api"
	"github.com/warp/backoffice/config"
	"github.com/warp/backoffice/logger"
	"github.com/warp/backoffice/schedule"
	"github.com/warp/backoffice/store/sqlite"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFilePath)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer store.Close()

	handler := api.NewHandler(store, schedule.SpainValencia{})

	if cfg.SeedDemoData {
		if err := handler.LoadDemoData(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to seed demo data")
		}
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBPath).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
