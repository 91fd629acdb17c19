package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haleview/clinic-api/internal/config"
	"github.com/haleview/clinic-api/internal/database"
	"github.com/haleview/clinic-api/internal/handler"
	"github.com/haleview/clinic-api/internal/logger"
	"github.com/haleview/clinic-api/internal/middleware"
	"github.com/haleview/clinic-api/internal/repository"
	"github.com/haleview/clinic-api/internal/router"
	"github.com/haleview/clinic-api/internal/server"
	"github.com/haleview/clinic-api/internal/service"

	"github.com/rs/zerolog"
)

// shutdownTimeout bounds how long inflight requests may drain before
// the process exits.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	log := logger.New(cfg, loggerService)

	// The schema travels with the binary; apply pending migrations
	// before the pool opens.
	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewService(repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(handlers, middlewares))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	// Flush buffered telemetry before exit.
	loggerService.Shutdown(5 * time.Second)

	log.Info().Msg("server stopped")
}
