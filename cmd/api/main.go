package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/medialogapp/medialog-server/internal/config"
	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/handler"
	"github.com/medialogapp/medialog-server/internal/logger"
	"github.com/medialogapp/medialog-server/internal/middleware"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/router"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	appLogger, loggerService, err := logger.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger")
	}

	if err := database.Migrate(context.Background(), appLogger, cfg); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv, services.Session)

	e := router.Setup(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(5 * time.Second)
	}
}
