package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/letuankiet/usersdesk/internal/config"
	"github.com/letuankiet/usersdesk/internal/logger"
	"github.com/letuankiet/usersdesk/internal/repository"
	"github.com/letuankiet/usersdesk/internal/server"
	"github.com/letuankiet/usersdesk/internal/service"
)

// app is what every command needs once configuration is loaded.
type app struct {
	server   *server.Server
	services *service.Services
	logger   *zerolog.Logger
	shutdown func()
}

// bootstrap loads configuration, builds the logger, opens the database and
// wires repositories and services. The returned context carries the logger.
func bootstrap(ctx context.Context) (context.Context, *app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ctx, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	ctx = log.WithContext(ctx)

	srv, err := server.New(ctx, cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return ctx, nil, err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		_ = srv.Close()
		loggerService.Shutdown()
		return ctx, nil, fmt.Errorf("could not create services: %w", err)
	}

	return ctx, &app{
		server:   srv,
		services: services,
		logger:   &log,
		shutdown: loggerService.Shutdown,
	}, nil
}

// close releases the pool and flushes telemetry.
func (a *app) close() {
	if err := a.server.Close(); err != nil {
		a.logger.Error().Err(err).Msg("failed to close server resources")
	}
	a.shutdown()
}
