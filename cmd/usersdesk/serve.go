package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/letuankiet/usersdesk/internal/handler"
	"github.com/letuankiet/usersdesk/internal/router"
	"github.com/letuankiet/usersdesk/static"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Prepare the database and run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.shutdown()

			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	if err := a.services.Users.Prepare(ctx); err != nil {
		_ = a.server.Close()
		return err
	}

	if _, err := a.services.Slides.Initialize(ctx); err != nil {
		_ = a.server.Close()
		return err
	}

	h := handler.NewHandlers(a.server, a.services, static.FS)
	r := router.NewRouter(a.server, h, static.FS)
	a.server.SetupHTTPServer(r)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case err := <-errCh:
		_ = a.server.Close()
		return err
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	a.logger.Info().Msg("server exited properly")
	return nil
}
