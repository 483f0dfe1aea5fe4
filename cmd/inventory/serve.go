package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/database"
	"github.com/deppfellow/inventory-api/internal/handler"
	"github.com/deppfellow/inventory-api/internal/logger"
	"github.com/deppfellow/inventory-api/internal/repository"
	"github.com/deppfellow/inventory-api/internal/router"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/deppfellow/inventory-api/internal/service"
	"github.com/spf13/cobra"
)

const (
	migrationTimeout = time.Minute
	shutdownTimeout  = 30 * time.Second
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and run the HTTP server and job workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), skipMigrations)
	},
}

func runServe(parent context.Context, skipMigrate bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if !skipMigrate {
		migrateCtx, cancel := context.WithTimeout(parent, migrationTimeout)
		err := database.Migrate(migrateCtx, &log, cfg)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		return errors.Join(fmt.Errorf("could not create services: %w", err), shutdown(srv))
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers, services)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serveUntilDone(ctx, srv); err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}

// lifecycle is the part of *server.Server that serveUntilDone drives.
type lifecycle interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// serveUntilDone runs srv until ctx is done or Start fails, then shuts it
// down. A failed Start is returned even when shutdown succeeds.
func serveUntilDone(ctx context.Context, srv lifecycle) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			startErr = fmt.Errorf("server stopped unexpectedly: %w", err)
		}
	}

	return errors.Join(startErr, shutdown(srv))
}

func shutdown(srv lifecycle) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
