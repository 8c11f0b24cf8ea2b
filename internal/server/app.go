// Package server wires configuration, storage, services and the HTTP
// transport into a runnable application with signal-driven graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripvault/internal/logging"
	"tripvault/internal/server/api"
	"tripvault/internal/server/auth"
	"tripvault/internal/server/authz"
	"tripvault/internal/server/config"
	"tripvault/internal/server/destinations"
	"tripvault/internal/server/store"
	"tripvault/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	router http.Handler
	closer io.Closer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewDefault(cfg.LogLevel)

	backend, closer, err := NewBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	dir := users.NewDirectory(store.NewCollection[users.User](backend, "users"), cfg.AllowSelfRoleChange, logger)
	guard := authz.NewGuard(tokens, dir, logger)
	catalog := destinations.NewCatalog(store.NewCollection[destinations.Destination](backend, "destinations"), guard, logger)

	return &App{
		config: cfg,
		logger: logger,
		router: api.New(dir, tokens, guard, catalog, logger),
		closer: closer,
	}, nil
}

// NewBackend selects the record-store backend by the configured driver. The
// returned closer is nil for backends that hold no external connection.
// The admin CLI reuses it so both entry points resolve storage identically.
func NewBackend(ctx context.Context, cfg *config.Config) (store.Backend, io.Closer, error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		b, err := store.NewFileBackend(cfg.DataDir)
		return b, nil, err
	case config.DriverMemory:
		return store.NewMemoryBackend(), nil, nil
	case config.DriverPostgres:
		b, err := store.NewPostgresBackend(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case config.DriverS3:
		b, err := store.NewS3Backend(ctx, store.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		return b, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or a signal arrives, then
// shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.RunAddress, "driver", app.config.StorageDriver)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.RunAddress,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}

	if app.closer != nil {
		if err := app.closer.Close(); err != nil {
			app.logger.Error(ctx, "storage close error", "error", err)
		}
	}

	app.logger.Info(ctx, "server stopped")
	return nil
}
