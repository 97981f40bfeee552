// Package server initializes and runs the portal server: it opens the
// database, applies migrations, wires the services, and serves the HTTP API
// with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/fairhub/internal/logging"
	"github.com/dmitrijs2005/fairhub/internal/server/blob"
	"github.com/dmitrijs2005/fairhub/internal/server/config"
	"github.com/dmitrijs2005/fairhub/internal/server/httpapi"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fairhub/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	return &App{config: c, logger: logger}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	m, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	if n, err := m.RefreshTokens(db).PurgeExpired(ctx); err != nil {
		app.logger.Warn(ctx, "refresh token purge failed", "error", err)
	} else if n > 0 {
		app.logger.Info(ctx, "purged expired refresh tokens", "count", n)
	}

	store := blob.NewS3Store(app.config)

	userService := services.NewUserService(db, m, app.config)
	submissionService := services.NewSubmissionService(db, m, store, app.logger)
	listingService := services.NewListingService(db, m, store)
	fairService := services.NewFairService(db, m)
	communityService := services.NewCommunityService(db, m)

	handler := httpapi.NewHandler(userService, submissionService, listingService, fairService, communityService, app.logger)

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "HTTP server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
