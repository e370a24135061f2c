// Package server initializes and runs the registration API server.
// It opens the database, applies migrations, selects the brochure storage
// backend, and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/XVDel0Saint/fameconnect/internal/logging"
	"github.com/XVDel0Saint/fameconnect/internal/server/config"
	"github.com/XVDel0Saint/fameconnect/internal/server/httpapi"
	"github.com/XVDel0Saint/fameconnect/internal/server/registration"
	"github.com/XVDel0Saint/fameconnect/internal/server/repositories/repomanager"
	"github.com/XVDel0Saint/fameconnect/internal/server/storage"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	db                  *sql.DB
	registrationService *registration.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	store, err := newBlobStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	rs := registration.NewService(db, rm, store, logger)

	return &App{config: c, logger: logger, db: db, registrationService: rs}, nil
}

func newBlobStore(ctx context.Context, c *config.Config) (storage.BlobStore, error) {
	switch c.StorageBackend {
	case "s3":
		return storage.NewS3Store(ctx, storage.S3Config{
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	case "disk":
		return storage.NewDiskStore(c.StorageDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := httpapi.NewRouter(app.registrationService, app.logger, app.config.CORSOrigin)
	s := httpapi.NewServer(app.config.EndpointAddr, router, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
