// Package server wires configuration, storage backends and services into
// the gRPC application and runs it until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/filevault/internal/cryptox"
	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/blobstore"
	"github.com/dmitrijs2005/filevault/internal/server/config"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filevault/internal/server/services"

	gs "github.com/dmitrijs2005/filevault/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.GRPCServer
}

var openPostgres = repomanager.OpenPostgres

// NewApp validates c, opens the configured backends and builds the services.
// Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewJSONLogger(w, c.LogLevel)
	app := &App{config: c, logger: logger}

	rm, err := app.initRepositories(ctx)
	if err != nil {
		return nil, err
	}

	blobs, err := app.initBlobStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	deriver, err := cryptox.NewKeyDeriver(c.KDF, []byte(c.KDFSalt))
	if err != nil {
		app.Close()
		return nil, err
	}
	engine := cryptox.NewEngine(c.AuthenticatedCipher)

	metadata := "memory"
	if app.db != nil {
		metadata = "postgres"
	}
	logger.Info(ctx, "backends ready",
		"metadata", metadata,
		"blobs", c.BlobBackend,
		"kdf", deriver.Name(),
		"authenticated_cipher", engine.Authenticated(),
	)

	app.server = gs.NewGRPCServer(c.EndpointAddrGRPC, logger,
		services.NewUserService(rm, c, logger),
		services.NewFileService(rm, blobs, logger),
		services.NewTransformService(rm, blobs, deriver, engine, logger),
		c.SecretKey,
	)

	return app, nil
}

func (app *App) initRepositories(ctx context.Context) (repomanager.RepositoryManager, error) {
	if app.config.DatabaseDSN == "" {
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := openPostgres(ctx, app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	rm := repomanager.NewPostgresRepositoryManager(db)
	if err := rm.RunMigrations(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return rm, nil
}

func (app *App) initBlobStore(ctx context.Context) (blobstore.Store, error) {
	c := app.config
	if c.BlobBackend == config.BlobBackendMemory {
		return blobstore.NewMemoryStore()
	}
	return blobstore.NewS3Store(ctx, blobstore.S3Options{
		Region:        c.S3Region,
		AccessKey:     c.S3RootUser,
		SecretKey:     c.S3RootPassword,
		Endpoint:      c.S3BaseEndpoint,
		Bucket:        c.S3Bucket,
		PresignExpiry: c.PresignExpiry,
	})
}

// Close releases the database connection, if any.
func (app *App) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "close db", "error", err)
		}
		app.db = nil
	}
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.Close()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
