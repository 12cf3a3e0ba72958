// Package wire provides dependency injection for the morg application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/morg/internal/adapters/cli"
	"github.com/example/morg/internal/adapters/filesystem"
	"github.com/example/morg/internal/adapters/sqlite"
	"github.com/example/morg/internal/adapters/web"
	"github.com/example/morg/internal/app"
	"github.com/example/morg/internal/config"
	"github.com/example/morg/internal/db"
	"github.com/example/morg/internal/logger"
	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/ports/secondary"
)

var (
	cfg             *config.Config
	database        *sql.DB
	logFile         *os.File
	queryService    primary.CatalogQueryService
	mutationService primary.CatalogMutationService
	importService   primary.ImportService
	photoService    primary.PhotoService
	once            sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// DB returns the open catalog database.
func DB() *sql.DB {
	once.Do(initServices)
	return database
}

// CatalogQueryService returns the singleton CatalogQueryService instance.
func CatalogQueryService() primary.CatalogQueryService {
	once.Do(initServices)
	return queryService
}

// CatalogMutationService returns the singleton CatalogMutationService instance.
func CatalogMutationService() primary.CatalogMutationService {
	once.Do(initServices)
	return mutationService
}

// ImportService returns the singleton ImportService instance.
func ImportService() primary.ImportService {
	once.Do(initServices)
	return importService
}

// PhotoService returns the singleton PhotoService instance.
func PhotoService() primary.PhotoService {
	once.Do(initServices)
	return photoService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	home, err := config.Home()
	if err != nil {
		fatal("failed to resolve morg home", err)
	}

	cfg, err = config.LoadOrDefault(home)
	if err != nil {
		fatal("failed to load config", err)
	}

	initLogger()

	database, err = db.Open(cfg.DatabasePath)
	if err != nil {
		fatal("failed to initialize database", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	garmentRepo := sqlite.NewGarmentRepository(database)
	historyRepo := sqlite.NewHistoryRepository(database)
	changeLogRepo := sqlite.NewChangeLogRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(changeLogRepo)

	photoStore := filesystem.NewPhotoStore(cfg.DataDir)
	photoWatcher := filesystem.NewPhotoWatcher(cfg.DataDir)

	// Create services (primary ports implementation)
	queryService = app.NewCatalogQueryService(garmentRepo, historyRepo, changeLogRepo)
	mutationService = app.NewCatalogMutationService(garmentRepo, historyRepo, queryService, logWriter)
	importService = app.NewImportService(openLegacy, garmentRepo, historyRepo, logWriter)
	photoService = app.NewPhotoService(queryService, photoStore, photoWatcher)

	logger.Debug("services initialized", "database", cfg.DatabasePath, "data_dir", cfg.DataDir)
}

func initLogger() {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		logger.Initialize(level, os.Stderr)
		return
	}

	f, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		logger.Initialize(level, os.Stderr)
		logger.Warn("failed to open log file, logging to stderr", "path", cfg.LogFile, "error", err)
		return
	}
	logFile = f
	logger.Initialize(level, f)
}

func openLegacy(path string) (secondary.LegacyCatalogSource, error) {
	src, err := sqlite.OpenLegacySource(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	os.Stderr.WriteString(msg + ": " + err.Error() + "\n")
	os.Exit(1)
}

// Close releases the database and log file if they were opened.
func Close() {
	if database != nil {
		database.Close()
	}
	if logFile != nil {
		logFile.Close()
	}
}

// GarmentAdapter returns a new GarmentAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func GarmentAdapter() *cliadapter.GarmentAdapter {
	return GarmentAdapterWithOutput(os.Stdout)
}

// GarmentAdapterWithOutput returns a new GarmentAdapter writing to the given output.
func GarmentAdapterWithOutput(out io.Writer) *cliadapter.GarmentAdapter {
	once.Do(initServices)
	return cliadapter.NewGarmentAdapter(queryService, mutationService, out)
}

// HistoryAdapter returns a new HistoryAdapter writing to stdout.
func HistoryAdapter() *cliadapter.HistoryAdapter {
	return HistoryAdapterWithOutput(os.Stdout)
}

// HistoryAdapterWithOutput returns a new HistoryAdapter writing to the given output.
func HistoryAdapterWithOutput(out io.Writer) *cliadapter.HistoryAdapter {
	once.Do(initServices)
	return cliadapter.NewHistoryAdapter(queryService, mutationService, out)
}

// CatalogAdapter returns a new CatalogAdapter writing to stdout.
func CatalogAdapter() *cliadapter.CatalogAdapter {
	return CatalogAdapterWithOutput(os.Stdout)
}

// CatalogAdapterWithOutput returns a new CatalogAdapter writing to the given output.
func CatalogAdapterWithOutput(out io.Writer) *cliadapter.CatalogAdapter {
	once.Do(initServices)
	return cliadapter.NewCatalogAdapter(queryService, out)
}

// WebServer returns an HTTP server over the catalog services.
func WebServer() *web.Server {
	once.Do(initServices)
	return web.NewServer(queryService, mutationService, photoService, web.Options{
		DataDir:            cfg.DataDir,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})
}

// EnsurePhotoDirs creates the photo and sets directories under the data directory.
func EnsurePhotoDirs(ctx context.Context) error {
	once.Do(initServices)
	return filesystem.NewPhotoStore(cfg.DataDir).EnsureDirs(ctx)
}
