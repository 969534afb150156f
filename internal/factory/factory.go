package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/cardbank/internal/config"
	"github.com/mcoot/cardbank/internal/dependencies/clock"
	"github.com/mcoot/cardbank/internal/dependencies/random"
	"github.com/mcoot/cardbank/internal/services/engine"
	"github.com/mcoot/cardbank/internal/storage"
	"github.com/mcoot/cardbank/internal/storage/memory"
	redisstorage "github.com/mcoot/cardbank/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Terminal holds the bounds and timings every Controller is built with
	Terminal config.Terminal
	Logger   *slog.Logger

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Terminal is the terminal configuration (optional)
	// If nil, config.Default() is used
	Terminal *config.Terminal
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	terminal := config.Default()
	if cfg.Terminal != nil {
		terminal = *cfg.Terminal
	}
	if err := terminal.Validate(); err != nil {
		return nil, err
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), terminal, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, terminal config.Terminal, logger *slog.Logger) *App {
	return &App{
		Storage:  store,
		Clock:    clk,
		Random:   rnd,
		Terminal: terminal,
		Logger:   logger,
	}
}

// NewController creates a Controller for one terminal session on the given devices
func (a *App) NewController(devices engine.Devices) *engine.Controller {
	return engine.NewController(a.Terminal, devices, a.Storage, a.Clock, a.Random, a.Logger)
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
