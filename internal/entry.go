// Package internal wires configuration, logging, the metadata directory and the
// note store into a ready-to-use runtime.
package internal

import (
	"fmt"
	"log/slog"

	"github.com/starford/note/internal/core"
	"github.com/starford/note/internal/metadir"
	"github.com/starford/note/internal/storage"
)

// Runtime is an opened note store together with the configuration and logger
// it was opened with.
type Runtime struct {
	API    *core.API
	Config *Config
	Logger *slog.Logger
	Home   string
	DBPath string

	// ConfigPath is empty when the configuration should not be reloaded.
	ConfigPath string
	// Level controls the default logger; changing it takes effect at once.
	Level *slog.LevelVar

	db *storage.DB
}

// Open resolves and creates the metadata directory, then opens the database
// inside it. The schema is not touched; see core.API.Install.
func Open(opts ...Option) (*Runtime, error) {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg := app.config

	level := new(slog.LevelVar)
	level.Set(cfg.App.LogLevel)

	logger := app.logger
	if logger == nil {
		logger = newLogger(cfg.App.LogFormat, level, app.logOutput)
	}

	home, err := metadir.Resolve(app.home)
	if err != nil {
		return nil, err
	}
	if _, err := metadir.Ensure(home, logger); err != nil {
		return nil, err
	}

	dbPath := metadir.DatabasePath(home, cfg.SQLite.Filename)
	logger.Debug("Opening store",
		slog.String("metadir", home),
		slog.String("sqlite_path", dbPath),
		slog.String("log_level", cfg.App.LogLevel.String()))

	db, err := storage.Open(dbPath, storage.WithBusyTimeout(cfg.SQLite.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	return &Runtime{
		API:    core.New(db),
		Config: cfg,
		Logger: logger,
		Home:   home,
		DBPath: dbPath,

		ConfigPath: app.configPath,
		Level:      level,

		db: db,
	}, nil
}

// Close releases the database connection.
func (r *Runtime) Close() error {
	return r.db.Close()
}
