package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Log     zerolog.Logger
}

// NewApp initialize logger, database and services, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log := logger.New(cfg.Log.Level)

	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPathRaw = filepath.Join(appDir, "tally.db")
	}

	dbPath, err := ExpandPath(dbPathRaw)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid database path %q: %w", dbPathRaw, err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Debug().Str("db_path", dbPath).Msg("database ready")

	svc := service.NewService(dbStore, cfg, log)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Log:     log,
	}, cleanup, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
