// Package app provides the dependency injection container for the
// application.
package app

import (
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/infra/config"
	"github.com/ksaito/pmdash/internal/infra/jsonstore"
	"github.com/ksaito/pmdash/internal/infra/logging"
	"github.com/ksaito/pmdash/internal/infra/memstore"
)

// Container provides dependency injection for the application. It
// holds all port implementations; use cases are constructed at the
// call site from these ports.
type Container struct {
	// Ports (interfaces bound to implementations)
	Projects  domain.ProjectRepository
	Tasks     domain.TaskRepository
	Settings  domain.SettingsRepository
	Snapshots domain.Snapshotter
	Clock     domain.Clock

	// Pointer fields
	Logger *logging.Logger
	Repo   *memstore.Repository

	// Configuration
	Config  *config.Config
	DataDir string
}

// New creates a Container with configuration loaded from the default
// config directory and state hydrated from the default data directory.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Container from an already-loaded config.
// Useful for tests, which point DataDir at a temp directory.
func NewWithConfig(cfg *config.Config) (*Container, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		var err error
		dataDir, err = config.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}

	logger := logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))

	store := jsonstore.New(dataDir, logger)
	if cfg.UI.DefaultTheme != "" {
		store.SetDefaultTheme(domain.Theme(cfg.UI.DefaultTheme))
	}

	repo, err := memstore.New(store, logger)
	if err != nil {
		return nil, fmt.Errorf("hydrate repository: %w", err)
	}

	return &Container{
		Projects:  repo,
		Tasks:     repo,
		Settings:  repo,
		Snapshots: repo,
		Clock:     domain.RealClock{},
		Logger:    logger,
		Repo:      repo,
		Config:    cfg,
		DataDir:   dataDir,
	}, nil
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.Logger != nil {
		return c.Logger.Close()
	}
	return nil
}
