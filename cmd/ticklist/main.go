package main

import (
	"fmt"
	"os"

	"ticklist/internal/config"
	"ticklist/internal/domain"
	"ticklist/internal/logger"
	"ticklist/internal/server"
	"ticklist/internal/store"
	"ticklist/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ticklist: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.New(cfg.LogLevel, os.Stdout)

	st, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	srv, err := web.NewServer(st, web.ServerOptions{
		Logger:  lg,
		Backend: cfg.StoreBackend,
		Version: cfg.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return server.New(srv, cfg, lg).Start()
}

// newStore builds the configured store backend. Both variants hold state
// for the lifetime of this process only.
func newStore(cfg *config.Config) (domain.Store, error) {
	var st domain.Store
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		s, err := store.NewSQLiteStore()
		if err != nil {
			return nil, err
		}
		st = s
	default:
		st = store.NewMemoryStore()
	}

	if cfg.SeedTasks {
		if err := store.Seed(st); err != nil {
			return nil, err
		}
	}
	return st, nil
}
