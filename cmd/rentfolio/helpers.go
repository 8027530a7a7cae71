package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/rentfolio/rentfolio/internal/config"
	"github.com/rentfolio/rentfolio/internal/service"
	"github.com/rentfolio/rentfolio/internal/storage"
)

// openStore opens the configured database and brings the schema current.
func openStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q", arg)
	}
	return id, nil
}
