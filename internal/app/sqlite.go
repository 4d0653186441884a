package app

import (
	"context"

	"github.com/adanyl0v/checklist/internal/config"
	"github.com/adanyl0v/checklist/internal/store"
)

var globalSQLite *store.SQLite

func MustOpenSQLite() {
	cfg := config.Global().SQLite

	var err error
	globalSQLite, err = store.OpenSQLite(context.Background(), cfg.Path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open sqlite")
		panic(err)
	}
	globalLogger.Info().
		Str("path", cfg.Path).
		Msg("opened sqlite")
}

func MustMigrateSQLite() {
	err := store.Migrate(context.Background(), globalSQLite.DB(), store.DialectSQLite, globalLogger)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to migrate sqlite")
		panic(err)
	}
	globalLogger.Info().Msg("migrated sqlite")
}

func CloseSQLite() {
	err := globalSQLite.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close sqlite")
		return
	}
	globalLogger.Info().Msg("closed sqlite")
}
