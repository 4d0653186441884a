package app

import (
	"fmt"

	"github.com/adanyl0v/checklist/internal/config"
	"github.com/adanyl0v/checklist/internal/store"
)

var globalStore store.Store

// MustOpenStore connects the configured task store. With migrate set the
// embedded migrations are applied before the store is used.
func MustOpenStore(migrate bool) {
	cfg := config.Global()
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		MustConnectPostgres()
		if migrate {
			MustMigratePostgres()
		}
		globalStore = store.NewPostgres(globalPostgresPool)
	case config.StoreDriverSQLite:
		MustOpenSQLite()
		if migrate {
			MustMigrateSQLite()
		}
		globalStore = globalSQLite
	default:
		err := fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
		globalLogger.Error().
			Err(err).
			Msg("failed to open store")
		panic(err)
	}
}

func CloseStore() {
	switch config.Global().StoreDriver {
	case config.StoreDriverPostgres:
		DisconnectPostgres()
	case config.StoreDriverSQLite:
		CloseSQLite()
	}
}
