package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/checklist/internal/config"
)

func TestEnvReader_Read(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("ENV", config.EnvLocal)
		t.Setenv("JWT_SIGNING_KEY", "secret")

		cfg, err := config.NewEnvReader().Read()
		require.NoError(t, err)
		assert.Equal(t, config.StoreDriverSQLite, cfg.StoreDriver)
		assert.Equal(t, "checklist.db", cfg.SQLite.Path)
		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, 30*time.Second, cfg.Generation.Timeout)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Should split allowed origins", func(t *testing.T) {
		t.Setenv("ENV", config.EnvProd)
		t.Setenv("JWT_SIGNING_KEY", "secret")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg, err := config.NewEnvReader().Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Should require postgres settings for the postgres store", func(t *testing.T) {
		t.Setenv("ENV", config.EnvProd)
		t.Setenv("JWT_SIGNING_KEY", "secret")
		t.Setenv("STORE_DRIVER", config.StoreDriverPostgres)
		t.Setenv("POSTGRES_HOST", "")

		_, err := config.NewEnvReader().Read()
		assert.Error(t, err)
	})

	t.Run("Should reject unknown store drivers", func(t *testing.T) {
		t.Setenv("ENV", config.EnvProd)
		t.Setenv("JWT_SIGNING_KEY", "secret")
		t.Setenv("STORE_DRIVER", "mongo")

		_, err := config.NewEnvReader().Read()
		assert.ErrorContains(t, err, "unknown store driver")
	})
}
