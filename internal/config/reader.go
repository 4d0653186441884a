package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s store", c.StoreDriver)
		}
	case StoreDriverPostgres:
		pg := c.Postgres
		if pg.Host == "" || pg.Username == "" || pg.Database == "" {
			return fmt.Errorf("POSTGRES_HOST, POSTGRES_USERNAME and POSTGRES_DATABASE are required for the %s store", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown store driver: %q", c.StoreDriver)
	}
	return nil
}
