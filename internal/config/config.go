package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env         string `env:"ENV" env-required:"true"`
	StoreDriver string `env:"STORE_DRIVER" env-default:"sqlite"`
	AutoMigrate bool   `env:"STORE_AUTO_MIGRATE" env-default:"true"`
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	SQLite      SQLiteConfig
	JWT         JWTConfig
	CORS        CORSConfig
	Generation  GenerationConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// PostgresConfig is only read when STORE_DRIVER is postgres.
type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" env-default:"checklist.db"`
}

type JWTConfig struct {
	Issuer     string `env:"JWT_ISSUER"`
	SigningKey string `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type GenerationConfig struct {
	Timeout time.Duration `env:"GENERATION_TIMEOUT" env-default:"30s"`
}
