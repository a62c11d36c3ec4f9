package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type ServerConfig struct {
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	PostgresDSN string `env:"POSTGRES_DSN"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	SeedAdminName   string  `env:"SEED_ADMIN_NAME"`
	SeedAdminEmail  string  `env:"SEED_ADMIN_EMAIL"`
	SeedAdminWallet float64 `env:"SEED_ADMIN_WALLET" envDefault:"0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.PostgresDSN == "" {
			return cfg, errors.New("POSTGRES_DSN is required for the postgres store driver")
		}
	case StoreDriverMemory:
	default:
		return cfg, errors.New("STORE_DRIVER must be postgres or memory")
	}
	return cfg, nil
}
