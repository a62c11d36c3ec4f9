package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// SettlementConfig controls the game-completion listener.
type SettlementConfig struct {
	ListenEnabled bool          `env:"SETTLEMENT_LISTEN_ENABLED" envDefault:"false"`
	ListenChannel string        `env:"SETTLEMENT_LISTEN_CHANNEL" envDefault:"game_completed"`
	ListenBackoff time.Duration `env:"SETTLEMENT_LISTEN_BACKOFF" envDefault:"5s"`
}

func LoadSettlement() (SettlementConfig, error) {
	var cfg SettlementConfig
	err := env.Parse(&cfg)
	return cfg, err
}
