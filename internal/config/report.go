package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type ReportConfig struct {
	Timezone string `env:"REPORT_TIMEZONE" envDefault:"Local"`
}

func LoadReport() (ReportConfig, error) {
	var cfg ReportConfig
	err := env.Parse(&cfg)
	return cfg, err
}

// Location resolves Timezone. "Local" and "" mean the process location.
func (c ReportConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
