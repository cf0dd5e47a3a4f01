package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// CLI holds defaults for the pokequery command, overridable by flags.
type CLI struct {
	LogLevel  string `env:"POKEQUERY_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"POKEQUERY_LOG_FORMAT" envDefault:"text"`
	Format    string `env:"POKEQUERY_FORMAT" envDefault:"text"`
	Limit     int    `env:"POKEQUERY_LIMIT" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadCLI returns CLI defaults from the environment.
func LoadCLI() (CLI, error) {
	var cfg CLI
	if err := ParseEnv(&cfg); err != nil {
		return CLI{}, err
	}
	return cfg, nil
}
