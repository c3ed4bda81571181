package install

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-derived defaults for the CLI. Flags always win
// over these.
type Config struct {
	// Source is the directory payload resolution starts from.
	Source string `env:"AGENTS_SOURCE"`

	// Dist overrides the output directory.
	Dist string `env:"AGENTS_DIST"`

	// Force permits replacing existing output directories.
	Force bool `env:"AGENTS_FORCE"`
}

// ConfigFromEnv loads CLI defaults from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
