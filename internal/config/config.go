package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the CLI runtime configuration.
type Config struct {
	// NodeSpec is the generator's node identity, e.g. "42/8" or "0xb00/12".
	// Required for generation; commands that only decode IDs run without it.
	NodeSpec string `env:"SCRU64_NODE_SPEC"`

	// RollbackAllowanceMs is the backward clock jump in milliseconds
	// tolerated before generation treats it as a significant rollback.
	RollbackAllowanceMs uint64 `env:"SCRU64_ROLLBACK_ALLOWANCE_MS" envDefault:"10000"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `env:"SCRU64_LOG_LEVEL" envDefault:"info"`

	// LogFormat selects log output: text or json.
	LogFormat string `env:"SCRU64_LOG_FORMAT" envDefault:"text"`
}

// Default returns the built-in defaults without consulting the environment.
func Default() Config {
	return Config{
		RollbackAllowanceMs: 10000,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// FromEnv parses SCRU64_* environment variables into a Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
