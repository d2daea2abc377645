package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"ctchen222/Tic-Tac-Toe-Console/internal/validator"
)

// Config holds the process-scoped game settings. Difficulty and
// FirstTurn may be left empty to be asked interactively at startup.
type Config struct {
	LogLevel   string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Difficulty string    `yaml:"difficulty" env:"TTT_DIFFICULTY" validate:"omitempty,oneof=easy medium hard"`
	FirstTurn  string    `yaml:"first-turn" env:"TTT_FIRST_TURN" validate:"omitempty,oneof=human ai"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

// Telemetry configures the optional OTLP export.
type Telemetry struct {
	Enabled  bool   `yaml:"enabled" env:"TTT_TELEMETRY_ENABLED" env-default:"false"`
	Endpoint string `yaml:"otlp-endpoint" env:"TTT_OTLP_ENDPOINT" env-default:"localhost:4317"`
}

// Load reads the config file when present, falls back to environment
// variables otherwise, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read env config: %w", err)
		}
	} else {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
