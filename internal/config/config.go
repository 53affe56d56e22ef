package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// GameConfig holds the configuration values loaded from environment variables.
type GameConfig struct {
	LogLevel       string `env:"LOG_LEVEL" env-default:"INFO" env-description:"log level: DEBUG, INFO, WARN or ERROR"`
	BoardSize      int    `env:"REVERSI_BOARD_SIZE" env-default:"8" env-description:"board size, even and between 4 and 8"`
	StartingPlayer int    `env:"REVERSI_STARTING_PLAYER" env-default:"1" env-description:"player that moves first, 1 or 2"`
	StartingColor  string `env:"REVERSI_STARTING_COLOR" env-default:"black" env-description:"disc color of the starting player"`
}

// LoadGameConfig loads configuration from environment variables.
func LoadGameConfig() (*GameConfig, error) {
	cfg := &GameConfig{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}
