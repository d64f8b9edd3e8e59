package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players   Players `yaml:"players"`
	Rounds    int     `yaml:"rounds" env:"ROUNDS" env-default:"1"`
	Seed      int64   `yaml:"seed" env:"SEED" env-default:"0"`
	SkipPause bool    `yaml:"skip-exit-pause" env:"SKIP_EXIT_PAUSE"`
}

// Players - kind of player for each side: human, random or search.
type Players struct {
	O entity.PlayerKind `yaml:"o" env:"PLAYER_O" env-default:"search"`
	X entity.PlayerKind `yaml:"x" env:"PLAYER_X" env-default:"search"`
}

// MustLoad - load all configurations in config.yml file.
// Without the file, environment variables and defaults are used.
// Defaults also replace zero values read from the file, so rounds: 0 means 1.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if that.Rounds < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidRounds, that.Rounds)
	}

	for mark, kind := range map[entity.Mark]entity.PlayerKind{entity.PlayerO: that.Players.O, entity.PlayerX: that.Players.X} {
		if !kind.IsKnown() {
			return fmt.Errorf("%w: %q for player %s", apperror.ErrUnknownPlayerKind, kind, mark)
		}
	}

	return nil
}
