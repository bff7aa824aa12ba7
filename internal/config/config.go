package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontEndGUI = "gui"
	FrontEndCLI = "cli"

	FirstPlayerHuman = "human"
	FirstPlayerBot   = "bot"
)

var (
	ErrUnknownFrontEnd    = errors.New("unknown front end")
	ErrUnknownFirstPlayer = errors.New("unknown first player")
	ErrUnknownLogLevel    = errors.New("unknown log level")

	logLevels = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"MORPION_LOG_LEVEL" env-default:"info"`
	LogFile     string `yaml:"log-file" env:"MORPION_LOG_FILE" env-default:""`
	FrontEnd    string `yaml:"front-end" env:"MORPION_FRONT_END" env-default:"gui"`
	FirstPlayer string `yaml:"first-player" env:"MORPION_FIRST_PLAYER" env-default:"human"`
	Search      Search `yaml:"search"`
}

// Search - opponent settings. Flags stay false by default: cleanenv fills env-default into zero values.
type Search struct {
	DisableCache bool `yaml:"disable-cache" env:"MORPION_SEARCH_DISABLE_CACHE"`
}

// Load - reads the config file at path when it exists, the environment otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if that.FrontEnd != FrontEndGUI && that.FrontEnd != FrontEndCLI {
		return fmt.Errorf("%w: %q", ErrUnknownFrontEnd, that.FrontEnd)
	}

	if that.FirstPlayer != FirstPlayerHuman && that.FirstPlayer != FirstPlayerBot {
		return fmt.Errorf("%w: %q", ErrUnknownFirstPlayer, that.FirstPlayer)
	}

	if !slices.Contains(logLevels, that.LogLevel) {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	return nil
}
