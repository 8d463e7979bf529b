package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env-default:"warn"`
	LogFormat string `yaml:"log-format" env-default:"json"`
	LogOutput string `yaml:"log-output" env-default:"stderr"`
	Bot       Bot    `yaml:"bot"`
	Input     Input  `yaml:"input"`
}

type Bot struct {
	// Seed of the bot's random source, 0 picks a random seed.
	Seed uint64 `yaml:"seed" env-default:"0"`
}

type Input struct {
	RetryMaxInterval time.Duration `yaml:"retry-max-interval" env-default:"2s"`
}

// MustLoad - loads config.yml at path when it exists, defaults otherwise.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		// no env names are declared, so this only applies the defaults
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to apply defaults: %w", err)
		}

		return config, nil
	}

	if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}
