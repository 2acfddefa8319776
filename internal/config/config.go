package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment.
type Config struct {
	// Persist mirrors the journal to disk after every change.
	Persist bool `env:"JURNAL_PERSIST" envDefault:"true"`

	LogLevel string `env:"JURNAL_LOG_LEVEL" envDefault:"info"`
	// LogFile overrides <home>/jurnal.log.
	LogFile string `env:"JURNAL_LOG_FILE"`
}

// Load reads an optional dotenv file and then the process environment.
// Variables already set in the environment win over the file.
func Load(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultDotenv is the file the CLI hands to Load.
const DefaultDotenv = ".env"
