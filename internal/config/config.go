package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/chinese-slacking-party/go-kusokurae/internal/util"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the kusokurae command
type Config struct {
	loaded bool

	// Players is the number of seats at the table, 3 or 4
	Players int `yaml:"players" envconfig:"players"`

	// Seed seeds the deal. 0 seeds from the clock.
	Seed int64 `yaml:"seed" envconfig:"seed"`

	// Generator is the random number generator used for dealing, lcg or crypto
	Generator string `yaml:"generator" envconfig:"generator"`

	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

// generator names
const (
	GeneratorLCG    = "lcg"
	GeneratorCrypto = "crypto"
)

var config Config

// DefaultConfig returns the configuration used when nothing else is set
func DefaultConfig() Config {
	cfg := Config{
		Players:   4,
		Generator: GeneratorLCG,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// Values come from the defaults, then the YAML file, then the environment. A .env file,
// if present, is read into the environment first.
func Load() error {
	envFile := util.Getenv("KUSOKURAE_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not load %s: %w", envFile, err)
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("KUSOKURAE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("kusokurae", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values that can't be fixed up later
func (c Config) Validate() error {
	if c.Players < 3 || c.Players > 4 {
		return fmt.Errorf("players must be 3 or 4, got %d", c.Players)
	}

	switch c.Generator {
	case GeneratorLCG, GeneratorCrypto:
	default:
		return fmt.Errorf("unknown generator: %s", c.Generator)
	}

	return nil
}
