package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
)

const prefix = "UNO"

// Config tunes the table registry. Fields are read from UNO_* environment
// variables, e.g. UNO_MAX_TABLES.
type Config struct {
	MaxTables     int           `split_words:"true" default:"1024"`
	IdleTimeout   time.Duration `split_words:"true" default:"24h"`
	SweepInterval time.Duration `split_words:"true" default:"1m"`
	// Seed makes tables deterministic when non-zero. The n-th table a
	// registry creates is dealt with Seed+n.
	Seed int64 `default:"0"`
}

func Default() Config {
	return Config{
		MaxTables:     consts.DefaultMaxTables,
		IdleTimeout:   consts.DefaultIdleTimeout,
		SweepInterval: time.Minute,
	}
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	if c.MaxTables <= 0 {
		return Config{}, errors.Errorf("UNO_MAX_TABLES must be positive, got %d", c.MaxTables)
	}
	if c.IdleTimeout <= 0 {
		return Config{}, errors.Errorf("UNO_IDLE_TIMEOUT must be positive, got %s", c.IdleTimeout)
	}
	if c.SweepInterval <= 0 {
		return Config{}, errors.Errorf("UNO_SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}
	return c, nil
}

// LoadFile reads UNO_* variables from dotenv files before calling Load.
// Variables already set in the environment win over the files.
func LoadFile(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		return Config{}, errors.Wrap(err, "load env file")
	}
	return Load()
}
