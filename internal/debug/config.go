package debug

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go-simpler.org/env"
)

// Config controls debug logging. It is read from the environment.
type Config struct {
	Path  string `env:"ALIGNTABLE_DEBUG" usage:"file to append layout debug events to; empty disables logging"`
	Level string `env:"ALIGNTABLE_DEBUG_LEVEL" default:"debug" usage:"minimum level written to the debug log"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return Config{}, errors.Wrap(err, "load debug config")
	}
	return cfg, nil
}

// level parses Level, falling back to debug for an empty value.
func (c Config) level() (zerolog.Level, error) {
	if c.Level == "" {
		return zerolog.DebugLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "parse debug level %q", c.Level)
	}
	return lvl, nil
}
