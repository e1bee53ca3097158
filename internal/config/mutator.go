package config

import (
	"errors"
	"time"
)

type Mutator struct {
	Enabled    bool          `env:"MUTATOR_ENABLED" envDefault:"true"`
	Interval   time.Duration `env:"MUTATOR_INTERVAL" envDefault:"3s"`
	ErrorDelay time.Duration `env:"MUTATOR_ERROR_DELAY" envDefault:"3s"`
	MaxDelta   int           `env:"MUTATOR_MAX_DELTA" envDefault:"5"`
}

func (c Mutator) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Interval <= 0 || c.ErrorDelay <= 0 {
		return errors.New("mutator interval and error delay must be positive")
	}
	if c.MaxDelta < 0 {
		return errors.New("mutator max delta must not be negative")
	}
	return nil
}
