package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Validator is implemented by configs that check their values after parsing.
type Validator interface {
	Validate() error
}

// New reads configuration from environment variables into a struct of type
// T. If *T implements Validator the parsed config is validated too.
func New[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if v, ok := any(&cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return cfg, fmt.Errorf("validate config: %w", err)
		}
	}

	return cfg, nil
}
