package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
)

// New reads configuration from environment variables and unmarshals them into
// a struct of type T, then checks the `validate` tags of every nested section.
func New[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return cfg, fmt.Errorf("new validator: %w", err)
	}

	if err := v.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
