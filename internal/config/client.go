package config

import "time"

// Client configures the catalog API client used by the CLI.
type Client struct {
	BaseURL string        `env:"FOOD_CATALOG_URL" envDefault:"http://localhost:3001" validate:"required,url"`
	Timeout time.Duration `env:"FOOD_CATALOG_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}
