package config

import "time"

type HTTP struct {
	Port           uint32        `env:"HTTP_PORT" envDefault:"3001" validate:"gte=1,lte=65535"`
	Swagger        bool          `env:"HTTP_SWAGGER" envDefault:"true"`
	AllowedOrigin  string        `env:"HTTP_ALLOWED_ORIGIN" envDefault:"http://localhost:3039" validate:"required,url"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"5s" validate:"gt=0"`

	// RateLimit is the sustained requests per second accepted by the API.
	// Zero disables rate limiting.
	RateLimit      float64 `env:"HTTP_RATE_LIMIT" envDefault:"0" validate:"gte=0"`
	RateLimitBurst int     `env:"HTTP_RATE_LIMIT_BURST" envDefault:"50" validate:"gte=1"`
}
