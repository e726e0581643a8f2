package config

import "time"

type Activity struct {
	Enabled bool `env:"ACTIVITY_ENABLED" envDefault:"false"`
	// PublishTimeout bounds how long a fire-and-forget event may stay buffered.
	PublishTimeout time.Duration `env:"ACTIVITY_PUBLISH_TIMEOUT" envDefault:"5s"`
	MetricsPort    uint32        `env:"ACTIVITY_METRICS_PORT" envDefault:"9101" validate:"gte=1,lte=65535"`
}
