package config

import "time"

type Postgres struct {
	Host     string `env:"POSTGRES_HOST,required"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432" validate:"gte=1,lte=65535"`
	User     string `env:"POSTGRES_USER,required"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB,required"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	// FoodTable is the (optionally schema qualified) product table name.
	FoodTable string `env:"POSTGRES_FOOD_TABLE" envDefault:"foodtbl" validate:"required"`

	// Pooled switches from one dialed connection per call to a shared pool.
	Pooled          bool          `env:"POSTGRES_POOLED" envDefault:"false"`
	ConnectTimeout  time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`
	MaxConns        int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10" validate:"gte=1"`
	MinConns        int32         `env:"POSTGRES_MIN_CONNS" envDefault:"0" validate:"gte=0"`
	MaxConnLifetime time.Duration `env:"POSTGRES_MAX_CONN_LIFETIME" envDefault:"1h"`
	MaxConnIdleTime time.Duration `env:"POSTGRES_MAX_CONN_IDLE_TIME" envDefault:"30m"`
}
