package config

type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"food-catalog"`
}

// Enabled reports whether at least one seed broker is configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
