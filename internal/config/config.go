package config

import (
	"github.com/caarlos0/env/v11"

	"solidarity-campaign/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the types in the configs package for defaults.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage selects the persistence backend (STORAGE_*).
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Psql configures the PostgreSQL backend (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the Redis backend (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Campaign holds campaign parameters (CAMPAIGN_*).
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
}

// Load reads configuration from environment variables into a Config. All
// fields take their defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
