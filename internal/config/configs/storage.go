package configs

import "strings"

// Storage selects where the campaign total is persisted.
type Storage struct {
	// Backend is one of "memory", "postgres" or "redis". Unknown values
	// fall back to "memory".
	Backend string `env:"BACKEND" envDefault:"memory"`
	// Key is the storage key holding the total raised.
	Key string `env:"KEY" envDefault:"totalRaised"`
}

// Kind returns the normalised backend name.
func (c Storage) Kind() string {
	switch strings.ToLower(c.Backend) {
	case "postgres", "postgresql", "psql":
		return "postgres"
	case "redis":
		return "redis"
	default:
		return "memory"
	}
}
