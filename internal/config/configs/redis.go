package configs

import "time"

// Redis configures the Redis storage backend.
type Redis struct {
	// URL is either a redis:// URL or a bare host:port.
	URL string `env:"URL" envDefault:"localhost:6379"`
	// LedgerTTL bounds how long completed transaction ids are remembered.
	// Zero keeps them forever.
	LedgerTTL time.Duration `env:"LEDGER_TTL" envDefault:"0s"`
}
