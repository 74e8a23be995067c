package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// PublicOrigin, when set, is used for referral links instead of the
	// origin derived from the request (scheme and Host header).
	PublicOrigin string `env:"PUBLIC_ORIGIN"`
}
