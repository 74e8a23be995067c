package configs

// Campaign holds the fixed campaign parameters.
type Campaign struct {
	// Goal is the fundraising target in whole currency units.
	Goal int64 `env:"GOAL" envDefault:"1000000000"`
	// CompletionMarker is the query key a hosted checkout appends when it
	// redirects back after a successful payment.
	CompletionMarker string `env:"COMPLETION_MARKER" envDefault:"checkout_success"`
	// SimulatedIncrement is added to the total for every completion marker.
	SimulatedIncrement int64 `env:"SIMULATED_INCREMENT" envDefault:"1000"`
	// IncrementPolicy is "fixed" (always SimulatedIncrement) or "reported"
	// (use the amount a webhook reports, SimulatedIncrement otherwise).
	IncrementPolicy string `env:"INCREMENT_POLICY" envDefault:"reported"`
	// ReferralToken is the ref= value of referral links.
	ReferralToken string `env:"REFERRAL_TOKEN" envDefault:"donated_1000"`
	// PledgeAmount is the amount quoted in the share message.
	PledgeAmount int64 `env:"PLEDGE_AMOUNT" envDefault:"1000"`
	// VideosFile overrides the embedded video catalogue with a YAML file.
	VideosFile string `env:"VIDEOS_FILE"`
}
