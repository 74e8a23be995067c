package domain

import "errors"

var (
	// ErrNegativeDelta is returned when a progress increment is below zero.
	ErrNegativeDelta = errors.New("negative progress delta")
	// ErrTotalOverflow is returned when an increment would push the total
	// past the largest representable amount.
	ErrTotalOverflow = errors.New("progress total overflow")
	// ErrAmountOutOfRange is returned for a reported completion amount
	// larger than the campaign goal.
	ErrAmountOutOfRange = errors.New("completion amount out of range")
	// ErrDuplicateCompletion is returned by a ledger when a transaction id
	// has already been applied.
	ErrDuplicateCompletion = errors.New("duplicate completion")
	// ErrUnresolvable is reported when a video link yields no identifier.
	ErrUnresolvable = errors.New("video reference not resolvable")
	// ErrShareUnavailable is returned by a sharer whose capability is
	// missing in the current host environment, e.g. a system clipboard
	// without a clipboard utility.
	ErrShareUnavailable = errors.New("share capability unavailable")
	// ErrShareCancelled is returned when the user dismissed the share.
	ErrShareCancelled = errors.New("share cancelled")
)

// CampaignProgress is the current fundraising state of the campaign.
// Amounts are whole display units (e.g. dollars).
type CampaignProgress struct {
	TotalRaised int64   `json:"total_raised"`
	Goal        int64   `json:"goal"`
	Percent     float64 `json:"percent"`
}

// NewCampaignProgress derives the percentage of goal reached. The result
// is clamped to [0,100]; a non-positive goal yields zero.
func NewCampaignProgress(total, goal int64) CampaignProgress {
	p := CampaignProgress{TotalRaised: total, Goal: goal}
	if goal <= 0 || total <= 0 {
		return p
	}
	p.Percent = float64(total) / float64(goal) * 100
	if p.Percent > 100 {
		p.Percent = 100
	}
	return p
}
