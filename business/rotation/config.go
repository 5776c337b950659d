package rotation

import (
	"context"

	"brandBOS/domain"
)

type Config struct {
	// composite score weights, must total 1.0
	WCTR             float64
	WConversionRate  float64
	WAuthorityImpact float64
	WCPA             float64

	// minimum best-vs-worst adjusted-score gap before a rotation fires
	RotationThreshold float64

	// absolute adjusted-score floor: the worst campaign must sit below
	// this regardless of the gap
	UnderperformanceScore float64

	// a campaign younger than this is never paused
	MinCampaignDurationDays int

	// ramp-up window over which age damping fades out
	RampUpDays int

	// per-campaign share of total budget after reallocation
	MinBudgetShare float64
	MaxBudgetShare float64
}

const (
	defaultWCTR             = 0.25
	defaultWConversionRate  = 0.30
	defaultWAuthorityImpact = 0.25
	defaultWCPA             = 0.20

	defaultRotationThreshold     = 20.0
	defaultUnderperformanceScore = 50.0
	defaultMinCampaignDuration   = 7
	defaultRampUpDays            = 30

	defaultMinBudgetShare = 0.15
	defaultMaxBudgetShare = 0.40
)

func DefaultConfig() Config {
	return Config{
		WCTR:             defaultWCTR,
		WConversionRate:  defaultWConversionRate,
		WAuthorityImpact: defaultWAuthorityImpact,
		WCPA:             defaultWCPA,

		RotationThreshold:       defaultRotationThreshold,
		UnderperformanceScore:   defaultUnderperformanceScore,
		MinCampaignDurationDays: defaultMinCampaignDuration,
		RampUpDays:              defaultRampUpDays,

		MinBudgetShare: defaultMinBudgetShare,
		MaxBudgetShare: defaultMaxBudgetShare,
	}
}

// read per-account rotation config from DB.
type ConfigRepository interface {
	GetConfig(ctx context.Context, accountID string) (domain.RotationConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.RotationConfig) error
}
