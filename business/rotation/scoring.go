package rotation

import (
	"time"

	"brandBOS/domain"
)

// age damping: score * (base + ramp * min(age/rampUpDays, 1))
const (
	ageBaseWeight = 0.7
	ageRampWeight = 0.3
)

// ScoredCampaign is derived fresh on every analysis run; no score state
// survives between calls.
type ScoredCampaign struct {
	Campaign      domain.Campaign `json:"campaign"`
	RawScore      float64         `json:"raw_score"`
	AdjustedScore float64         `json:"adjusted_score"`
	AgeDays       int             `json:"age_days"`
}

// CompositeScore combines the normalized metrics into one weighted score,
// clamped to 100 against rounding overshoot.
func CompositeScore(cfg Config, m domain.CampaignMetrics) float64 {
	score := cfg.WCTR*Normalize(MetricCTR, m.CTR) +
		cfg.WConversionRate*Normalize(MetricConversionRate, m.ConversionRate) +
		cfg.WAuthorityImpact*Normalize(MetricAuthorityImpact, m.AuthorityImpact) +
		cfg.WCPA*Normalize(MetricCostPerAcquisition, m.CostPerAcquisition)

	if score > 100 {
		return 100
	}
	return score
}

// AdjustForAge dampens the composite score during the ramp-up window so
// young campaigns are not judged against mature ones. At age 0 the score
// is scaled by 0.7; at rampUpDays and beyond it is untouched.
func AdjustForAge(cfg Config, rawScore float64, ageDays int) float64 {
	rampUp := cfg.RampUpDays
	if rampUp <= 0 {
		rampUp = defaultRampUpDays
	}

	ageFactor := float64(ageDays) / float64(rampUp)
	if ageFactor > 1 {
		ageFactor = 1
	}

	return rawScore * (ageBaseWeight + ageRampWeight*ageFactor)
}

func ScoreCampaign(cfg Config, campaign domain.Campaign, now time.Time) ScoredCampaign {
	ageDays := campaign.AgeDays(now)
	raw := CompositeScore(cfg, campaign.Metrics())

	return ScoredCampaign{
		Campaign:      campaign,
		RawScore:      raw,
		AdjustedScore: AdjustForAge(cfg, raw, ageDays),
		AgeDays:       ageDays,
	}
}

func ScoreCampaigns(cfg Config, campaigns []domain.Campaign, now time.Time) []ScoredCampaign {
	scored := make([]ScoredCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		scored = append(scored, ScoreCampaign(cfg, c, now))
	}
	return scored
}
