package domain

import "time"

// Per-account override of the rotation engine tuning. Absent rows fall
// back to the engine defaults.
type RotationConfig struct {
	AccountID string `json:"account_id" gorm:"primaryKey;column:account_id"`

	WCTR             float64 `json:"w_ctr" gorm:"column:w_ctr"`
	WConversionRate  float64 `json:"w_conversion_rate" gorm:"column:w_conversion_rate"`
	WAuthorityImpact float64 `json:"w_authority_impact" gorm:"column:w_authority_impact"`
	WCPA             float64 `json:"w_cpa" gorm:"column:w_cpa"`

	RotationThreshold       float64 `json:"rotation_threshold" gorm:"column:rotation_threshold"`
	UnderperformanceScore   float64 `json:"underperformance_score" gorm:"column:underperformance_score"`
	MinCampaignDurationDays int     `json:"min_campaign_duration_days" gorm:"column:min_campaign_duration_days"`
	RampUpDays              int     `json:"ramp_up_days" gorm:"column:ramp_up_days"`

	MinBudgetShare float64 `json:"min_budget_share" gorm:"column:min_budget_share"`
	MaxBudgetShare float64 `json:"max_budget_share" gorm:"column:max_budget_share"`

	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (RotationConfig) TableName() string {
	return "rotation_configs"
}
