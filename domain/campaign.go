package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CampaignStatusActive    = "active"
	CampaignStatusQueued    = "queued"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// CREATE TABLE public.campaigns (
//     campaign_id          TEXT PRIMARY KEY,
//     account_id           TEXT NOT NULL,
//     title                TEXT NOT NULL,
//     status               TEXT NOT NULL DEFAULT 'queued',
//     budget_allocated     DOUBLE PRECISION NOT NULL DEFAULT 0,
//     start_date           TIMESTAMPTZ,
//     ctr                  DOUBLE PRECISION NOT NULL DEFAULT 0,
//     conversion_rate      DOUBLE PRECISION NOT NULL DEFAULT 0,
//     authority_impact     DOUBLE PRECISION NOT NULL DEFAULT 0,
//     cost_per_acquisition DOUBLE PRECISION NOT NULL DEFAULT 0,
//     platform_context     JSONB,
//     created_at           TIMESTAMPTZ DEFAULT NOW(),
//     updated_at           TIMESTAMPTZ
// );

type Campaign struct {
	ID              string     `gorm:"primaryKey;column:campaign_id" json:"id"`
	AccountID       string     `gorm:"column:account_id;not null;index" json:"account_id"`
	Title           string     `gorm:"column:title;not null" json:"title"`
	Status          string     `gorm:"column:status;not null;default:queued" json:"status"`
	BudgetAllocated float64    `gorm:"column:budget_allocated;not null;default:0" json:"budget_allocated"`
	StartDate       *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`

	CTR                float64 `gorm:"column:ctr;not null;default:0" json:"ctr"`
	ConversionRate     float64 `gorm:"column:conversion_rate;not null;default:0" json:"conversion_rate"`
	AuthorityImpact    float64 `gorm:"column:authority_impact;not null;default:0" json:"authority_impact"`
	CostPerAcquisition float64 `gorm:"column:cost_per_acquisition;not null;default:0" json:"cost_per_acquisition"`

	// raw payload from the ad platform sync, kept for debugging
	PlatformContext datatypes.JSONMap `gorm:"column:platform_context;type:jsonb" json:"platform_context,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// CampaignMetrics is the fixed shape the scoring engine consumes. Fields
// are named per metric so a renamed column breaks at compile time instead
// of silently scoring zero.
type CampaignMetrics struct {
	CTR                float64 `json:"ctr"`
	ConversionRate     float64 `json:"conversion_rate"`
	AuthorityImpact    float64 `json:"authority_impact"`
	CostPerAcquisition float64 `json:"cost_per_acquisition"`
}

func (c Campaign) Metrics() CampaignMetrics {
	return CampaignMetrics{
		CTR:                c.CTR,
		ConversionRate:     c.ConversionRate,
		AuthorityImpact:    c.AuthorityImpact,
		CostPerAcquisition: c.CostPerAcquisition,
	}
}

// AgeDays is whole days since start_date, clamped at zero. A campaign
// without a start date has not launched and counts as age 0.
func (c Campaign) AgeDays(now time.Time) int {
	if c.StartDate == nil {
		return 0
	}

	days := int(now.Sub(*c.StartDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
