package domain

import "time"

type BudgetAllocation struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	AccountID  string  `gorm:"column:account_id;not null;index" json:"account_id"`
	CampaignID string  `gorm:"column:campaign_id;not null" json:"campaign_id"`
	Amount     float64 `gorm:"column:amount;not null" json:"amount"`

	// analysis runs that belong together share a run id
	RunID string `gorm:"column:run_id;not null;index" json:"run_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BudgetAllocation) TableName() string {
	return "budget_allocations"
}
