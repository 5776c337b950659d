package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RecommendationStatusPending  = "pending_approval"
	RecommendationStatusApproved = "approved"
	RecommendationStatusExecuted = "executed"

	// sentinel promotion token: pull whatever is at the head of the queue
	PromoteNextInQueue = "next_in_queue"
)

type RotationRecommendation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	AccountID string `gorm:"column:account_id;not null;index" json:"account_id"`

	// campaign ids considered, best to worst by adjusted score
	CurrentCampaignIDs datatypes.JSONSlice[string] `gorm:"column:current_campaign_ids;type:jsonb" json:"current_campaign_ids"`

	CampaignToPause   *string `gorm:"column:campaign_to_pause" json:"campaign_to_pause,omitempty"`
	CampaignToPromote *string `gorm:"column:campaign_to_promote" json:"campaign_to_promote,omitempty"`
	Reasoning         string  `gorm:"column:reasoning;type:text" json:"reasoning"`
	RequiresAction    bool    `gorm:"column:requires_action;not null;default:false" json:"requires_action"`

	Status     string     `gorm:"column:status;not null;default:pending_approval" json:"status"`
	ApprovedBy string     `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ExecutedAt *time.Time `gorm:"column:executed_at" json:"executed_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RotationRecommendation) TableName() string {
	return "rotation_recommendations"
}

func (r RotationRecommendation) ShouldExecute() bool {
	return r.RequiresAction && r.CampaignToPause != nil
}
