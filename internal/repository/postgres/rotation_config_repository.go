package postgres

import (
	"context"

	"brandBOS/business/rotation"
	"brandBOS/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RotationConfigRepository struct {
	DB *gorm.DB
}

var _ rotation.ConfigRepository = (*RotationConfigRepository)(nil)

func NewRotationConfigRepository(db *gorm.DB) *RotationConfigRepository {
	return &RotationConfigRepository{DB: db}
}

func (r *RotationConfigRepository) GetConfig(ctx context.Context, accountID string) (domain.RotationConfig, bool, error) {
	var cfg domain.RotationConfig

	err := r.DB.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		return domain.RotationConfig{}, false, nil
	}
	if err != nil {
		return domain.RotationConfig{}, false, err
	}

	return cfg, true, nil
}

func (r *RotationConfigRepository) UpsertConfig(ctx context.Context, cfg domain.RotationConfig) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"w_ctr",
				"w_conversion_rate",
				"w_authority_impact",
				"w_cpa",
				"rotation_threshold",
				"underperformance_score",
				"min_campaign_duration_days",
				"ramp_up_days",
				"min_budget_share",
				"max_budget_share",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
