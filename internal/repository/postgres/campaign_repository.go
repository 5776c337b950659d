package postgres

import (
	"context"
	"errors"
	"fmt"

	"brandBOS/business/campaign"
	"brandBOS/business/rotation"
	"brandBOS/domain"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	DB *gorm.DB
}

var _ campaign.CampaignRepository = (*CampaignRepository)(nil)
var _ rotation.CampaignRepository = (*CampaignRepository)(nil)

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{
		DB: db,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, fmt.Errorf("context error: %w", err)
	}

	var c domain.Campaign

	err := r.DB.WithContext(ctx).Where("campaign_id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, errors.New("campaign not found")
		}
		return domain.Campaign{}, fmt.Errorf("failed to find campaign: %w", err)
	}

	return c, nil
}

func (r *CampaignRepository) FindByAccount(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var campaigns []domain.Campaign
	err := r.DB.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find campaigns: %w", err)
	}

	return campaigns, nil
}

// FindByAccountAndStatus returns campaigns oldest first, so for queued
// campaigns the head of the slice is the next in queue.
func (r *CampaignRepository) FindByAccountAndStatus(ctx context.Context, accountID, status string) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var campaigns []domain.Campaign
	err := r.DB.WithContext(ctx).
		Where("account_id = ? AND status = ?", accountID, status).
		Order("created_at ASC").
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.Campaign{}).
		Where("campaign_id = ?", c.ID).
		Updates(map[string]interface{}{
			"title":                c.Title,
			"status":               c.Status,
			"budget_allocated":     c.BudgetAllocated,
			"start_date":           c.StartDate,
			"ctr":                  c.CTR,
			"conversion_rate":      c.ConversionRate,
			"authority_impact":     c.AuthorityImpact,
			"cost_per_acquisition": c.CostPerAcquisition,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update campaign: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("campaign not found")
	}

	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("campaign_id = ?", id).Delete(&domain.Campaign{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete campaign: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("campaign not found")
	}

	return nil
}
