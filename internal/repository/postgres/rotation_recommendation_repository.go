package postgres

import (
	"context"
	"errors"
	"fmt"

	"brandBOS/business/rotation"
	"brandBOS/domain"

	"gorm.io/gorm"
)

type RotationRecommendationRepository struct {
	DB *gorm.DB
}

var _ rotation.RecommendationRepository = (*RotationRecommendationRepository)(nil)

func NewRotationRecommendationRepository(db *gorm.DB) *RotationRecommendationRepository {
	return &RotationRecommendationRepository{DB: db}
}

func (r *RotationRecommendationRepository) Save(ctx context.Context, rec *domain.RotationRecommendation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to save recommendation: %w", err)
	}

	return nil
}

func (r *RotationRecommendationRepository) FindByID(ctx context.Context, id uint) (domain.RotationRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.RotationRecommendation{}, fmt.Errorf("context error: %w", err)
	}

	var rec domain.RotationRecommendation

	err := r.DB.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RotationRecommendation{}, errors.New("recommendation not found")
		}
		return domain.RotationRecommendation{}, fmt.Errorf("failed to find recommendation: %w", err)
	}

	return rec, nil
}

func (r *RotationRecommendationRepository) FindByAccount(ctx context.Context, accountID string, limit int) ([]domain.RotationRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []domain.RotationRecommendation
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to find recommendations: %w", err)
	}

	return recs, nil
}

func (r *RotationRecommendationRepository) Update(ctx context.Context, rec *domain.RotationRecommendation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.RotationRecommendation{}).
		Where("id = ?", rec.ID).
		Updates(map[string]interface{}{
			"status":      rec.Status,
			"approved_by": rec.ApprovedBy,
			"executed_at": rec.ExecutedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update recommendation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("recommendation not found")
	}

	return nil
}
