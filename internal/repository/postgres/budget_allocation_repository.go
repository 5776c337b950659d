package postgres

import (
	"context"
	"fmt"

	"brandBOS/business/rotation"
	"brandBOS/domain"

	"gorm.io/gorm"
)

type BudgetAllocationRepository struct {
	DB *gorm.DB
}

var _ rotation.AllocationRepository = (*BudgetAllocationRepository)(nil)

func NewBudgetAllocationRepository(db *gorm.DB) *BudgetAllocationRepository {
	return &BudgetAllocationRepository{DB: db}
}

func (r *BudgetAllocationRepository) SaveAll(ctx context.Context, allocations []domain.BudgetAllocation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(allocations) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&allocations).Error; err != nil {
		return fmt.Errorf("failed to save allocations: %w", err)
	}

	return nil
}

func (r *BudgetAllocationRepository) FindByRun(ctx context.Context, runID string) ([]domain.BudgetAllocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var allocations []domain.BudgetAllocation
	err := r.DB.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("amount DESC").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find allocations: %w", err)
	}

	return allocations, nil
}
