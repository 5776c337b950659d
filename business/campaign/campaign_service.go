package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brandBOS/domain"
	"brandBOS/pkg/logger"

	"github.com/google/uuid"
)

// CampaignRepository contract interface
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	FindByID(ctx context.Context, id string) (domain.Campaign, error)
	FindByAccount(ctx context.Context, accountID string) ([]domain.Campaign, error)
	FindByAccountAndStatus(ctx context.Context, accountID, status string) ([]domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	Delete(ctx context.Context, id string) error
}

type campaignService struct {
	campaignRepo CampaignRepository
}

func NewCampaignService(campaignRepo CampaignRepository) *campaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
	}
}

var validStatuses = map[string]bool{
	domain.CampaignStatusActive:    true,
	domain.CampaignStatusQueued:    true,
	domain.CampaignStatusPaused:    true,
	domain.CampaignStatusCompleted: true,
}

func (s *campaignService) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating campaign")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if campaign.Title == "" {
		logger.Error("Invalid campaign data: title is required")
		return nil, errors.New("campaign title is required")
	}
	if campaign.AccountID == "" {
		logger.Error("Invalid campaign data: account id is required")
		return nil, errors.New("account id is required")
	}
	if campaign.BudgetAllocated < 0 {
		logger.Error("Invalid campaign data: negative budget")
		return nil, errors.New("budget must be non-negative")
	}

	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusQueued
	}
	if !validStatuses[campaign.Status] {
		logger.Error("Invalid campaign status", "status", campaign.Status)
		return nil, errors.New("invalid campaign status")
	}

	campaign.ID = uuid.NewString()

	// an active campaign starts its ramp-up clock immediately
	if campaign.Status == domain.CampaignStatusActive && campaign.StartDate == nil {
		now := time.Now()
		campaign.StartDate = &now
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		logger.Error("failed to create campaign", err)
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	logger.Info("campaign created successfully", "campaign_id", campaign.ID)

	return campaign, nil
}

func (s *campaignService) GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting campaign")
		return domain.Campaign{}, fmt.Errorf("context error: %w", err)
	}

	if id == "" {
		logger.Error("Invalid campaign id")
		return domain.Campaign{}, errors.New("invalid campaign id")
	}

	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find campaign", err)
		return domain.Campaign{}, err
	}

	return campaign, nil
}

func (s *campaignService) GetCampaigns(ctx context.Context, accountID, status string) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing campaigns")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if accountID == "" {
		logger.Error("Invalid account id")
		return nil, errors.New("account id is required")
	}

	if status == "" {
		campaigns, err := s.campaignRepo.FindByAccount(ctx, accountID)
		if err != nil {
			logger.Error("Failed to find campaigns", err)
			return nil, err
		}
		return campaigns, nil
	}

	if !validStatuses[status] {
		logger.Error("Invalid campaign status filter", "status", status)
		return nil, errors.New("invalid campaign status")
	}

	campaigns, err := s.campaignRepo.FindByAccountAndStatus(ctx, accountID, status)
	if err != nil {
		logger.Error("Failed to find campaigns", err)
		return nil, err
	}

	return campaigns, nil
}

func (s *campaignService) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating campaign")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if campaign.ID == "" {
		logger.Error("Invalid campaign data: ID is required")
		return nil, errors.New("campaign ID is required")
	}
	if campaign.Title == "" {
		logger.Error("Invalid campaign data: title is required")
		return nil, errors.New("campaign title is required")
	}
	if campaign.Status != "" && !validStatuses[campaign.Status] {
		logger.Error("Invalid campaign status", "status", campaign.Status)
		return nil, errors.New("invalid campaign status")
	}

	existing, err := s.campaignRepo.FindByID(ctx, campaign.ID)
	if err != nil {
		logger.Error("campaign not found", err)
		return nil, errors.New("campaign not found")
	}

	// queued -> active transition starts the ramp-up clock
	if existing.Status != domain.CampaignStatusActive &&
		campaign.Status == domain.CampaignStatusActive &&
		campaign.StartDate == nil && existing.StartDate == nil {
		now := time.Now()
		campaign.StartDate = &now
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		logger.Error("failed to update campaign", err)
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	updated, err := s.campaignRepo.FindByID(ctx, campaign.ID)
	if err != nil {
		logger.Error("failed to fetch updated campaign", err)
		return nil, fmt.Errorf("failed to fetch updated campaign: %w", err)
	}

	logger.Info("campaign updated successfully", "campaign_id", campaign.ID)

	return &updated, nil
}

// UpdateMetrics overwrites the campaign's performance snapshot. The
// metric sync job calls this after pulling fresh numbers from the ad
// platform; negative values are rejected here so the scoring engine only
// ever sees well-formed input.
func (s *campaignService) UpdateMetrics(ctx context.Context, id string, m domain.CampaignMetrics) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating campaign metrics")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if id == "" {
		logger.Error("Invalid campaign id")
		return nil, errors.New("invalid campaign id")
	}

	if m.CTR < 0 || m.ConversionRate < 0 || m.AuthorityImpact < 0 || m.CostPerAcquisition < 0 {
		logger.Error("Invalid campaign metrics: negative value")
		return nil, errors.New("metric values must be non-negative")
	}

	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("campaign not found", err)
		return nil, errors.New("campaign not found")
	}

	campaign.CTR = m.CTR
	campaign.ConversionRate = m.ConversionRate
	campaign.AuthorityImpact = m.AuthorityImpact
	campaign.CostPerAcquisition = m.CostPerAcquisition

	if err := s.campaignRepo.Update(ctx, &campaign); err != nil {
		logger.Error("failed to update campaign metrics", err)
		return nil, fmt.Errorf("failed to update campaign metrics: %w", err)
	}

	logger.Info("campaign metrics updated", "campaign_id", id)

	return &campaign, nil
}

func (s *campaignService) DeleteCampaign(ctx context.Context, id string) error {
	if id == "" {
		logger.Error("Invalid campaign id when deleting campaign")
		return errors.New("invalid campaign id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting campaign")
		return fmt.Errorf("context error: %w", err)
	}

	_, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("campaign not found", err)
		return errors.New("campaign not found")
	}

	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	logger.Info("campaign deleted successfully", "campaign_id", id)

	return nil
}
