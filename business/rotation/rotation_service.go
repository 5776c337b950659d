package rotation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brandBOS/domain"
	"brandBOS/pkg/logger"
	"brandBOS/pkg/metrics"

	"github.com/google/uuid"
)

// ---- Repository interfaces ----

type CampaignRepository interface {
	FindByID(ctx context.Context, id string) (domain.Campaign, error)
	FindByAccountAndStatus(ctx context.Context, accountID, status string) ([]domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
}

type RecommendationRepository interface {
	Save(ctx context.Context, rec *domain.RotationRecommendation) error
	FindByID(ctx context.Context, id uint) (domain.RotationRecommendation, error)
	FindByAccount(ctx context.Context, accountID string, limit int) ([]domain.RotationRecommendation, error)
	Update(ctx context.Context, rec *domain.RotationRecommendation) error
}

type AllocationRepository interface {
	SaveAll(ctx context.Context, allocations []domain.BudgetAllocation) error
}

// last-analysis snapshot per account, best effort
type AnalysisCache interface {
	StoreLatest(ctx context.Context, accountID string, rec domain.RotationRecommendation) error
	GetLatest(ctx context.Context, accountID string) (domain.RotationRecommendation, bool, error)
}

type Notifier interface {
	NotifyRotation(ctx context.Context, rec domain.RotationRecommendation) error
}

// AdsPlatformResult reports what the ad platform did with a request.
// Applied=false with a Detail is a platform-side rejection, not an error;
// the error return is reserved for transport failures.
type AdsPlatformResult struct {
	CampaignID string `json:"campaign_id"`
	Applied    bool   `json:"applied"`
	Detail     string `json:"detail,omitempty"`
}

type AdsPlatform interface {
	PauseCampaign(ctx context.Context, campaignID string) (AdsPlatformResult, error)
	ApplyBudget(ctx context.Context, campaignID string, amount float64) (AdsPlatformResult, error)
}

// ---- Usecase / Service ----

type RotationService struct {
	campaignRepo CampaignRepository
	recRepo      RecommendationRepository
	allocRepo    AllocationRepository
	cfgRepo      ConfigRepository
	cache        AnalysisCache
	notifier     Notifier
	adsPlatform  AdsPlatform
	defaultCfg   Config
}

func NewRotationService(
	campaignRepo CampaignRepository,
	recRepo RecommendationRepository,
	allocRepo AllocationRepository,
	cfgRepo ConfigRepository,
	cache AnalysisCache,
	notifier Notifier,
	adsPlatform AdsPlatform,
) *RotationService {
	return &RotationService{
		campaignRepo: campaignRepo,
		recRepo:      recRepo,
		allocRepo:    allocRepo,
		cfgRepo:      cfgRepo,
		cache:        cache,
		notifier:     notifier,
		adsPlatform:  adsPlatform,
		defaultCfg:   DefaultConfig(),
	}
}

// AnalyzeRotation scores the account's active campaigns from their
// current metrics, runs the rotation decision and persists the resulting
// recommendation for the approval workflow. Scores are recomputed from
// scratch on every call.
func (s *RotationService) AnalyzeRotation(ctx context.Context, accountID string) (domain.RotationRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.RotationRecommendation{}, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.RotationAnalysisDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.RotationAnalysisTotal.Inc()

	cfg := s.loadConfig(ctx, accountID)

	active, err := s.campaignRepo.FindByAccountAndStatus(ctx, accountID, domain.CampaignStatusActive)
	if err != nil {
		logger.Error("Failed to load active campaigns", err)
		return domain.RotationRecommendation{}, fmt.Errorf("failed to load active campaigns: %w", err)
	}

	queued, err := s.campaignRepo.FindByAccountAndStatus(ctx, accountID, domain.CampaignStatusQueued)
	if err != nil {
		logger.Error("Failed to load queued campaigns", err)
		return domain.RotationRecommendation{}, fmt.Errorf("failed to load queued campaigns: %w", err)
	}

	scored := ScoreCampaigns(cfg, active, time.Now())
	rec := Decide(cfg, scored, queued)
	rec.AccountID = accountID

	if err := s.recRepo.Save(ctx, &rec); err != nil {
		logger.Error("Failed to save rotation recommendation", err)
		return domain.RotationRecommendation{}, fmt.Errorf("failed to save recommendation: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.StoreLatest(ctx, accountID, rec); err != nil {
			logger.Warn("Failed to cache rotation analysis", err)
		}
	}

	if rec.RequiresAction {
		metrics.RotationActionsTotal.Inc()
		if s.notifier != nil {
			if err := s.notifier.NotifyRotation(ctx, rec); err != nil {
				logger.Warn("Failed to send rotation notification", err)
			}
		}
	}

	logger.Info("Rotation analysis complete",
		"account_id", accountID,
		"campaigns", len(active),
		"requires_action", rec.RequiresAction,
	)

	return rec, nil
}

// LatestAnalysis returns the cached last analysis for an account, falling
// back to the most recent persisted recommendation.
func (s *RotationService) LatestAnalysis(ctx context.Context, accountID string) (domain.RotationRecommendation, error) {
	if s.cache != nil {
		rec, ok, err := s.cache.GetLatest(ctx, accountID)
		if err == nil && ok {
			return rec, nil
		}
	}

	recs, err := s.recRepo.FindByAccount(ctx, accountID, 1)
	if err != nil {
		return domain.RotationRecommendation{}, err
	}
	if len(recs) == 0 {
		return domain.RotationRecommendation{}, errors.New("recommendation not found")
	}

	return recs[0], nil
}

// ApproveRecommendation is the approval-workflow boundary: it executes a
// pending pause/promote recommendation against the ad platform and stamps
// the record. The pure decision core never mutates a recommendation after
// creating it; all side effects live here.
func (s *RotationService) ApproveRecommendation(ctx context.Context, id uint, approvedBy string) (domain.RotationRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.RotationRecommendation{}, fmt.Errorf("context error: %w", err)
	}

	rec, err := s.recRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Recommendation not found", err)
		return domain.RotationRecommendation{}, errors.New("recommendation not found")
	}

	if rec.Status != domain.RecommendationStatusPending {
		return domain.RotationRecommendation{}, errors.New("recommendation already processed")
	}

	if !rec.ShouldExecute() {
		return domain.RotationRecommendation{}, errors.New("recommendation requires no action")
	}

	pauseID := *rec.CampaignToPause

	result, err := s.adsPlatform.PauseCampaign(ctx, pauseID)
	if err != nil {
		logger.Error("Ad platform pause request failed", err)
		return domain.RotationRecommendation{}, fmt.Errorf("failed to pause campaign: %w", err)
	}
	if !result.Applied {
		logger.Error("Ad platform rejected pause", "campaign_id", pauseID, "detail", result.Detail)
		return domain.RotationRecommendation{}, fmt.Errorf("ad platform rejected pause: %s", result.Detail)
	}

	paused, err := s.campaignRepo.FindByID(ctx, pauseID)
	if err != nil {
		return domain.RotationRecommendation{}, fmt.Errorf("failed to load paused campaign: %w", err)
	}
	paused.Status = domain.CampaignStatusPaused
	if err := s.campaignRepo.Update(ctx, &paused); err != nil {
		return domain.RotationRecommendation{}, fmt.Errorf("failed to update paused campaign: %w", err)
	}

	if err := s.promoteNextInQueue(ctx, rec.AccountID, paused.BudgetAllocated); err != nil {
		logger.Warn("Failed to promote queued campaign", err)
	}

	now := time.Now()
	rec.Status = domain.RecommendationStatusExecuted
	rec.ApprovedBy = approvedBy
	rec.ExecutedAt = &now

	if err := s.recRepo.Update(ctx, &rec); err != nil {
		logger.Error("Failed to update recommendation", err)
		return domain.RotationRecommendation{}, fmt.Errorf("failed to update recommendation: %w", err)
	}

	logger.Info("Rotation executed",
		"recommendation_id", rec.ID,
		"paused_campaign", pauseID,
		"approved_by", approvedBy,
	)

	return rec, nil
}

// promoteNextInQueue activates the oldest queued campaign, handing it the
// paused campaign's budget slot.
func (s *RotationService) promoteNextInQueue(ctx context.Context, accountID string, budget float64) error {
	queued, err := s.campaignRepo.FindByAccountAndStatus(ctx, accountID, domain.CampaignStatusQueued)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}
	if len(queued) == 0 {
		return errors.New("queue is empty")
	}

	next := queued[0]
	now := time.Now()
	next.Status = domain.CampaignStatusActive
	next.BudgetAllocated = budget
	if next.StartDate == nil {
		next.StartDate = &now
	}

	if err := s.campaignRepo.Update(ctx, &next); err != nil {
		return fmt.Errorf("failed to activate queued campaign: %w", err)
	}

	logger.Info("Promoted queued campaign", "campaign_id", next.ID, "account_id", accountID)
	return nil
}

// ReallocateBudget redistributes totalBudget across the account's active
// campaigns proportional to their raw composite scores, persists the
// allocation run and pushes the new amounts to the ad platform.
func (s *RotationService) ReallocateBudget(ctx context.Context, accountID string, totalBudget float64) ([]domain.BudgetAllocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if totalBudget <= 0 {
		return nil, errors.New("total budget must be positive")
	}

	metrics.BudgetReallocationsTotal.Inc()

	cfg := s.loadConfig(ctx, accountID)

	active, err := s.campaignRepo.FindByAccountAndStatus(ctx, accountID, domain.CampaignStatusActive)
	if err != nil {
		logger.Error("Failed to load active campaigns", err)
		return nil, fmt.Errorf("failed to load active campaigns: %w", err)
	}

	scored := ScoreCampaigns(cfg, active, time.Now())
	amounts := Reallocate(cfg, scored, totalBudget)

	runID := uuid.NewString()
	allocations := make([]domain.BudgetAllocation, 0, len(scored))

	// walk scored order so the persisted rows are deterministic
	for _, sc := range scored {
		amount, ok := amounts[sc.Campaign.ID]
		if !ok {
			continue
		}

		allocations = append(allocations, domain.BudgetAllocation{
			AccountID:  accountID,
			CampaignID: sc.Campaign.ID,
			Amount:     amount,
			RunID:      runID,
		})
	}

	if len(allocations) == 0 {
		return allocations, nil
	}

	if err := s.allocRepo.SaveAll(ctx, allocations); err != nil {
		logger.Error("Failed to save budget allocations", err)
		return nil, fmt.Errorf("failed to save allocations: %w", err)
	}

	for i := range allocations {
		alloc := allocations[i]

		if s.adsPlatform != nil {
			result, err := s.adsPlatform.ApplyBudget(ctx, alloc.CampaignID, alloc.Amount)
			if err != nil {
				logger.Warn("Ad platform budget request failed", err)
				continue
			}
			if !result.Applied {
				logger.Warn("Ad platform rejected budget", "campaign_id", alloc.CampaignID, "detail", result.Detail)
				continue
			}
		}

		campaign, err := s.campaignRepo.FindByID(ctx, alloc.CampaignID)
		if err != nil {
			logger.Warn("Failed to load campaign for budget update", err)
			continue
		}
		campaign.BudgetAllocated = alloc.Amount
		if err := s.campaignRepo.Update(ctx, &campaign); err != nil {
			logger.Warn("Failed to persist campaign budget", err)
		}
	}

	logger.Info("Budget reallocation complete",
		"account_id", accountID,
		"run_id", runID,
		"campaigns", len(allocations),
	)

	return allocations, nil
}
