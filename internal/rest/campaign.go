package rest

import (
	"context"
	"net/http"
	"time"

	"brandBOS/domain"
	"brandBOS/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error)
	GetCampaigns(ctx context.Context, accountID, status string) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateMetrics(ctx context.Context, id string, m domain.CampaignMetrics) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
}

type CampaignHandler struct {
	campaignService CampaignService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCampaignHandler(campaignService CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreateCampaignRequest struct {
	AccountID       string     `json:"account_id" validate:"required"`
	Title           string     `json:"title" validate:"required"`
	Status          string     `json:"status" validate:"omitempty,oneof=active queued paused completed"`
	BudgetAllocated float64    `json:"budget_allocated" validate:"gte=0"`
	StartDate       *time.Time `json:"start_date,omitempty"`
}

type UpdateCampaignRequest struct {
	Title           string     `json:"title" validate:"required"`
	Status          string     `json:"status" validate:"omitempty,oneof=active queued paused completed"`
	BudgetAllocated float64    `json:"budget_allocated" validate:"gte=0"`
	StartDate       *time.Time `json:"start_date,omitempty"`
}

type UpdateMetricsRequest struct {
	CTR                float64 `json:"ctr" validate:"gte=0"`
	ConversionRate     float64 `json:"conversion_rate" validate:"gte=0"`
	AuthorityImpact    float64 `json:"authority_impact" validate:"gte=0"`
	CostPerAcquisition float64 `json:"cost_per_acquisition" validate:"gte=0"`
}

func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	var req CreateCampaignRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate campaign request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaign := &domain.Campaign{
		AccountID:       req.AccountID,
		Title:           req.Title,
		Status:          req.Status,
		BudgetAllocated: req.BudgetAllocated,
		StartDate:       req.StartDate,
	}

	newCampaign, err := h.campaignService.CreateCampaign(ctx, campaign)
	if err != nil {
		logger.Error("Failed to create campaign", err)
		if err.Error() == "campaign title is required" || err.Error() == "account id is required" ||
			err.Error() == "invalid campaign status" || err.Error() == "budget must be non-negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "campaign successfully created",
		"campaign": newCampaign,
	})
}

func (h *CampaignHandler) GetCampaigns(c echo.Context) error {
	accountID := c.QueryParam("account_id")
	status := c.QueryParam("status")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaigns, err := h.campaignService.GetCampaigns(ctx, accountID, status)
	if err != nil {
		logger.Error("Failed to find campaigns", err)
		if err.Error() == "account id is required" || err.Error() == "invalid campaign status" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get campaigns",
		"campaigns": campaigns,
	})
}

func (h *CampaignHandler) GetCampaignByID(c echo.Context) error {
	campaignID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaign, err := h.campaignService.GetCampaignByID(ctx, campaignID)
	if err != nil {
		logger.Error("Failed to find campaign", err)
		if err.Error() == "campaign not found" || err.Error() == "invalid campaign id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get campaign",
		"campaign": campaign,
	})
}

func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	campaignID := c.Param("id")

	var req UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate campaign request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaign := &domain.Campaign{
		ID:              campaignID,
		Title:           req.Title,
		Status:          req.Status,
		BudgetAllocated: req.BudgetAllocated,
		StartDate:       req.StartDate,
	}

	updatedCampaign, err := h.campaignService.UpdateCampaign(ctx, campaign)
	if err != nil {
		logger.Error("Failed to update campaign", err)
		if err.Error() == "campaign not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "campaign ID is required" || err.Error() == "campaign title is required" ||
			err.Error() == "invalid campaign status" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully update campaign",
		"campaign": updatedCampaign,
	})
}

func (h *CampaignHandler) UpdateMetrics(c echo.Context) error {
	campaignID := c.Param("id")

	var req UpdateMetricsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate metrics request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	metrics := domain.CampaignMetrics{
		CTR:                req.CTR,
		ConversionRate:     req.ConversionRate,
		AuthorityImpact:    req.AuthorityImpact,
		CostPerAcquisition: req.CostPerAcquisition,
	}

	campaign, err := h.campaignService.UpdateMetrics(ctx, campaignID, metrics)
	if err != nil {
		logger.Error("Failed to update campaign metrics", err)
		if err.Error() == "campaign not found" || err.Error() == "invalid campaign id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "metric values must be non-negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully update campaign metrics",
		"campaign": campaign,
	})
}

func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	campaignID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.campaignService.DeleteCampaign(ctx, campaignID)
	if err != nil {
		logger.Error("Failed to delete campaign", err)
		if err.Error() == "campaign not found" || err.Error() == "invalid campaign id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "campaign successfully deleted",
		"campaign_id": campaignID,
	})
}
