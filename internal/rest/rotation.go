package rest

import (
	"context"
	"net/http"
	"strconv"

	"brandBOS/business/rotation"
	"brandBOS/domain"
	"brandBOS/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RotationHandler struct {
		validate        *validator.Validate
		rotationService RotationService
		recRepo         rotation.RecommendationRepository
	}

	RotationService interface {
		AnalyzeRotation(ctx context.Context, accountID string) (domain.RotationRecommendation, error)
		LatestAnalysis(ctx context.Context, accountID string) (domain.RotationRecommendation, error)
		ApproveRecommendation(ctx context.Context, id uint, approvedBy string) (domain.RotationRecommendation, error)
		ReallocateBudget(ctx context.Context, accountID string, totalBudget float64) ([]domain.BudgetAllocation, error)
	}

	AnalyzeInput struct {
		AccountID string `json:"account_id" validate:"required"`
	}

	ReallocateInput struct {
		AccountID   string  `json:"account_id" validate:"required"`
		TotalBudget float64 `json:"total_budget" validate:"required,gt=0"`
	}
)

func NewRotationHandler(rotationService RotationService, recRepo rotation.RecommendationRepository) *RotationHandler {
	return &RotationHandler{
		validate:        validator.New(),
		rotationService: rotationService,
		recRepo:         recRepo,
	}
}

func (h *RotationHandler) Analyze(c echo.Context) error {
	var request AnalyzeInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate rotation analyze request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()

	rec, err := h.rotationService.AnalyzeRotation(ctx, request.AccountID)
	if err != nil {
		logger.Error("Rotation analysis failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

func (h *RotationHandler) Latest(c echo.Context) error {
	accountID := c.QueryParam("account_id")
	if accountID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "account_id is required"})
	}

	ctx := c.Request().Context()

	rec, err := h.rotationService.LatestAnalysis(ctx, accountID)
	if err != nil {
		logger.Error("Failed to get latest analysis", err)
		if err.Error() == "recommendation not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

func (h *RotationHandler) ListRecommendations(c echo.Context) error {
	accountID := c.QueryParam("account_id")
	if accountID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "account_id is required"})
	}

	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = parsed
	}

	ctx := c.Request().Context()

	recs, err := h.recRepo.FindByAccount(ctx, accountID, limit)
	if err != nil {
		logger.Error("Failed to list recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

func (h *RotationHandler) GetRecommendation(c echo.Context) error {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid recommendation id"})
	}

	ctx := c.Request().Context()

	rec, err := h.recRepo.FindByID(ctx, uint(id))
	if err != nil {
		logger.Error("Failed to get recommendation", err)
		if err.Error() == "recommendation not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

func (h *RotationHandler) Approve(c echo.Context) error {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid recommendation id"})
	}

	// auth middleware stores the authenticated user id
	approvedBy := ""
	if userID, ok := c.Get("user_id").(uint); ok {
		approvedBy = strconv.FormatUint(uint64(userID), 10)
	}

	ctx := c.Request().Context()

	rec, err := h.rotationService.ApproveRecommendation(ctx, uint(id), approvedBy)
	if err != nil {
		logger.Error("Failed to approve recommendation", err)
		switch err.Error() {
		case "recommendation not found":
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case "recommendation already processed", "recommendation requires no action":
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

func (h *RotationHandler) Reallocate(c echo.Context) error {
	var request ReallocateInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate reallocate request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()

	allocations, err := h.rotationService.ReallocateBudget(ctx, request.AccountID, request.TotalBudget)
	if err != nil {
		logger.Error("Budget reallocation failed", err)
		if err.Error() == "total budget must be positive" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(allocations))
}
