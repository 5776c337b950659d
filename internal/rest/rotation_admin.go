package rest

import (
	"net/http"

	"brandBOS/business/rotation"
	"brandBOS/domain"

	"github.com/labstack/echo/v4"
)

type RotationAdminHandler struct {
	cfgRepo rotation.ConfigRepository
}

func NewRotationAdminHandler(cfgRepo rotation.ConfigRepository) *RotationAdminHandler {
	return &RotationAdminHandler{
		cfgRepo: cfgRepo,
	}
}

// GET /api/v1/admin/rotation/config?account_id=acct_123
func (h *RotationAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()
	accountID := c.QueryParam("account_id")

	if accountID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "account_id is required",
		})
	}

	cfg, ok, err := h.cfgRepo.GetConfig(ctx, accountID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/rotation/config
// body: RotationConfig JSON
func (h *RotationAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.RotationConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.AccountID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "account_id is required",
		})
	}

	weightSum := body.WCTR + body.WConversionRate + body.WAuthorityImpact + body.WCPA
	if weightSum != 0 && (weightSum < 0.999 || weightSum > 1.001) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "metric weights must total 1.0",
		})
	}

	if err := h.cfgRepo.UpsertConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
