package router

import (
	"brandBOS/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
}

func SetupCampaignRoutes(api *echo.Group, handler *rest.CampaignHandler, authRequired echo.MiddlewareFunc) {
	campaigns := api.Group("/campaigns", authRequired)

	campaigns.GET("", handler.GetCampaigns)
	campaigns.GET("/:id", handler.GetCampaignByID)
	campaigns.POST("", handler.CreateCampaign)
	campaigns.PUT("/:id", handler.UpdateCampaign)
	campaigns.PUT("/:id/metrics", handler.UpdateMetrics)
	campaigns.DELETE("/:id", handler.DeleteCampaign)
}

func SetupRotationRoutes(api *echo.Group, handler *rest.RotationHandler, authRequired echo.MiddlewareFunc) {
	rotationGroup := api.Group("/rotation", authRequired)

	rotationGroup.POST("/analyze", handler.Analyze)
	rotationGroup.GET("/latest", handler.Latest)
	rotationGroup.GET("/recommendations", handler.ListRecommendations)
	rotationGroup.GET("/recommendations/:id", handler.GetRecommendation)
	rotationGroup.POST("/recommendations/:id/approve", handler.Approve)
	rotationGroup.POST("/reallocate", handler.Reallocate)
}

func SetupRotationAdminRoutes(api *echo.Group, handler *rest.RotationAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/rotation", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}
