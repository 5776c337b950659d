package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandBOS/app/echo-server/router"
	campaignService "brandBOS/business/campaign"
	"brandBOS/business/rotation"
	userService "brandBOS/business/user"
	"brandBOS/internal/middleware"
	"brandBOS/internal/repository/adsby"
	"brandBOS/internal/repository/notification"
	psqlRepo "brandBOS/internal/repository/postgres"
	redisRepo "brandBOS/internal/repository/redis"
	"brandBOS/internal/rest"
	"brandBOS/pkg/config"
	"brandBOS/pkg/database"
	redisdb "brandBOS/pkg/database/redis"
	"brandBOS/pkg/logger"
	"brandBOS/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Brand BOS Rotation API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		_ = redisdb.CloseRedisClient(redisClient)
	}()

	metrics.Init()

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	slackNotifier := notification.NewSlackRepository(
		notification.SlackConfig{
			WebhookURL: cfg.Slack.WebhookUrl,
			Channel:    cfg.Slack.Channel,
		},
	)

	adsbyRepo := adsby.NewAdsbyRepository(
		adsby.AdsbyConfig{
			BaseURL:   cfg.Adsby.BaseUrl,
			ApiKey:    cfg.Adsby.ApiKey,
			AccountID: cfg.Adsby.AccountId,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	campaignRepo := psqlRepo.NewCampaignRepository(db)
	recRepo := psqlRepo.NewRotationRecommendationRepository(db)
	allocRepo := psqlRepo.NewBudgetAllocationRepository(db)
	rotationCfgRepo := psqlRepo.NewRotationConfigRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)
	analysisCache := redisRepo.NewAnalysisCache(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate, mailjetEmail, tokenRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	campaignSvc := campaignService.NewCampaignService(campaignRepo)
	rotationSvc := rotation.NewRotationService(campaignRepo, recRepo, allocRepo, rotationCfgRepo, analysisCache, slackNotifier, adsbyRepo)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	campaignHandler := rest.NewCampaignHandler(campaignSvc)
	rotationHandler := rest.NewRotationHandler(rotationSvc, recRepo)
	rotationAdminHandler := rest.NewRotationAdminHandler(rotationCfgRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(tokenRepo)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler)
	router.SetupCampaignRoutes(api, campaignHandler, authRequired)
	router.SetupRotationRoutes(api, rotationHandler, authRequired)
	router.SetupRotationAdminRoutes(api, rotationAdminHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
