package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aurea-joias/aurea-backend/config"
	"github.com/aurea-joias/aurea-backend/internal/app/controller"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/internal/app/service"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/aurea-joias/aurea-backend/internal/middleware"
	"github.com/aurea-joias/aurea-backend/internal/router"
	"github.com/aurea-joias/aurea-backend/internal/storage"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"github.com/aurea-joias/aurea-backend/pkg/redis"
	"github.com/aurea-joias/aurea-backend/pkg/sms"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Aurea Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis is optional; without it logout falls back to client-side only.
	if cfg.Redis.Host != "" {
		if err := redis.Init(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			logger.Warn("Redis unavailable, token blacklist disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	smsClient := sms.NewClient(sms.Config{
		ServiceID:  cfg.SMS.ServiceID,
		AccessKey:  cfg.SMS.AccessKey,
		SecretKey:  cfg.SMS.SecretKey,
		FromNumber: cfg.SMS.FromNumber,
		BaseURL:    cfg.SMS.BaseURL,
	})

	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	addressRepo := repository.NewAddressRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	attributeRepo := repository.NewAttributeRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	customRequestRepo := repository.NewCustomRequestRepository(db.GetDB())
	settingsRepo := repository.NewSiteSettingsRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		smsClient,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	categoryService := service.NewCategoryService(categoryRepo)
	attributeService := service.NewAttributeService(attributeRepo)
	productService := service.NewProductService(productRepo, categoryRepo, attributeRepo)
	orderService := service.NewOrderService(orderRepo, userRepo)
	addressService := service.NewAddressService(addressRepo)
	customRequestService := service.NewCustomRequestService(customRequestRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.JWT.Secret)
	categoryController := controller.NewCategoryController(categoryService)
	attributeController := controller.NewAttributeController(attributeService)
	productController := controller.NewProductController(productService)
	orderController := controller.NewOrderController(orderService)
	addressController := controller.NewAddressController(addressService)
	customRequestController := controller.NewCustomRequestController(customRequestService)
	settingsController := controller.NewSettingsController(settingsService)
	uploadController := controller.NewUploadController(s3Storage)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		authController,
		categoryController,
		attributeController,
		productController,
		orderController,
		addressController,
		customRequestController,
		settingsController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
