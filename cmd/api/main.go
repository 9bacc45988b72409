package main

import (
	"github.com/gin-gonic/gin"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/config"
	"github.com/storekeep/backoffice-api/internal/infrastructure/database"
	"github.com/storekeep/backoffice-api/internal/infrastructure/repository"
	"github.com/storekeep/backoffice-api/internal/presentation/http/handler"
	"github.com/storekeep/backoffice-api/internal/presentation/http/routes"
	applog "github.com/storekeep/backoffice-api/pkg/logger"
	"github.com/storekeep/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := applog.New(applog.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db, log); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	posRepo := repository.NewPointOfSaleRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, posRepo)
	posService := service.NewPointOfSaleService(posRepo, userRepo)
	productService := service.NewProductService(productRepo, posRepo)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	uploadService := service.NewUploadService(cfg.Storage)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		PointOfSale: handler.NewPointOfSaleHandler(posService),
		Product:     handler.NewProductHandler(productService),
		Customer:    handler.NewCustomerHandler(customerService),
		Order:       handler.NewOrderHandler(orderService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Upload:      handler.NewUploadHandler(uploadService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
