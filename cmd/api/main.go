package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"nebulamarket/internal/adapter/api"
	"nebulamarket/internal/adapter/api/handler"
	apimiddleware "nebulamarket/internal/adapter/api/middleware"
	"nebulamarket/internal/adapter/api/router"
	"nebulamarket/internal/adapter/repository"
	"nebulamarket/internal/infrastructure/database"
	"nebulamarket/internal/infrastructure/observability"
	"nebulamarket/internal/infrastructure/token"
	"nebulamarket/internal/usecase"
	"nebulamarket/pkg/config"
	"nebulamarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Environment)
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Info("Marketplace DB initialized")

	userRepo := repository.NewGormUserRepository(db)
	listingRepo := repository.NewGormListingRepository(db)
	transactionRepo := repository.NewGormTransactionRepository(db)

	tokenManager := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	marketplaceUseCase := usecase.NewMarketplaceUseCase(listingRepo, transactionRepo)

	handler.Setup(marketplaceUseCase)
	handler.SetupHealthHandler()
	handler.SetupDevTokenHandler(tokenManager, userRepo)

	observability.Register()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))
	e.Use(observability.Middleware())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)

	router.Setup(e, authMiddleware)
	router.SetupDevRouter(e, cfg.Environment)

	logger.Info("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
