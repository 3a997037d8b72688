package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/config"
	"github.com/granjatech/granja-api/internal/infrastructure/database"
	"github.com/granjatech/granja-api/internal/infrastructure/repository"
	"github.com/granjatech/granja-api/internal/presentation/http/handler"
	"github.com/granjatech/granja-api/internal/presentation/http/routes"
	"github.com/granjatech/granja-api/internal/scheduler"
	"github.com/granjatech/granja-api/pkg/events"
	"github.com/granjatech/granja-api/pkg/logger"
	"github.com/granjatech/granja-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Must(logger.New(cfg.App.Debug))
	defer log.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed singleton stock rows and default categories
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize the event bus
	bus := events.NewBus()

	// Initialize repositories
	ingredientRepo := repository.NewIngredientRepository(db)
	stockRepo := repository.NewStockRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	formulaRepo := repository.NewFormulaRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	eggRepo := repository.NewEggRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	shedRepo := repository.NewShedRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize services
	authService := service.NewAuthService(cfg.Admin, jwtManager)
	ingredientService := service.NewIngredientService(ingredientRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, ingredientRepo, cfg.Ledger.CostingPolicy, bus)
	formulaService := service.NewFormulaService(formulaRepo, ingredientRepo, stockRepo)
	feedService := service.NewFeedService(feedRepo, formulaRepo, shedRepo, stockRepo, bus)
	eggService := service.NewEggService(eggRepo, shedRepo, bus)
	saleService := service.NewSaleService(saleRepo, stockRepo, bus)
	shedService := service.NewShedService(shedRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	stockService := service.NewStockService(stockRepo)
	reportService := service.NewReportService(saleRepo, purchaseRepo, expenseRepo, eggRepo, shedRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, logger.Named(log, "snapshot"))

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Ingredient: handler.NewIngredientHandler(ingredientService),
		Purchase:   handler.NewPurchaseHandler(purchaseService),
		Formula:    handler.NewFormulaHandler(formulaService),
		Feed:       handler.NewFeedHandler(feedService),
		Egg:        handler.NewEggHandler(eggService),
		Sale:       handler.NewSaleHandler(saleService),
		Expense:    handler.NewExpenseHandler(expenseService),
		Shed:       handler.NewShedHandler(shedService),
		Stock:      handler.NewStockHandler(stockService),
		Report:     handler.NewReportHandler(reportService),
		Snapshot:   handler.NewSnapshotHandler(snapshotService),
		Event:      handler.NewEventHandler(bus),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        logger.Named(log, "http"),
	})

	// Start the low-stock scan
	sched := scheduler.NewScheduler(stockService, bus, cfg.Ledger.LowStockSchedule, logger.Named(log, "scheduler"))
	sched.Start()
	defer sched.Stop()

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
		os.Exit(1)
	}
}
