package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/internal/config"
	"github.com/granjatech/granja-api/internal/presentation/http/handler"
	"github.com/granjatech/granja-api/internal/presentation/http/middleware"
	"github.com/granjatech/granja-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Ingredient *handler.IngredientHandler
	Purchase   *handler.PurchaseHandler
	Formula    *handler.FormulaHandler
	Feed       *handler.FeedHandler
	Egg        *handler.EggHandler
	Sale       *handler.SaleHandler
	Expense    *handler.ExpenseHandler
	Shed       *handler.ShedHandler
	Stock      *handler.StockHandler
	Report     *handler.ReportHandler
	Snapshot   *handler.SnapshotHandler
	Event      *handler.EventHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-IP rate limiter
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Ingredients
	ingredients := protected.Group("/ingredients")
	{
		ingredients.GET("", h.Ingredient.List)
		ingredients.POST("", h.Ingredient.Create)
		ingredients.GET("/:id", h.Ingredient.Get)
		ingredients.PUT("/:id", h.Ingredient.Update)
		ingredients.DELETE("/:id", h.Ingredient.Delete)
	}

	// Purchases
	purchases := protected.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
	}

	// Formulas
	formulas := protected.Group("/formulas")
	{
		formulas.GET("", h.Formula.List)
		formulas.POST("", h.Formula.Create)
		formulas.GET("/:id", h.Formula.Get)
		formulas.PUT("/:id", h.Formula.Update)
		formulas.DELETE("/:id", h.Formula.Delete)
	}

	// Feed production
	feed := protected.Group("/feed")
	{
		feed.GET("/productions", h.Feed.ListProductions)
		feed.POST("/productions", h.Feed.Produce)
		feed.POST("/consumptions", h.Feed.RecordConsumption)
	}

	// Sheds and per-shed logs
	sheds := protected.Group("/sheds")
	{
		sheds.GET("", h.Shed.List)
		sheds.POST("", h.Shed.Create)
		sheds.GET("/:id", h.Shed.Get)
		sheds.PUT("/:id", h.Shed.Update)
		sheds.DELETE("/:id", h.Shed.Delete)
		sheds.GET("/:id/mortalities", h.Shed.ListMortalities)
		sheds.POST("/:id/mortalities", h.Shed.RecordMortality)
		sheds.GET("/:id/husbandry", h.Shed.ListHusbandry)
		sheds.POST("/:id/husbandry", h.Shed.RecordHusbandry)
		sheds.GET("/:id/consumptions", h.Feed.ListConsumptions)
	}

	// Egg production
	eggs := protected.Group("/egg-productions")
	{
		eggs.GET("", h.Egg.List)
		eggs.POST("", h.Egg.Record)
	}

	// Sales and receivables
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/settle", h.Sale.Settle)
	}
	protected.GET("/receivables", h.Sale.ListReceivables)

	// Expenses
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.DELETE("/:id", h.Expense.Delete)
		expenses.GET("/categories", h.Expense.ListCategories)
		expenses.POST("/categories", h.Expense.CreateCategory)
		expenses.DELETE("/categories/:id", h.Expense.DeleteCategory)
	}

	// Stock dashboard
	stock := protected.Group("/stock")
	{
		stock.GET("", h.Stock.Overview)
		stock.GET("/low", h.Stock.LowStock)
	}

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/financial", h.Report.Financial)
		reports.GET("/production", h.Report.Production)
	}

	// Backup / restore / reset
	snapshot := protected.Group("/snapshot")
	{
		snapshot.GET("/export", h.Snapshot.Export)
		snapshot.POST("/import", h.Snapshot.Import)
		snapshot.POST("/reset", h.Snapshot.Reset)
	}

	// Stock change stream
	protected.GET("/events", h.Event.Stream)
}
