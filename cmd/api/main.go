package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"moneyflow/internal/config"
	"moneyflow/internal/database"
	"moneyflow/internal/handlers"
	"moneyflow/internal/logger"
	"moneyflow/internal/middleware"
	"moneyflow/internal/registry"
	"moneyflow/internal/services"
	"moneyflow/internal/storage"
	"moneyflow/internal/store"
	"moneyflow/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the persistence backend
	backend, err := openBackend(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open storage backend: %w", err)
	}

	// Build the category registry and load the transaction store
	categories := registry.NewDefault()
	ledger, err := store.New(backend, categories)
	if err != nil {
		return fmt.Errorf("failed to load transaction store: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	transactionService := services.NewTransactionService(ledger)
	categoryService := services.NewCategoryService(categories)
	reportService := services.NewReportService(ledger, categories)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.SetHTMLTemplate(handlers.Templates())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	categoriesGroup := v1.Group("/categories")
	categoriesGroup.GET("", categoryHandler.GetCategories)
	categoriesGroup.GET("/:id", categoryHandler.GetCategoryByID)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/daily", reportHandler.GetDailyChart)
	reports.GET("/print", reportHandler.GetPrintableReport)

	log.Infof("Starting Money Flow server on port %s", appConfig.Port)
	log.Infof("Storage driver: %s", appConfig.StorageDriver)
	return router.Run(":" + appConfig.Port)
}

// openBackend builds the snapshot backend selected by STORAGE_DRIVER. The
// postgres backend runs its migrations before first use.
func openBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		manager, err := database.NewManager(&cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := manager.RunMigrations(); err != nil {
			return nil, err
		}
		return storage.NewGormBackend(manager.DB()), nil
	default:
		return storage.NewFileBackend(cfg.DataFile)
	}
}
