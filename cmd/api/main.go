package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/restoflow/restoflow-api/internal/application/service"
	"github.com/restoflow/restoflow-api/internal/config"
	"github.com/restoflow/restoflow-api/internal/infrastructure/database"
	"github.com/restoflow/restoflow-api/internal/infrastructure/repository"
	"github.com/restoflow/restoflow-api/internal/presentation/http/handler"
	"github.com/restoflow/restoflow-api/internal/presentation/http/routes"
	"github.com/restoflow/restoflow-api/pkg/logger"
	"github.com/restoflow/restoflow-api/pkg/printer"
	"github.com/restoflow/restoflow-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	if err := logger.Init(cfg.App.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Get()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Unit of work binds all repositories to one transaction
	uow := repository.NewUnitOfWork(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		zlog.Warn("failed to initialize printer, falling back to null printer", zap.Error(err))
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	numbering := service.NewNumberingService()
	productService := service.NewProductService(uow)
	categoryService := service.NewCategoryService(uow)
	customerService := service.NewCustomerService(uow)
	orderService := service.NewOrderService(uow, numbering)
	saleService := service.NewSaleService(uow, numbering, thermalPrinter, zlog)
	kotBotService := service.NewKotBotService(uow, numbering)
	purchaseService := service.NewPurchaseService(uow, numbering)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:  handler.NewProductHandler(productService, categoryService),
		Customer: handler.NewCustomerHandler(customerService),
		Order:    handler.NewOrderHandler(orderService, saleService),
		Sale:     handler.NewSaleHandler(saleService),
		KotBot:   handler.NewKotBotHandler(kotBotService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          zlog,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
