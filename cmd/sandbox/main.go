package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/application/service"
	"github.com/autoserve360/pos/internal/config"
	"github.com/autoserve360/pos/internal/infrastructure/database"
	"github.com/autoserve360/pos/internal/infrastructure/repository"
	"github.com/autoserve360/pos/internal/presentation/http/handler"
	"github.com/autoserve360/pos/internal/presentation/http/routes"
	"github.com/autoserve360/pos/pkg/logger"
	"github.com/autoserve360/pos/pkg/utils"
)

// The sandbox is a local stand-in for the dealership backend. It speaks
// the same wire contract the terminal client does, so a full sale can be
// exercised end to end on one machine.
func main() {
	cfg := config.Load()

	zlog, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewSQLiteDB(&cfg.Sandbox)
	if err != nil {
		zlog.Fatal("Failed to open database", zap.Error(err))
	}

	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	if err := database.SeedDemoData(db); err != nil {
		zlog.Warn("Failed to seed demo data", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(cfg.Sandbox.JWTSecret, 24*time.Hour)

	// A terminal token for local testing; real deployments provision these
	// out of band.
	demoToken, err := jwtManager.GenerateToken(utils.NewUUID(), "counter-1")
	if err == nil {
		zlog.Info("Demo terminal credentials",
			zap.String("token", demoToken),
			zap.String("tenant_id", database.DemoTenantID.String()),
		)
	}

	invoiceRepo := repository.NewInvoiceRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	invoiceService := service.NewInvoiceService(invoiceRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)

	handlers := &routes.Handlers{
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Inventory: handler.NewInventoryHandler(inventoryService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        zlog,
	})

	port := cfg.Sandbox.Port
	if port == "" {
		port = "8360"
	}

	zlog.Info("Starting sandbox backend",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		zlog.Fatal("Server exited", zap.Error(err))
	}
}
