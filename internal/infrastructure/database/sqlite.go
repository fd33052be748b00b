package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autoserve360/pos/internal/config"
	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/pkg/money"
)

// NewSQLiteDB opens the sandbox database. A DBPath of ":memory:" gives a
// throwaway in-memory database, which is what the tests use.
func NewSQLiteDB(cfg *config.SandboxConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite serializes writes; a single connection avoids busy errors.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.InventoryItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// DemoTenantID is the tenant the sandbox seeds catalog data for. The demo
// client stores the same ID under its tenant session key.
var DemoTenantID = uuid.MustParse("6b1f6f0e-8f2a-4c3d-9a11-2f9f3b7d4e55")

// SeedDemoData populates the catalog for the demo tenant if it is empty.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.InventoryItem{}).
		Where("tenant_id = ?", DemoTenantID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.InventoryItem{
		{TenantID: DemoTenantID, Name: "Engine Oil 10W-40 (1L)", SKU: "OIL-1040", Price: money.Paise(65000), Stock: 40},
		{TenantID: DemoTenantID, Name: "Oil Filter", SKU: "FLT-OIL", Price: money.Paise(28000), Stock: 25},
		{TenantID: DemoTenantID, Name: "Air Filter", SKU: "FLT-AIR", Price: money.Paise(45000), Stock: 18},
		{TenantID: DemoTenantID, Name: "Brake Pad Set (Front)", SKU: "BRK-PAD-F", Price: money.Paise(185000), Stock: 12},
		{TenantID: DemoTenantID, Name: "Chain Lubrication", SKU: "SVC-CHAIN", Price: money.Paise(15000), Stock: 999},
		{TenantID: DemoTenantID, Name: "General Service (2W)", SKU: "SVC-GEN", Price: money.Paise(250000), Stock: 999},
		{TenantID: DemoTenantID, Name: "Spark Plug", SKU: "ELC-PLUG", Price: money.Paise(22000), Stock: 60},
		{TenantID: DemoTenantID, Name: "Coolant (500ml)", SKU: "OIL-COOL", Price: money.Paise(32000), Stock: 30},
	}

	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed demo inventory: %w", err)
	}
	log.Printf("Seeded %d demo inventory items", len(items))
	return nil
}
