package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoserve360/pos/pkg/money"
)

// InventoryItem is a sellable part or service from the dealership
// catalog. The POS terminal only reads these to populate item selection;
// stock deduction on sale is a backend responsibility and deliberately
// does not happen anywhere in this module.
type InventoryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	SKU       string         `gorm:"size:100" json:"sku,omitempty"`
	Price     money.Paise    `gorm:"not null" json:"price"`
	Stock     int            `gorm:"default:0" json:"stock"`
	ImageURL  string         `gorm:"size:512" json:"imageUrl,omitempty"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
