package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoserve360/pos/internal/domain/enum"
	"github.com/autoserve360/pos/pkg/money"
)

// Invoice is a persisted invoice as the backend returns it. The POS
// terminal never mutates one of these directly; it creates, re-fetches
// and deletes. Totals are server-computed and authoritative.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"-"`
	InvoiceNo     string             `gorm:"size:100;not null;index" json:"invoice_no"`
	CustomerName  string             `gorm:"size:255;not null" json:"customer_name"`
	SubTotal      money.Paise        `gorm:"not null" json:"subtotal"`
	Tax           money.Paise        `gorm:"not null" json:"tax"`
	Total         money.Paise        `gorm:"not null" json:"total"`
	Status        enum.InvoiceStatus `gorm:"default:0" json:"status"`
	InvoiceDate   time.Time          `gorm:"not null;index" json:"date"`
	PaymentMethod string             `gorm:"size:50" json:"payment_method,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Items are only populated on the fetch-one path; the list endpoint
	// returns summaries without line detail.
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line of an invoice: a quantity of a named part or
// service at a rate. ProductID is nil for ad-hoc custom lines. TaxRate
// travels on the wire per line but totals are always computed at the
// single global rate.
type InvoiceItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"-"`
	InvoiceID uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	ProductID *uuid.UUID     `gorm:"type:uuid;index" json:"product_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Quantity  int            `gorm:"not null" json:"qty"`
	Rate      money.Paise    `gorm:"not null" json:"rate"`
	TaxRate   float64        `gorm:"default:0" json:"tax_rate"`
	CreatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Amount returns quantity times rate for this line.
func (it *InvoiceItem) Amount() money.Paise {
	return money.LineAmount(it.Quantity, it.Rate)
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
