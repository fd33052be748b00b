package request

import (
	"github.com/google/uuid"

	"github.com/autoserve360/pos/internal/domain/enum"
	"github.com/autoserve360/pos/pkg/money"
)

// CreateInvoiceItemRequest is one submitted invoice line. Rate arrives as
// a decimal amount and is parsed into paise by the money codec.
type CreateInvoiceItemRequest struct {
	ProductID *uuid.UUID  `json:"product_id"`
	Name      string      `json:"name" binding:"required"`
	Quantity  int         `json:"qty"`
	Rate      money.Paise `json:"rate"`
	TaxRate   float64     `json:"tax_rate"`
}

// CreateInvoiceRequest is the POST /invoices body
type CreateInvoiceRequest struct {
	CustomerName  string                     `json:"customer_name" binding:"required"`
	PaymentMethod string                     `json:"payment_method"`
	Status        *enum.InvoiceStatus        `json:"status"`
	Items         []CreateInvoiceItemRequest `json:"items" binding:"required,min=1"`
}
