package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/internal/domain/enum"
	"github.com/autoserve360/pos/internal/domain/repository"
	infraRepo "github.com/autoserve360/pos/internal/infrastructure/repository"
	"github.com/autoserve360/pos/pkg/apperror"
	"github.com/autoserve360/pos/pkg/money"
	"github.com/autoserve360/pos/pkg/utils"
)

// InvoiceService handles invoice persistence for the sandbox backend.
// Totals are always recomputed server-side from the submitted lines; the
// client's arithmetic is never trusted.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// InvoiceItemInput represents one submitted invoice line
type InvoiceItemInput struct {
	ProductID *uuid.UUID
	Name      string
	Quantity  int
	Rate      money.Paise
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	CustomerName  string
	PaymentMethod string
	Status        *enum.InvoiceStatus
	Items         []InvoiceItemInput
}

// CreateInvoice persists a new invoice with server-assigned identity,
// number, date and recomputed totals.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.ErrMissingTenant
	}

	if input.CustomerName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "customer_name", Message: "customer_name is required"},
		})
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "at least one item is required"},
		})
	}

	lines := make([]money.Paise, 0, len(input.Items))
	items := make([]entity.InvoiceItem, 0, len(input.Items))
	for _, in := range input.Items {
		if in.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: "item name is required"},
			})
		}
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, money.LineAmount(qty, in.Rate))
		items = append(items, entity.InvoiceItem{
			ProductID: in.ProductID,
			Name:      in.Name,
			Quantity:  qty,
			Rate:      in.Rate,
			TaxRate:   float64(money.DefaultTaxRateBps) / 100,
		})
	}

	subTotal := money.Subtotal(lines)
	tax := money.Tax(subTotal, money.DefaultTaxRateBps)

	status := enum.InvoiceStatusDue
	if input.Status != nil {
		status = *input.Status
	}

	invoice := &entity.Invoice{
		TenantID:      tenantID,
		InvoiceNo:     utils.GenerateInvoiceNo(),
		CustomerName:  input.CustomerName,
		SubTotal:      subTotal,
		Tax:           tax,
		Total:         money.Total(subTotal, tax),
		Status:        status,
		InvoiceDate:   time.Now(),
		PaymentMethod: input.PaymentMethod,
		Items:         items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// ListInvoices lists invoices for the tenant, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter repository.InvoiceFilter) ([]entity.Invoice, error) {
	return s.invoiceRepo.List(ctx, filter)
}

// GetInvoice retrieves an invoice with its items.
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice and its items.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	err := s.invoiceRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError("Invoice")
	}
	return err
}
