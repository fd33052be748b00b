package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autoserve360/pos/internal/domain/entity"
)

// InvoiceFilter narrows a list query. The date window is inclusive.
type InvoiceFilter struct {
	Limit int
	From  *time.Time
	To    *time.Time
}

// InvoiceRepository defines invoice persistence for the sandbox backend.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	List(ctx context.Context, filter InvoiceFilter) ([]entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
