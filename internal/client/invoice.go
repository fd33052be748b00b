package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/internal/domain/enum"
	"github.com/autoserve360/pos/pkg/money"
)

// CreateInvoiceItem is one wire line of a create request. ProductID is
// null for ad-hoc custom lines.
type CreateInvoiceItem struct {
	ProductID *uuid.UUID  `json:"product_id"`
	Name      string      `json:"name"`
	Quantity  int         `json:"qty"`
	Rate      money.Paise `json:"rate"`
	TaxRate   float64     `json:"tax_rate"`
}

// CreateInvoiceInput is the POST /invoices body. Items must be non-empty
// and the customer validated before this is submitted; the client itself
// enforces neither.
type CreateInvoiceInput struct {
	CustomerName string              `json:"customer_name"`
	Items        []CreateInvoiceItem `json:"items"`
	Status       *enum.InvoiceStatus `json:"status,omitempty"`
}

// CreateInvoice durably creates an invoice on the backend and returns
// the created summary with the server-assigned identifier and status.
// Tenant-scoped: fails before the request when no tenant is in session.
func (c *Client) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*entity.Invoice, error) {
	var created entity.Invoice
	if err := c.do(ctx, http.MethodPost, "/invoices", nil, input, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListInvoicesOptions filters the invoice list. The date window is
// inclusive on both ends; either bound may be nil.
type ListInvoicesOptions struct {
	Limit int
	From  *time.Time
	To    *time.Time
}

// ListInvoices fetches invoice summaries (no line items).
func (c *Client) ListInvoices(ctx context.Context, opts ListInvoicesOptions) ([]entity.Invoice, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.From != nil {
		query.Set("from", opts.From.Format(time.RFC3339))
	}
	if opts.To != nil {
		query.Set("to", opts.To.Format(time.RFC3339))
	}

	var invoices []entity.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices", query, nil, &invoices, false); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice fetches a single invoice with full line items, for
// re-printing or auditing a past sale.
func (c *Client) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/"+id.String(), nil, nil, &invoice, false); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice permanently deletes an invoice on the backend. There is
// no soft-delete from the terminal's point of view. Tenant-scoped.
func (c *Client) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/invoices/"+id.String(), nil, nil, nil, true)
}
