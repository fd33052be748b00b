package checkout

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/client"
	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/internal/domain/enum"
	"github.com/autoserve360/pos/pkg/apperror"
	"github.com/autoserve360/pos/pkg/money"
)

// InvoiceCreator is the slice of the backend client the workflow needs
// for submission.
type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, input client.CreateInvoiceInput) (*entity.Invoice, error)
}

// DocumentPrinter dispatches a finalized document to the physical
// printer. Fire-and-forget from the workflow's point of view.
type DocumentPrinter interface {
	Print(doc entity.Document) error
}

// Payment captures the outcome of the payment step at the counter.
type Payment struct {
	Method string
	Paid   money.Paise
}

// Workflow is the process-payment orchestration: it validates the draft,
// reads the cart exactly once, submits, and on success refreshes the
// transaction list, clears the draft and dispatches exactly one print.
type Workflow struct {
	cart     *Cart
	invoices InvoiceCreator
	list     *TransactionList
	printer  DocumentPrinter
	header   entity.DocumentHeader
	validate *validator.Validate
	log      *zap.Logger
}

// NewWorkflow wires the checkout workflow.
func NewWorkflow(cart *Cart, invoices InvoiceCreator, list *TransactionList, printer DocumentPrinter, header entity.DocumentHeader, log *zap.Logger) *Workflow {
	return &Workflow{
		cart:     cart,
		invoices: invoices,
		list:     list,
		printer:  printer,
		header:   header,
		validate: validator.New(),
		log:      log,
	}
}

// Cart exposes the draft being composed.
func (w *Workflow) Cart() *Cart {
	return w.cart
}

// Transactions exposes the server-backed list controller.
func (w *Workflow) Transactions() *TransactionList {
	return w.list
}

// ProcessPayment submits the current draft as an invoice. Validation
// failures and backend failures both leave the draft unmodified; only a
// confirmed creation clears the cart. The returned invoice carries the
// server-assigned identifier and status.
func (w *Workflow) ProcessPayment(ctx context.Context, payment Payment) (*entity.Invoice, error) {
	// Single atomic read of the draft; later cart mutations cannot race
	// this submission.
	draft := w.cart.Snapshot()

	if err := w.validateDraft(draft); err != nil {
		return nil, err
	}

	_, _, total := draft.Totals()
	status := paymentStatus(payment.Paid, total)

	items := make([]client.CreateInvoiceItem, len(draft.Items))
	for i, it := range draft.Items {
		items[i] = client.CreateInvoiceItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Rate:      it.Rate,
			TaxRate:   float64(money.DefaultTaxRateBps) / 100,
		}
	}

	created, err := w.invoices.CreateInvoice(ctx, client.CreateInvoiceInput{
		CustomerName: draft.Customer.Name,
		Items:        items,
		Status:       &status,
	})
	if err != nil {
		w.log.Warn("invoice submission failed, draft preserved", zap.Error(err))
		return nil, err
	}

	w.log.Info("invoice created",
		zap.String("invoice_no", created.InvoiceNo),
		zap.String("status", created.Status.String()),
		zap.String("total", created.Total.String()))

	// Full re-fetch rather than a local append, so the visible list
	// reflects server-computed fields. Failure here does not undo the
	// completed sale.
	if w.list != nil {
		if err := w.list.Refresh(ctx); err != nil {
			w.log.Warn("post-submission list refresh failed", zap.Error(err))
		}
	}

	// Exactly one print dispatch per confirmed payment.
	doc := w.buildDocument(draft, created, payment)
	if w.printer != nil {
		if err := w.printer.Print(doc); err != nil {
			w.log.Warn("print dispatch failed", zap.Error(err))
		}
	}

	w.cart.Clear()
	return created, nil
}

// validateDraft is the submission-time gate: empty carts and incomplete
// customer records never reach the network.
func (w *Workflow) validateDraft(draft Draft) error {
	if len(draft.Items) == 0 {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "at least one item is required"},
		})
	}

	if err := w.validate.Struct(draft.Customer); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]apperror.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, apperror.FieldError{
					Field:   fe.Field(),
					Message: fieldMessage(fe),
				})
			}
			return apperror.NewValidationError(fields)
		}
		return err
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "max":
		return "has an invalid length"
	default:
		return "is invalid"
	}
}

// buildDocument composes the printable document from the draft the
// customer saw and the invoice the server confirmed.
func (w *Workflow) buildDocument(draft Draft, created *entity.Invoice, payment Payment) entity.Document {
	items := make([]entity.DocumentItem, len(draft.Items))
	for i, it := range draft.Items {
		items[i] = entity.DocumentItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   it.Amount(),
		}
	}

	return entity.Document{
		Header:        w.header,
		InvoiceNo:     created.InvoiceNo,
		Date:          created.InvoiceDate.Format("02 Jan 2006 15:04"),
		CustomerName:  draft.Customer.Name,
		CustomerPhone: draft.Customer.Phone,
		CustomerEmail: draft.Customer.Email,
		VehicleNo:     draft.Customer.VehicleNo,
		PaymentMethod: payment.Method,
		Items:         items,
		SubTotal:      created.SubTotal,
		Tax:           created.Tax,
		Total:         created.Total,
	}
}

// paymentStatus derives the creation-time status from the payment
// outcome. The server remains authoritative and may override it.
func paymentStatus(paid, total money.Paise) enum.InvoiceStatus {
	switch {
	case paid >= total && total > 0:
		return enum.InvoiceStatusPaid
	case paid > 0:
		return enum.InvoiceStatusPartial
	default:
		return enum.InvoiceStatusDue
	}
}
