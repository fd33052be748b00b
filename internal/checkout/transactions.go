package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/client"
	"github.com/autoserve360/pos/internal/domain/entity"
)

// InvoiceService is the slice of the backend client the transaction list
// needs. Narrowed to an interface so the controller is testable without
// a network.
type InvoiceService interface {
	ListInvoices(ctx context.Context, opts client.ListInvoicesOptions) ([]entity.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// TransactionList owns the visible, server-backed list of invoices shown
// alongside the cart. Refreshes replace the list wholesale; deletes are
// optimistic with snapshot rollback. A generation token guards against
// stale fetch results being applied after the filter changed or the
// screen went away — there is no true request cancellation, a superseded
// fetch completes and its result is discarded.
type TransactionList struct {
	mu       sync.Mutex
	svc      InvoiceService
	log      *zap.Logger
	limit    int
	from, to *time.Time
	gen      uint64
	invoices []entity.Invoice

	onChange func([]entity.Invoice)
	onError  func(error)
}

// NewTransactionList creates a controller fetching up to limit invoices.
func NewTransactionList(svc InvoiceService, limit int, log *zap.Logger) *TransactionList {
	return &TransactionList{svc: svc, limit: limit, log: log}
}

// OnChange registers the hook invoked with a copy of the list after
// every applied update. Used by the rendering layer.
func (t *TransactionList) OnChange(fn func([]entity.Invoice)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// OnError registers the hook invoked when a fetch or delete fails. This
// is the surface a UI binds its toast notifications to.
func (t *TransactionList) OnError(fn func(error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onError = fn
}

// Invoices returns a copy of the currently visible list.
func (t *TransactionList) Invoices() []entity.Invoice {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]entity.Invoice, len(t.invoices))
	copy(out, t.invoices)
	return out
}

// SetDateRange changes the inclusive filter window, invalidates any
// in-flight fetch, and re-fetches for the new window.
func (t *TransactionList) SetDateRange(ctx context.Context, from, to *time.Time) error {
	t.mu.Lock()
	t.gen++
	t.from, t.to = from, to
	t.mu.Unlock()
	return t.Refresh(ctx)
}

// Refresh re-fetches the full list for the current window and replaces
// local state wholesale. A result arriving after the generation moved on
// is discarded without touching state.
func (t *TransactionList) Refresh(ctx context.Context) error {
	t.mu.Lock()
	gen := t.gen
	opts := client.ListInvoicesOptions{Limit: t.limit, From: t.from, To: t.to}
	t.mu.Unlock()

	invoices, err := t.svc.ListInvoices(ctx, opts)

	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		t.log.Debug("discarding stale invoice list fetch")
		return nil
	}
	if err != nil {
		onError := t.onError
		t.mu.Unlock()
		t.log.Warn("invoice list fetch failed", zap.Error(err))
		if onError != nil {
			onError(err)
		}
		return err
	}
	t.invoices = invoices
	t.mu.Unlock()

	t.notifyChange()
	return nil
}

// Delete removes the row locally first for a low-latency UI, then calls
// the backend. On failure the pre-mutation snapshot is restored intact
// and the error surfaced.
func (t *TransactionList) Delete(ctx context.Context, id uuid.UUID) error {
	t.mu.Lock()
	// Invalidate any fetch already in flight: a refresh that started
	// before this delete would otherwise resolve afterward and put the
	// deleted row back in the visible list.
	t.gen++
	// Snapshot before the optimistic mutation, never re-derived after.
	snapshot := make([]entity.Invoice, len(t.invoices))
	copy(snapshot, t.invoices)

	kept := t.invoices[:0:0]
	for _, inv := range t.invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	t.invoices = kept
	t.mu.Unlock()

	t.notifyChange()

	if err := t.svc.DeleteInvoice(ctx, id); err != nil {
		t.mu.Lock()
		t.invoices = snapshot
		onError := t.onError
		t.mu.Unlock()

		t.notifyChange()
		t.log.Warn("invoice delete failed, restored list", zap.String("invoice_id", id.String()), zap.Error(err))
		if onError != nil {
			onError(err)
		}
		return err
	}
	return nil
}

// Close invalidates any in-flight fetch. Call when the screen unmounts.
func (t *TransactionList) Close() {
	t.mu.Lock()
	t.gen++
	t.mu.Unlock()
}

func (t *TransactionList) notifyChange() {
	t.mu.Lock()
	fn := t.onChange
	out := make([]entity.Invoice, len(t.invoices))
	copy(out, t.invoices)
	t.mu.Unlock()
	if fn != nil {
		fn(out)
	}
}
