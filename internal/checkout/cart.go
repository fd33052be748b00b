// Package checkout implements the point-of-sale invoicing workflow: the
// draft invoice cart, the server-backed transaction list, and the
// process-payment orchestration that ties them together.
package checkout

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/autoserve360/pos/pkg/money"
)

// Customer holds the bill-to fields of the draft. Validation happens at
// submission time, not on set.
type Customer struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required,min=7,max=15"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	VehicleNo string `json:"vehicle_number,omitempty"`
}

// CustomerPatch is a partial customer update; nil fields are left as-is.
type CustomerPatch struct {
	Name      *string
	Phone     *string
	Email     *string
	VehicleNo *string
}

// CartItem is one draft line: a quantity of a named part or service at a
// rate. ProductID is nil for ad-hoc custom lines. Line identity for
// merging is Name, exact match — NOT ProductID.
type CartItem struct {
	ProductID *uuid.UUID  `json:"product_id"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	Rate      money.Paise `json:"rate"`
}

// Amount returns quantity times rate for this line.
func (i CartItem) Amount() money.Paise {
	return money.LineAmount(i.Quantity, i.Rate)
}

// Draft is an atomic snapshot of the cart, taken once at submission so
// later mutations cannot race an in-flight payment.
type Draft struct {
	InvoiceID string
	Customer  Customer
	Items     []CartItem
}

// Subtotal sums the draft's line amounts.
func (d Draft) Subtotal() money.Paise {
	amounts := make([]money.Paise, len(d.Items))
	for i, it := range d.Items {
		amounts[i] = it.Amount()
	}
	return money.Subtotal(amounts)
}

// Totals returns subtotal, tax at the global rate, and grand total.
// Per-line tax rates are never consulted here.
func (d Draft) Totals() (subtotal, tax, total money.Paise) {
	subtotal = d.Subtotal()
	tax = money.Tax(subtotal, money.DefaultTaxRateBps)
	total = money.Total(subtotal, tax)
	return subtotal, tax, total
}

// Cart is the single authoritative in-memory state for the invoice
// currently being composed. One cart per active terminal screen; the
// mutex only guards against the transaction list's callbacks touching
// it while a handler goroutine mutates.
type Cart struct {
	mu        sync.Mutex
	invoiceID string
	customer  Customer
	items     []CartItem
}

// NewCart creates an empty cart with a fresh draft display identifier.
func NewCart() *Cart {
	return &Cart{invoiceID: nextDraftID()}
}

// InvoiceID returns the draft's display identifier. This is NOT the
// server-assigned invoice number; the two are not required to match.
func (c *Cart) InvoiceID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invoiceID
}

// SetInvoiceID overrides the draft display identifier.
func (c *Cart) SetInvoiceID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invoiceID = id
}

// SetCustomer shallow-merges the patch into the customer fields.
func (c *Cart) SetCustomer(patch CustomerPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if patch.Name != nil {
		c.customer.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.customer.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.customer.Email = *patch.Email
	}
	if patch.VehicleNo != nil {
		c.customer.VehicleNo = *patch.VehicleNo
	}
}

// Customer returns the current bill-to fields.
func (c *Cart) Customer() Customer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customer
}

// AddItem merges by name: if a line with the same name (exact,
// case-sensitive) exists, its quantity grows by the incoming quantity
// and the line keeps its original position. Otherwise the item is
// appended, preserving insertion order. An incoming quantity below one
// is clamped to one rather than rejected, the same floor every quantity
// mutation on the cart enforces.
func (c *Cart) AddItem(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Name == item.Name {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateItemQuantity applies quantity += delta to the line at index, but
// only commits when the result stays >= 1. A delta that would drop the
// quantity below one is silently ignored, not an error.
func (c *Cart) UpdateItemQuantity(index, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return
	}
	if next := c.items[index].Quantity + delta; next >= 1 {
		c.items[index].Quantity = next
	}
}

// DeleteItem removes the line at index. Out-of-range indices are
// ignored; indices are always sourced from the rendered list.
func (c *Cart) DeleteItem(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Clear resets customer and items and assigns a fresh draft identifier.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customer = Customer{}
	c.items = nil
	c.invoiceID = nextDraftID()
}

// Snapshot atomically captures the whole draft. ProcessPayment reads the
// cart exactly once through this.
func (c *Cart) Snapshot() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return Draft{
		InvoiceID: c.invoiceID,
		Customer:  c.customer,
		Items:     items,
	}
}

// lastDraftStamp makes consecutive identifiers distinct even when two
// drafts are created within the same millisecond.
var lastDraftStamp atomic.Int64

// nextDraftID derives a short numeric display identifier from the
// current timestamp. Unique per draft session within a running terminal.
func nextDraftID() string {
	stamp := time.Now().UnixMilli()
	for {
		last := lastDraftStamp.Load()
		if stamp <= last {
			stamp = last + 1
		}
		if lastDraftStamp.CompareAndSwap(last, stamp) {
			break
		}
	}
	s := strconv.FormatInt(stamp, 10)
	if len(s) > 6 {
		s = s[len(s)-6:]
	}
	return s
}
