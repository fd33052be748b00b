package printing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/pkg/money"
	"github.com/autoserve360/pos/pkg/printer"
)

func documentFixture() entity.Document {
	return entity.Document{
		Header: entity.DocumentHeader{
			DealerName: "AutoServe 360 Motors",
			Address:    "14 MG Road, Pune",
			Phone:      "+91 20 4455 6677",
			GSTIN:      "27ABCDE1234F1Z5",
		},
		InvoiceNo:     "INV-2026-0042",
		Date:          time.Date(2026, 8, 30, 11, 30, 0, 0, time.UTC).Format("02 Jan 2006 15:04"),
		CustomerName:  "Asha Verma",
		CustomerPhone: "9876543210",
		VehicleNo:     "MH12AB1234",
		PaymentMethod: "UPI",
		Items: []entity.DocumentItem{
			{Name: "Service Labour", Quantity: 2, Rate: money.FromRupees(500), Amount: money.FromRupees(1000)},
			{Name: "Spark Plug Set", Quantity: 1, Rate: money.FromRupees(1500), Amount: money.FromRupees(1500)},
		},
		SubTotal: money.FromRupees(2500),
		Tax:      money.FromRupees(450),
		Total:    money.FromRupees(2950),
	}
}

func TestRenderHTMLDeterministic(t *testing.T) {
	doc := documentFixture()

	first, err := RenderHTML(doc)
	require.NoError(t, err)
	second, err := RenderHTML(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same document must render byte-for-byte identically")
}

func TestRenderHTMLContent(t *testing.T) {
	out, err := RenderHTML(documentFixture())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "INV-2026-0042")
	assert.Contains(t, html, "Asha Verma")
	assert.Contains(t, html, "MH12AB1234")
	assert.Contains(t, html, "Two Thousand Nine Hundred Fifty Rupees Only")
	assert.Contains(t, html, "₹2,950.00")
	assert.Contains(t, html, "Goods once sold will not be taken back")
	assert.Contains(t, html, "Authorised Signatory")
	assert.Contains(t, html, "Spark Plug Set")
}

func TestFormatReceiptDeterministic(t *testing.T) {
	doc := documentFixture()
	assert.Equal(t, FormatReceipt(doc), FormatReceipt(doc))
}

func TestFormatReceiptContent(t *testing.T) {
	data := string(FormatReceipt(documentFixture()))
	assert.Contains(t, data, "AutoServe 360 Motors")
	assert.Contains(t, data, "INV-2026-0042")
	assert.Contains(t, data, "2950.00")
	assert.Contains(t, data, "Two Thousand Nine Hundred Fifty")
}

func TestServicePrint(t *testing.T) {
	svc := NewService(printer.NewNullPrinter(), "none", zap.NewNop())
	require.NoError(t, svc.Print(documentFixture()))

	status := svc.GetStatus()
	assert.False(t, status.Configured)
	assert.False(t, status.Connected)
}
