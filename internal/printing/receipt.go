package printing

import (
	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/pkg/printer"
)

// FormatReceipt converts a Document into the ESC/POS byte stream for the
// 80mm counter printer. Amounts are printed without the currency sign;
// most counter firmwares ship code pages without the rupee glyph.
func FormatReceipt(doc entity.Document) []byte {
	d := printer.NewDocument(48)

	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(doc.Header.DealerName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if doc.Header.Address != "" {
		d.Text(doc.Header.Address)
	}
	if doc.Header.Phone != "" {
		d.TextF("Phone: %s", doc.Header.Phone)
	}
	if doc.Header.GSTIN != "" {
		d.TextF("GSTIN: %s", doc.Header.GSTIN)
	}

	d.SetAlign(printer.AlignLeft).
		Separator('-')

	d.KeyValue("Invoice:", doc.InvoiceNo).
		KeyValue("Date:", doc.Date).
		KeyValue("Customer:", doc.CustomerName)
	if doc.VehicleNo != "" {
		d.KeyValue("Vehicle:", doc.VehicleNo)
	}
	if doc.PaymentMethod != "" {
		d.KeyValue("Payment:", doc.PaymentMethod)
	}

	d.Separator('-')

	for _, item := range doc.Items {
		d.ItemLine(item.Quantity, item.Name, item.Amount.String())
		if item.Quantity > 1 {
			d.TextF("  @ %s each", item.Rate.String())
		}
	}

	d.Separator('-')

	d.KeyValue("Subtotal:", doc.SubTotal.String()).
		KeyValue("GST (18%):", doc.Tax.String()).
		SetBold(true).
		KeyValue("TOTAL:", doc.Total.String()).
		SetBold(false)

	d.Separator('-')

	d.WrappedText("Amount in words: " + doc.AmountInWords() + " Rupees Only")

	d.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	d.FeedLines(3).
		PartialCut()

	return d.Bytes()
}
