package entity

import "github.com/autoserve360/pos/pkg/money"

// DocumentHeader holds the dealership header printed at the top of an
// invoice document.
type DocumentHeader struct {
	DealerName string `json:"dealer_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	GSTIN      string `json:"gstin,omitempty"`
}

// DocumentItem is a single line on a printed invoice.
type DocumentItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Rate     money.Paise `json:"rate"`
	Amount   money.Paise `json:"amount"`
}

// Document is a value object representing a printable invoice. It is NOT
// a database entity — it is composed from a finalized sale at print time
// and rendered deterministically: same Document, same bytes.
type Document struct {
	Header        DocumentHeader `json:"header"`
	InvoiceNo     string         `json:"invoice_no"`
	Date          string         `json:"date"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone,omitempty"`
	CustomerEmail string         `json:"customer_email,omitempty"`
	VehicleNo     string         `json:"vehicle_no,omitempty"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	Items         []DocumentItem `json:"items"`
	SubTotal      money.Paise    `json:"subtotal"`
	Tax           money.Paise    `json:"tax"`
	Total         money.Paise    `json:"total"`
}

// AmountInWords renders the grand total in words, truncating paise.
func (d *Document) AmountInWords() string {
	return money.AmountInWords(d.Total.Rupees())
}
