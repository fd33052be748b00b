// Package printing renders finalized invoices: a fixed-layout A4 HTML
// document for the office printer and an ESC/POS receipt for the
// counter. Rendering is pure — the same document produces the same
// bytes — while the physical dispatch is a fire-and-forget side effect.
package printing

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/pkg/money"
)

//go:embed invoice.html.tmpl
var invoiceTemplate string

// legalNote is the fixed boilerplate printed on every invoice.
const legalNote = "Goods once sold will not be taken back or exchanged. " +
	"All disputes are subject to the jurisdiction of the dealership's registered office. " +
	"This is a computer generated invoice."

var docTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"inr": func(p money.Paise) string { return money.FormatINR(p) },
	"seq": func(i int) int { return i + 1 },
}).Parse(invoiceTemplate))

type documentView struct {
	entity.Document
	AmountWords string
	LegalNote   string
}

// RenderHTML renders the A4 invoice document. Deterministic: same
// document in, same bytes out.
func RenderHTML(doc entity.Document) ([]byte, error) {
	var buf bytes.Buffer
	view := documentView{
		Document:    doc,
		AmountWords: doc.AmountInWords() + " Rupees Only",
		LegalNote:   legalNote,
	}
	if err := docTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("printing: render invoice %s: %w", doc.InvoiceNo, err)
	}
	return buf.Bytes(), nil
}
