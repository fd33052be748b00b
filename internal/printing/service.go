package printing

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/pkg/printer"
)

// Service dispatches rendered documents to the counter printer. It
// satisfies the checkout workflow's DocumentPrinter.
type Service struct {
	printer     printer.Printer
	printerType string
	log         *zap.Logger
}

// NewService creates a printing service around the configured printer.
func NewService(p printer.Printer, printerType string, log *zap.Logger) *Service {
	return &Service{printer: p, printerType: printerType, log: log}
}

// Status describes the current printer state.
type Status struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *Service) GetStatus() *Status {
	return &Status{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// Print renders the counter receipt and sends it to the printer.
func (s *Service) Print(doc entity.Document) error {
	data := FormatReceipt(doc)
	if err := s.printer.Print(data); err != nil {
		s.log.Warn("receipt print failed", zap.String("invoice_no", doc.InvoiceNo), zap.Error(err))
		return fmt.Errorf("printing: receipt for %s: %w", doc.InvoiceNo, err)
	}
	return nil
}
