package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/checkout"
	"github.com/autoserve360/pos/internal/client"
	"github.com/autoserve360/pos/internal/config"
	"github.com/autoserve360/pos/internal/domain/entity"
	"github.com/autoserve360/pos/internal/printing"
	"github.com/autoserve360/pos/internal/session"
	"github.com/autoserve360/pos/pkg/logger"
	"github.com/autoserve360/pos/pkg/money"
	"github.com/autoserve360/pos/pkg/printer"
)

// Scripted demo sale against a running sandbox (or real) backend: pulls
// the catalog, rings up a cart, takes payment and prints the invoice.
//
// Credentials come from AS360_TOKEN / AS360_TENANT on first run and are
// persisted in the session store after that.
func main() {
	cfg := config.Load()

	zlog, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	sess, err := session.NewStore(cfg.Session.Path)
	if err != nil {
		zlog.Fatal("Failed to open session store", zap.Error(err))
	}

	if token := os.Getenv("AS360_TOKEN"); token != "" {
		if err := sess.SetToken(token); err != nil {
			zlog.Fatal("Failed to store token", zap.Error(err))
		}
	}
	if tenant := os.Getenv("AS360_TENANT"); tenant != "" {
		if err := sess.SetTenant(tenant); err != nil {
			zlog.Fatal("Failed to store tenant", zap.Error(err))
		}
	}

	api := client.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, sess, zlog)

	ctx := context.Background()

	// Catalog pull, the way a terminal populates its item picker.
	items, err := api.ListInventory(ctx)
	if err != nil {
		zlog.Fatal("Failed to list inventory", zap.Error(err))
	}
	zlog.Info("Catalog loaded", zap.Int("items", len(items)))

	cart := checkout.NewCart()
	name := "Ravi Kumar"
	phone := "9876543210"
	vehicle := "KA01AB1234"
	cart.SetCustomer(checkout.CustomerPatch{Name: &name, Phone: &phone, VehicleNo: &vehicle})

	if len(items) >= 2 {
		cart.AddItem(checkout.CartItem{ProductID: &items[0].ID, Name: items[0].Name, Quantity: 2, Rate: items[0].Price})
		cart.AddItem(checkout.CartItem{ProductID: &items[1].ID, Name: items[1].Name, Quantity: 1, Rate: items[1].Price})
	} else {
		cart.AddItem(checkout.CartItem{Name: "General Service", Quantity: 1, Rate: money.Paise(250000)})
	}

	thermal, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		zlog.Warn("Printer unavailable, printing to null device", zap.Error(err))
		thermal = printer.NewNullPrinter()
	}
	printSvc := printing.NewService(thermal, cfg.Printer.Type, zlog)

	list := checkout.NewTransactionList(api, 20, zlog)

	header := entity.DocumentHeader{
		DealerName: cfg.Dealer.Name,
		Address:    cfg.Dealer.Address,
		Phone:      cfg.Dealer.Phone,
		GSTIN:      cfg.Dealer.GSTIN,
	}
	workflow := checkout.NewWorkflow(cart, api, list, printSvc, header, zlog)

	_, _, total := cart.Snapshot().Totals()
	invoice, err := workflow.ProcessPayment(ctx, checkout.Payment{Method: "CASH", Paid: total})
	if err != nil {
		zlog.Fatal("Payment failed", zap.Error(err))
	}

	zlog.Info("Sale complete",
		zap.String("invoice_no", invoice.InvoiceNo),
		zap.String("status", invoice.Status.String()),
		zap.String("total", money.FormatINR(invoice.Total)),
	)

	for _, inv := range list.Invoices() {
		zlog.Info("Recent transaction",
			zap.String("invoice_no", inv.InvoiceNo),
			zap.String("customer", inv.CustomerName),
			zap.String("total", money.FormatINR(inv.Total)),
			zap.String("status", inv.Status.String()),
		)
	}
}
