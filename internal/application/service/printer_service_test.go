package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/pkg/receipt"
)

type fakePrinter struct {
	prints [][]byte
	err    error
}

func (p *fakePrinter) Print(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.prints = append(p.prints, data)
	return nil
}

func (p *fakePrinter) Close() error      { return nil }
func (p *fakePrinter) IsConnected() bool { return true }

func newPrinterFixture() (*PrinterService, *orderFixture, *entity.Service, *fakePrinter) {
	wash := kgService("Cuci Komplit", 7000)
	f := newOrderFixture(wash)
	p := &fakePrinter{}
	svc := NewPrinterService(f.orders, f.settings, p, testLogger())
	return svc, f, wash, p
}

func TestRenderReceipt_CopyWatermarkAndCounter(t *testing.T) {
	svc, f, wash, p := newPrinterFixture()
	order := checkoutQueuedOrder(t, f, wash)

	first, err := svc.RenderReceipt(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Copy {
		t.Fatal("first render must be the original")
	}
	if first.PrintCount != 1 {
		t.Fatalf("print count = %d, want 1", first.PrintCount)
	}
	if strings.Contains(first.Text, receipt.CopyWatermark) {
		t.Fatal("original must not carry the copy watermark")
	}
	if !strings.Contains(first.Text, order.InvoiceNo) {
		t.Fatal("receipt must carry the invoice number")
	}
	if first.RawBTLink == "" {
		t.Fatal("expected a RawBT link")
	}

	second, err := svc.RenderReceipt(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Copy {
		t.Fatal("second render must be a copy")
	}
	if second.PrintCount != 2 {
		t.Fatalf("print count = %d, want 2", second.PrintCount)
	}
	if !strings.Contains(second.Text, receipt.CopyWatermark) {
		t.Fatal("copy must carry the watermark")
	}

	if len(p.prints) != 2 {
		t.Fatalf("expected 2 printer writes, got %d", len(p.prints))
	}
}

func TestRenderReceipt_PrinterFailureIsNonFatal(t *testing.T) {
	svc, f, wash, p := newPrinterFixture()
	p.err = errors.New("connection refused")
	order := checkoutQueuedOrder(t, f, wash)

	result, err := svc.RenderReceipt(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("render must survive a printer failure: %v", err)
	}
	if result.Text == "" || result.RawBTLink == "" {
		t.Fatal("text and RawBT fallback must still be produced")
	}
}

func TestRenderReceipt_UnpaidStatusOnReceipt(t *testing.T) {
	wash := kgService("Cuci Komplit", 7000)
	f := newOrderFixture(wash)
	svc := NewPrinterService(f.orders, f.settings, &fakePrinter{}, testLogger())
	customer := seedCustomer(f)

	order, err := f.svc.Checkout(context.Background(), &CheckoutInput{
		Lines:      []CheckoutLine{{ServiceID: wash.ID, Quantity: 4}},
		CustomerID: &customer.ID,
		CashierID:  uuid.New(),
		Payment:    PaymentInput{Method: enum.PaymentMethodTransfer},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	result, err := svc.RenderReceipt(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Text, "BELUM LUNAS") {
		t.Fatal("pending payment must print as BELUM LUNAS")
	}
}

func TestRenderReceipt_FloorDisclosureSurvivesSettingsChange(t *testing.T) {
	svc, f, wash, _ := newPrinterFixture()
	customer := seedCustomer(f)

	// 2kg below the 3kg floor, so the line is floored and the order
	// snapshots the floor in force at checkout.
	order, err := f.svc.Checkout(context.Background(), &CheckoutInput{
		Lines:      []CheckoutLine{{ServiceID: wash.ID, Quantity: 2}},
		CustomerID: &customer.ID,
		CashierID:  uuid.New(),
		Cashier:    "budi",
		Payment:    PaymentInput{Method: enum.PaymentMethodQRIS},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// The store later turns the floor off and raises it; the historical
	// order keeps disclosing what it was billed against.
	f.settings.settings.EnforceMinimum = false
	f.settings.settings.MinBillableKg = 5

	result, err := svc.RenderReceipt(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Text, "(min 3kg)") {
		t.Fatalf("reprint must keep the floor from checkout time, got:\n%s", result.Text)
	}
	if strings.Contains(result.Text, "(min 5kg)") || strings.Contains(result.Text, "(min 0kg)") {
		t.Fatalf("reprint must not pick up the current settings, got:\n%s", result.Text)
	}
}
