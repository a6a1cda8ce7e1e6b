package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
)

func TestCart_RepriceOnQuantityChange(t *testing.T) {
	cart := NewCart(NewPricingService(3, true), &PromoService{})
	svc := kgService("Cuci Komplit", 7000)

	if err := cart.SetQuantity(svc, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Priced().Subtotal != 21000 {
		t.Fatalf("subtotal = %d, want 21000 (floored to 3kg)", cart.Priced().Subtotal)
	}

	if err := cart.SetQuantity(svc, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Priced().Subtotal != 35000 {
		t.Fatalf("subtotal = %d, want 35000", cart.Priced().Subtotal)
	}

	// Quantity zero removes the line.
	if err := cart.SetQuantity(svc, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Priced().Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Priced().Lines))
	}
}

func TestCart_EnforceToggleIsRetroactive(t *testing.T) {
	cart := NewCart(NewPricingService(3, false), &PromoService{})
	below := kgService("Cuci Kering", 5000)
	above := kgService("Setrika", 4000)

	if err := cart.SetQuantity(below, 1.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.SetQuantity(above, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Priced().Subtotal != 7500+16000 {
		t.Fatalf("subtotal = %d, want 23500 with floor off", cart.Priced().Subtotal)
	}

	if err := cart.SetEnforceMinimum(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Priced().Subtotal != 15000+16000 {
		t.Fatalf("subtotal = %d, want 31000: only the below-floor line raised", cart.Priced().Subtotal)
	}

	if err := cart.SetEnforceMinimum(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Priced().Subtotal != 23500 {
		t.Fatalf("subtotal = %d, want 23500 after turning the floor back off", cart.Priced().Subtotal)
	}
}

func TestCart_PromoDeselectedWhenIneligible(t *testing.T) {
	cart := NewCart(NewPricingService(3, true), &PromoService{})
	svc := kgService("Cuci Komplit", 7000)
	promo := weightPromo(5, enum.DiscountKindPercent, 10)

	if err := cart.SetQuantity(svc, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.SelectPromo(promo); err != nil {
		t.Fatalf("promo must be eligible at 6kg: %v", err)
	}
	if cart.Discount() != 4200 {
		t.Fatalf("discount = %d, want 4200", cart.Discount())
	}

	// Dropping to 4kg falls below the 5kg threshold; the selection is
	// cleared rather than kept stale.
	if err := cart.SetQuantity(svc, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Promo() != nil {
		t.Fatal("ineligible promo must be deselected on reprice")
	}
	if cart.Discount() != 0 {
		t.Fatalf("discount = %d, want 0 after deselection", cart.Discount())
	}
}

func TestCart_SelectIneligiblePromoRejected(t *testing.T) {
	cart := NewCart(NewPricingService(3, true), &PromoService{})
	if err := cart.SetQuantity(kgService("Setrika", 4000), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.SelectPromo(weightPromo(5, enum.DiscountKindPercent, 10)); err == nil {
		t.Fatal("selecting an ineligible promo must be rejected")
	}
	if cart.Promo() != nil {
		t.Fatal("rejected selection must not stick")
	}
}

func TestCart_TotalFloorsAtZero(t *testing.T) {
	cart := NewCart(NewPricingService(3, true), &PromoService{})
	if err := cart.SetQuantity(kgService("Setrika", 4000), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	promo := subtotalPromo(0, enum.DiscountKindFixed, 100000)
	if err := cart.SelectPromo(promo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Total() != 0 {
		t.Fatalf("total = %d, want 0", cart.Total())
	}
}

func TestCart_EmptyCartCannotBeginPayment(t *testing.T) {
	cart := NewCart(NewPricingService(3, true), &PromoService{})
	if err := cart.BeginPayment(); err == nil {
		t.Fatal("empty cart must not reach the payment stage")
	}
}

func TestCart_CustomerRequiredBeforePayment(t *testing.T) {
	cart := NewCart(NewPricingService(3, true), &PromoService{})
	svc := kgService("Setrika", 4000)
	if err := cart.SetQuantity(svc, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cart.SelectCustomer(nil); err == nil {
		t.Fatal("nil customer selection must be rejected")
	}
	if err := cart.BeginPayment(); err == nil {
		t.Fatal("cart without a customer must not reach the payment stage")
	}

	customerID := uuid.New()
	if err := cart.SelectCustomer(&customerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.BeginPayment(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Stage() != StageChoosingPayment {
		t.Fatalf("stage = %v, want choosing_payment", cart.Stage())
	}
}

func TestCart_ConfirmedCartRejectsMutation(t *testing.T) {
	cart := NewCart(NewPricingService(3, true), &PromoService{})
	svc := kgService("Setrika", 4000)
	if err := cart.SetQuantity(svc, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	customerID := uuid.New()
	if err := cart.SelectCustomer(&customerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.BeginPayment(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart.Confirm()

	if cart.Stage() != StageConfirmed {
		t.Fatalf("stage = %v, want confirmed", cart.Stage())
	}
	if err := cart.SetQuantity(svc, 5); err == nil {
		t.Fatal("confirmed cart must reject quantity changes")
	}
	if err := cart.SelectPromo(nil); err == nil {
		t.Fatal("confirmed cart must reject promo changes")
	}
	if err := cart.SetEnforceMinimum(false); err == nil {
		t.Fatal("confirmed cart must reject floor changes")
	}
}
