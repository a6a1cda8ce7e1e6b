package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
)

func weightPromo(minKg float64, kind enum.DiscountKind, value int64) *entity.Promo {
	return &entity.Promo{
		ID:            uuid.New(),
		Name:          "Promo Kiloan",
		DiscountKind:  kind,
		DiscountValue: value,
		Eligibility:   enum.EligibilityKindWeight,
		MinWeightKg:   minKg,
		Active:        true,
	}
}

func subtotalPromo(minSubtotal int64, kind enum.DiscountKind, value int64) *entity.Promo {
	return &entity.Promo{
		ID:            uuid.New(),
		Name:          "Promo Belanja",
		DiscountKind:  kind,
		DiscountValue: value,
		Eligibility:   enum.EligibilityKindSubtotal,
		MinSubtotal:   minSubtotal,
		Active:        true,
	}
}

func TestEligible_WeightThreshold(t *testing.T) {
	s := &PromoService{}
	promo := weightPromo(5, enum.DiscountKindPercent, 10)

	if s.Eligible(promo, 100000, 4.9) {
		t.Fatal("4.9kg must not qualify for a 5kg threshold")
	}
	if !s.Eligible(promo, 100000, 5) {
		t.Fatal("5kg must qualify for a 5kg threshold")
	}
}

func TestEligible_SubtotalThreshold(t *testing.T) {
	s := &PromoService{}
	promo := subtotalPromo(50000, enum.DiscountKindFixed, 5000)

	if s.Eligible(promo, 49999, 0) {
		t.Fatal("subtotal below threshold must not qualify")
	}
	if !s.Eligible(promo, 50000, 0) {
		t.Fatal("subtotal at threshold must qualify")
	}
}

func TestEligible_InactiveAndWindow(t *testing.T) {
	s := &PromoService{}

	promo := weightPromo(5, enum.DiscountKindPercent, 10)
	promo.Active = false
	if s.Eligible(promo, 100000, 10) {
		t.Fatal("inactive promo must never qualify")
	}

	expired := weightPromo(5, enum.DiscountKindPercent, 10)
	past := time.Now().Add(-time.Hour)
	expired.ValidUntil = &past
	if s.Eligible(expired, 100000, 10) {
		t.Fatal("expired promo must never qualify")
	}

	upcoming := weightPromo(5, enum.DiscountKindPercent, 10)
	future := time.Now().Add(time.Hour)
	upcoming.ValidFrom = &future
	if s.Eligible(upcoming, 100000, 10) {
		t.Fatal("promo before its window must never qualify")
	}
}

func TestDiscount(t *testing.T) {
	s := &PromoService{}

	tests := []struct {
		name     string
		promo    *entity.Promo
		subtotal int64
		want     int64
	}{
		{"percent", weightPromo(5, enum.DiscountKindPercent, 10), 71000, 7100},
		{"percent rounds", weightPromo(5, enum.DiscountKindPercent, 15), 33333, 5000},
		{"fixed", subtotalPromo(0, enum.DiscountKindFixed, 5000), 71000, 5000},
		{"fixed capped at subtotal", subtotalPromo(0, enum.DiscountKindFixed, 100000), 71000, 71000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Discount(tt.promo, tt.subtotal); got != tt.want {
				t.Fatalf("discount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDiscount_MaxDiscountCap(t *testing.T) {
	s := &PromoService{}
	promo := weightPromo(5, enum.DiscountKindPercent, 50)
	promo.MaxDiscount = 10000

	if got := s.Discount(promo, 100000); got != 10000 {
		t.Fatalf("discount = %d, want max-discount cap 10000", got)
	}
}
