package service

import (
	"math"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
)

// DefaultMinBillableKg is the per-line billing floor for weight-based
// services when the store has not configured its own.
const DefaultMinBillableKg = 3.0

// CartLine is one (service, quantity) selection before pricing.
type CartLine struct {
	Service  *entity.Service
	Quantity float64
}

// PricedLine is a cart line after the billing floor has been applied.
type PricedLine struct {
	ServiceID      uuid.UUID
	ServiceName    string
	Unit           enum.BillingUnit
	UnitPrice      int64
	Quantity       float64
	BilledQuantity float64
	MinimumApplied bool
	LineTotal      int64
}

// PricedCart is the result of pricing a full cart.
type PricedCart struct {
	Lines    []PricedLine
	Subtotal int64
	// TotalWeightKg is the sum of billed quantities over kg lines only;
	// promo weight eligibility is checked against it.
	TotalWeightKg float64
}

// PricingService turns cart selections into billable line totals.
type PricingService struct {
	minBillableKg  float64
	enforceMinimum bool
}

// NewPricingService creates a pricing service. A non-positive floor
// falls back to the default.
func NewPricingService(minBillableKg float64, enforceMinimum bool) *PricingService {
	if minBillableKg <= 0 {
		minBillableKg = DefaultMinBillableKg
	}
	return &PricingService{minBillableKg: minBillableKg, enforceMinimum: enforceMinimum}
}

// MinBillableKg returns the configured floor.
func (s *PricingService) MinBillableKg() float64 {
	return s.minBillableKg
}

// EnforceMinimum reports whether the floor is applied.
func (s *PricingService) EnforceMinimum() bool {
	return s.enforceMinimum
}

// Price computes billed quantities and line totals for the cart.
// Zero-quantity lines are dropped: removing an item is expressed as
// setting its quantity to zero. The floor only ever raises a quantity,
// so re-pricing after the enforce toggle flips never lowers a line the
// cashier set above the floor.
func (s *PricingService) Price(lines []CartLine) (*PricedCart, error) {
	cart := &PricedCart{Lines: make([]PricedLine, 0, len(lines))}

	for _, line := range lines {
		if line.Service == nil {
			return nil, apperror.NewBadRequestError("Cart line has no service")
		}
		if line.Quantity == 0 {
			continue
		}
		if line.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity must not be negative")
		}
		if line.Service.Unit == enum.BillingUnitPcs && line.Quantity != math.Trunc(line.Quantity) {
			return nil, apperror.NewBadRequestError("Piece-based quantity must be a whole number")
		}

		billed := line.Quantity
		minApplied := false
		if line.Service.Unit == enum.BillingUnitKg && s.enforceMinimum && billed < s.minBillableKg {
			billed = s.minBillableKg
			minApplied = true
		}

		priced := PricedLine{
			ServiceID:      line.Service.ID,
			ServiceName:    line.Service.Name,
			Unit:           line.Service.Unit,
			UnitPrice:      line.Service.PricePerUnit,
			Quantity:       line.Quantity,
			BilledQuantity: billed,
			MinimumApplied: minApplied,
			LineTotal:      int64(math.Round(billed * float64(line.Service.PricePerUnit))),
		}

		cart.Lines = append(cart.Lines, priced)
		cart.Subtotal += priced.LineTotal
		if priced.Unit == enum.BillingUnitKg {
			cart.TotalWeightKg += priced.BilledQuantity
		}
	}

	return cart, nil
}
