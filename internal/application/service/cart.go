package service

import (
	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
)

// CartStage is the explicit checkout stage.
type CartStage int

const (
	StageBuilding CartStage = iota
	StageChoosingPromo
	StageChoosingCustomer
	StageChoosingPayment
	StageConfirmed
)

func (s CartStage) String() string {
	return [...]string{"building", "choosing_promo", "choosing_customer", "choosing_payment", "confirmed"}[s]
}

// Cart is the checkout state machine. All computation is pure and
// synchronous; the cart only holds selections, and pricing is
// recomputed on every mutation so promo eligibility is always checked
// against the current totals.
type Cart struct {
	pricing *PricingService
	promos  *PromoService

	stage      CartStage
	lines      []CartLine
	priced     *PricedCart
	promo      *entity.Promo
	discount   int64
	customerID *uuid.UUID
}

// NewCart creates an empty cart in the building stage.
func NewCart(pricing *PricingService, promos *PromoService) *Cart {
	return &Cart{
		pricing: pricing,
		promos:  promos,
		priced:  &PricedCart{},
	}
}

// Stage returns the current checkout stage.
func (c *Cart) Stage() CartStage { return c.stage }

// Priced returns the current priced snapshot.
func (c *Cart) Priced() *PricedCart { return c.priced }

// Promo returns the selected promo, or nil.
func (c *Cart) Promo() *entity.Promo { return c.promo }

// Discount returns the discount for the selected promo.
func (c *Cart) Discount() int64 { return c.discount }

// Total returns max(0, subtotal - discount).
func (c *Cart) Total() int64 {
	total := c.priced.Subtotal - c.discount
	if total < 0 {
		total = 0
	}
	return total
}

// CustomerID returns the selected customer, or nil when none has been
// selected yet.
func (c *Cart) CustomerID() *uuid.UUID { return c.customerID }

// SetQuantity sets the requested quantity for a service. Quantity zero
// removes the line. The cart re-prices and re-checks the selected
// promo, deselecting it if the change made it ineligible.
func (c *Cart) SetQuantity(svc *entity.Service, qty float64) error {
	if c.stage == StageConfirmed {
		return apperror.NewConflictError("Cart already checked out")
	}
	replaced := false
	for i := range c.lines {
		if c.lines[i].Service.ID == svc.ID {
			c.lines[i].Quantity = qty
			replaced = true
			break
		}
	}
	if !replaced && qty != 0 {
		c.lines = append(c.lines, CartLine{Service: svc, Quantity: qty})
	}
	return c.reprice()
}

// SetEnforceMinimum flips the billing floor and re-prices. Raising
// happens retroactively for lines below the floor; quantities the
// cashier set above the floor are untouched.
func (c *Cart) SetEnforceMinimum(enforce bool) error {
	if c.stage == StageConfirmed {
		return apperror.NewConflictError("Cart already checked out")
	}
	c.pricing = NewPricingService(c.pricing.MinBillableKg(), enforce)
	return c.reprice()
}

func (c *Cart) reprice() error {
	priced, err := c.pricing.Price(c.lines)
	if err != nil {
		return err
	}
	c.priced = priced

	// Eligibility is re-checked on every cart change; a selected promo
	// that fell below its threshold is deselected, never kept stale.
	if c.promo != nil && !c.promos.Eligible(c.promo, priced.Subtotal, priced.TotalWeightKg) {
		c.promo = nil
	}
	if c.promo != nil {
		c.discount = c.promos.Discount(c.promo, priced.Subtotal)
	} else {
		c.discount = 0
	}
	return nil
}

// SelectPromo applies a promo, or clears the selection when nil.
func (c *Cart) SelectPromo(promo *entity.Promo) error {
	if c.stage == StageConfirmed {
		return apperror.NewConflictError("Cart already checked out")
	}
	if promo == nil {
		c.promo = nil
		c.discount = 0
		return nil
	}
	if !c.promos.Eligible(promo, c.priced.Subtotal, c.priced.TotalWeightKg) {
		return apperror.NewUnprocessableError("Promo is not eligible for this cart")
	}
	c.promo = promo
	c.discount = c.promos.Discount(promo, c.priced.Subtotal)
	if c.stage == StageBuilding {
		c.stage = StageChoosingPromo
	}
	return nil
}

// SelectCustomer attaches a customer. Every order belongs to a
// customer, so a nil selection is rejected.
func (c *Cart) SelectCustomer(id *uuid.UUID) error {
	if c.stage == StageConfirmed {
		return apperror.NewConflictError("Cart already checked out")
	}
	if id == nil {
		return apperror.NewBadRequestError("Customer is required")
	}
	c.customerID = id
	if c.stage < StageChoosingCustomer {
		c.stage = StageChoosingCustomer
	}
	return nil
}

// BeginPayment validates the cart is checkout-ready and moves to the
// payment stage.
func (c *Cart) BeginPayment() error {
	if c.stage == StageConfirmed {
		return apperror.NewConflictError("Cart already checked out")
	}
	if len(c.priced.Lines) == 0 {
		return apperror.NewBadRequestError("Cart is empty")
	}
	if c.customerID == nil {
		return apperror.NewBadRequestError("Customer is required")
	}
	c.stage = StageChoosingPayment
	return nil
}

// Confirm marks the cart checked out. Callers persist the order first;
// a confirmed cart rejects further mutation.
func (c *Cart) Confirm() {
	c.stage = StageConfirmed
}
