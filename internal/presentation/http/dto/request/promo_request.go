package request

import "time"

// CreatePromoRequest represents a create promo request
type CreatePromoRequest struct {
	Name          string     `json:"name" binding:"required,min=2,max=100"`
	Description   *string    `json:"description"`
	DiscountKind  string     `json:"discount_kind" binding:"required,oneof=percent fixed"`
	DiscountValue int64      `json:"discount_value" binding:"required,gt=0"`
	Eligibility   string     `json:"eligibility" binding:"required,oneof=weight subtotal"`
	MinWeightKg   float64    `json:"min_weight_kg" binding:"omitempty,gte=0"`
	MinSubtotal   int64      `json:"min_subtotal" binding:"omitempty,gte=0"`
	MaxDiscount   int64      `json:"max_discount" binding:"omitempty,gte=0"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidUntil    *time.Time `json:"valid_until"`
}

// UpdatePromoRequest represents a partial promo update
type UpdatePromoRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=2,max=100"`
	Description   *string    `json:"description"`
	DiscountKind  *string    `json:"discount_kind" binding:"omitempty,oneof=percent fixed"`
	DiscountValue *int64     `json:"discount_value" binding:"omitempty,gt=0"`
	Eligibility   *string    `json:"eligibility" binding:"omitempty,oneof=weight subtotal"`
	MinWeightKg   *float64   `json:"min_weight_kg" binding:"omitempty,gte=0"`
	MinSubtotal   *int64     `json:"min_subtotal" binding:"omitempty,gte=0"`
	MaxDiscount   *int64     `json:"max_discount" binding:"omitempty,gte=0"`
	Active        *bool      `json:"active"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidUntil    *time.Time `json:"valid_until"`
}
