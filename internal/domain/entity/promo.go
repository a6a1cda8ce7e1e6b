package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Promo represents a discount rule the cashier can apply to a cart.
// Eligibility is checked against the priced cart: weight promos look at
// the total billed kilograms, subtotal promos at the pre-discount amount.
type Promo struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name          string               `gorm:"size:100;not null" json:"name"`
	Description   *string              `gorm:"type:text" json:"description,omitempty"`
	DiscountKind  enum.DiscountKind    `gorm:"default:0" json:"discount_kind"`
	DiscountValue int64                `gorm:"not null" json:"discount_value"`
	Eligibility   enum.EligibilityKind `gorm:"default:0" json:"eligibility"`
	MinWeightKg   float64              `gorm:"default:0" json:"min_weight_kg"`
	MinSubtotal   int64                `gorm:"default:0" json:"min_subtotal"`
	MaxDiscount   int64                `gorm:"default:0" json:"max_discount"`
	Active        bool                 `gorm:"default:true" json:"active"`
	ValidFrom     *time.Time           `json:"valid_from,omitempty"`
	ValidUntil    *time.Time           `json:"valid_until,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new promo
func (p *Promo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Promo model
func (Promo) TableName() string {
	return "promos"
}

// InWindow reports whether the promo is inside its validity window at t.
// A nil bound is open ended.
func (p *Promo) InWindow(t time.Time) bool {
	if p.ValidFrom != nil && t.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && t.After(*p.ValidUntil) {
		return false
	}
	return true
}
