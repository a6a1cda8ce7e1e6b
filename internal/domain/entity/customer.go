package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer of the laundry store
type Customer struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Phone       string         `gorm:"size:50;uniqueIndex;not null" json:"phone"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	Stamps      int            `gorm:"default:0" json:"stamps"`
	TotalStamps int            `gorm:"default:0" json:"total_stamps"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders      []Order            `gorm:"foreignKey:CustomerID" json:"-"`
	Redemptions []RewardRedemption `gorm:"foreignKey:CustomerID" json:"redemptions,omitempty"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// RewardRedemption records a loyalty reward being claimed. Reward and
// RewardValue are snapshots of the settings at redemption time.
type RewardRedemption struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Reward      string    `gorm:"size:255;not null" json:"reward"`
	RewardValue int64     `gorm:"default:0" json:"reward_value"`
	StampsUsed  int       `gorm:"not null" json:"stamps_used"`
	RedeemedBy  string    `gorm:"size:100" json:"redeemed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new redemption
func (r *RewardRedemption) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RewardRedemption model
func (RewardRedemption) TableName() string {
	return "reward_redemptions"
}
