package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Service represents a priced laundry service offered by the store
type Service struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name          string           `gorm:"size:100;not null" json:"name"`
	Unit          enum.BillingUnit `gorm:"default:0" json:"unit"`
	PricePerUnit  int64            `gorm:"not null" json:"price_per_unit"`
	DurationHours int              `gorm:"default:24" json:"duration_hours"`
	Active        bool             `gorm:"default:true" json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
