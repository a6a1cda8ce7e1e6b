package entity

import (
	"time"
)

// StoreSettings is the single row of store-wide configuration: the
// receipt profile, loyalty program parameters and billing rules.
type StoreSettings struct {
	ID              uint      `gorm:"primary_key" json:"id"`
	StoreName       string    `gorm:"size:100;not null" json:"store_name"`
	Address         string    `gorm:"type:text" json:"address"`
	Phone           string    `gorm:"size:50" json:"phone"`
	FooterMessage   string    `gorm:"size:255" json:"footer_message"`
	InvoicePrefix   string    `gorm:"size:10;default:INV" json:"invoice_prefix"`
	MinBillableKg   float64   `gorm:"default:3" json:"min_billable_kg"`
	EnforceMinimum  bool      `gorm:"default:true" json:"enforce_minimum"`
	MinTrxPerStamp  int64     `gorm:"default:20000" json:"min_trx_per_stamp"`
	StampTarget     int       `gorm:"default:10" json:"stamp_target"`
	RewardOption    string    `gorm:"size:255" json:"reward_option"`
	RewardValue     int64     `gorm:"default:0" json:"reward_value"`
	AutoNotify      bool      `gorm:"default:false" json:"auto_notify"`
	DeliveryPerKm   int64     `gorm:"default:0" json:"delivery_per_km"`
	DeliveryMinimum int64     `gorm:"default:0" json:"delivery_minimum"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
