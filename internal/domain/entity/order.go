package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment holds the settlement details of an order. Tendered and Change
// are only meaningful for cash; other methods settle the exact amount.
type Payment struct {
	Method   enum.PaymentMethod `gorm:"default:0" json:"method"`
	Status   enum.PaymentStatus `gorm:"default:0" json:"status"`
	Paid     int64              `gorm:"default:0" json:"paid"`
	Tendered int64              `gorm:"default:0" json:"tendered"`
	Change   int64              `gorm:"default:0" json:"change"`
	// Method specific detail: bank and sender for transfers, wallet
	// provider for e-wallets.
	BankName       *string    `gorm:"size:100" json:"bank_name,omitempty"`
	SenderName     *string    `gorm:"size:100" json:"sender_name,omitempty"`
	WalletProvider *string    `gorm:"size:100" json:"wallet_provider,omitempty"`
	ReferenceNo    *string    `gorm:"size:100" json:"reference_no,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// Delivery holds the optional courier leg of an order.
type Delivery struct {
	Type       enum.DeliveryType `gorm:"default:0" json:"type"`
	DistanceKm float64           `gorm:"default:0" json:"distance_km"`
	Cost       int64             `gorm:"default:0" json:"cost"`
}

// Order represents a laundry order from intake to collection
type Order struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo  string           `gorm:"size:50;unique;not null" json:"invoice_no"`
	CustomerID *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CashierID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"cashier_id"`
	Status     enum.OrderStatus `gorm:"default:0;index" json:"status"`
	Subtotal   int64            `gorm:"default:0" json:"subtotal"`
	Discount   int64            `gorm:"default:0" json:"discount"`
	Total      int64            `gorm:"default:0" json:"total"`
	PromoID    *uuid.UUID       `gorm:"type:uuid" json:"promo_id,omitempty"`
	PromoName  *string          `gorm:"size:100" json:"promo_name,omitempty"`
	// MinBillableKg snapshots the per-kg floor in force at checkout so
	// reprints keep disclosing it after the setting changes. Zero means
	// no floor was enforced on this order.
	MinBillableKg float64        `gorm:"default:0" json:"min_billable_kg,omitempty"`
	Payment       Payment        `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Delivery      Delivery       `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	DamageNote    *string        `gorm:"type:text" json:"damage_note,omitempty"`
	PrintCount    int            `gorm:"default:0" json:"print_count"`
	StampsEarned  int            `gorm:"default:0" json:"stamps_earned"`
	EstimateAt    time.Time      `json:"estimate_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer   *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Cashier    User             `gorm:"foreignKey:CashierID" json:"-"`
	Promo      *Promo           `gorm:"foreignKey:PromoID" json:"-"`
	Items      []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	StatusLogs []OrderStatusLog `gorm:"foreignKey:OrderID" json:"status_logs,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// IsPaid reports whether the order has been settled.
func (o *Order) IsPaid() bool {
	return o.Payment.Status == enum.PaymentStatusPaid
}

// OrderItem represents one service line on an order. Quantity is the
// quantity the customer brought in; BilledQuantity is what was charged
// after the per-kg minimum floor was applied.
type OrderItem struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_id"`
	ServiceID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"service_id"`
	ServiceName    string           `gorm:"size:100;not null" json:"service_name"`
	Unit           enum.BillingUnit `gorm:"default:0" json:"unit"`
	UnitPrice      int64            `gorm:"not null" json:"unit_price"`
	Quantity       float64          `gorm:"not null" json:"quantity"`
	BilledQuantity float64          `gorm:"not null" json:"billed_quantity"`
	MinimumApplied bool             `gorm:"default:false" json:"minimum_applied"`
	LineTotal      int64            `gorm:"not null" json:"line_total"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Service Service `gorm:"foreignKey:ServiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderStatusLog is an append-only record of a status transition
type OrderStatusLog struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_id"`
	Status    enum.OrderStatus `gorm:"not null" json:"status"`
	UpdatedBy string           `gorm:"size:100" json:"updated_by"`
	CreatedAt time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new status log
func (l *OrderStatusLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderStatusLog model
func (OrderStatusLog) TableName() string {
	return "order_status_logs"
}
