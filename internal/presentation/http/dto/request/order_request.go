package request

// CheckoutLineRequest is one (service, quantity) selection
type CheckoutLineRequest struct {
	ServiceID string  `json:"service_id" binding:"required,uuid"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// DeliveryRequest is the optional courier leg of a checkout
type DeliveryRequest struct {
	Type       string  `json:"type" binding:"required,oneof=dropoff delivery"`
	DistanceKm float64 `json:"distance_km" binding:"omitempty,gte=0"`
}

// PaymentRequest is the method-specific payment input
type PaymentRequest struct {
	Method         string  `json:"method" binding:"required,oneof=cash transfer ewallet qris"`
	Tendered       int64   `json:"tendered" binding:"omitempty,gte=0"`
	BankName       *string `json:"bank_name" binding:"omitempty,max=100"`
	SenderName     *string `json:"sender_name" binding:"omitempty,max=100"`
	WalletProvider *string `json:"wallet_provider" binding:"omitempty,max=100"`
	ReferenceNo    *string `json:"reference_no" binding:"omitempty,max=100"`
}

// CheckoutRequest represents a full checkout request
type CheckoutRequest struct {
	Lines      []CheckoutLineRequest `json:"lines" binding:"required,min=1,dive"`
	PromoID    *string               `json:"promo_id" binding:"omitempty,uuid"`
	CustomerID string                `json:"customer_id" binding:"required,uuid"`
	Payment    PaymentRequest        `json:"payment" binding:"required"`
	Delivery   *DeliveryRequest      `json:"delivery"`
	Notes      *string               `json:"notes"`
}

// UpdateStatusRequest represents an order status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=queued in_progress ready collected cancelled"`
}

// DamageNoteRequest sets or clears the damage note
type DamageNoteRequest struct {
	Note *string `json:"note"`
}

// WhatsAppLinkRequest selects a notification template
type WhatsAppLinkRequest struct {
	Template string `json:"template" binding:"required,oneof=masuk proses selesai ambil loyalty"`
}
