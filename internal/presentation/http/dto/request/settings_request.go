package request

// UpdateSettingsRequest represents a partial store settings update
type UpdateSettingsRequest struct {
	StoreName       *string  `json:"store_name" binding:"omitempty,min=2,max=100"`
	Address         *string  `json:"address"`
	Phone           *string  `json:"phone" binding:"omitempty,idphone"`
	FooterMessage   *string  `json:"footer_message" binding:"omitempty,max=255"`
	InvoicePrefix   *string  `json:"invoice_prefix" binding:"omitempty,min=1,max=10,alphanum"`
	MinBillableKg   *float64 `json:"min_billable_kg" binding:"omitempty,gte=0"`
	EnforceMinimum  *bool    `json:"enforce_minimum"`
	MinTrxPerStamp  *int64   `json:"min_trx_per_stamp" binding:"omitempty,gte=0"`
	StampTarget     *int     `json:"stamp_target" binding:"omitempty,gt=0,lte=50"`
	RewardOption    *string  `json:"reward_option" binding:"omitempty,max=255"`
	RewardValue     *int64   `json:"reward_value" binding:"omitempty,gte=0"`
	AutoNotify      *bool    `json:"auto_notify"`
	DeliveryPerKm   *int64   `json:"delivery_per_km" binding:"omitempty,gte=0"`
	DeliveryMinimum *int64   `json:"delivery_minimum" binding:"omitempty,gte=0"`
}
