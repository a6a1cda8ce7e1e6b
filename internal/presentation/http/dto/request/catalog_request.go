package request

// CreateServiceRequest represents a create catalog service request
type CreateServiceRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Unit          string `json:"unit" binding:"required,oneof=kg pcs"`
	PricePerUnit  int64  `json:"price_per_unit" binding:"required,gt=0"`
	DurationHours int    `json:"duration_hours" binding:"omitempty,gt=0"`
}

// UpdateServiceRequest represents a partial catalog service update
type UpdateServiceRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=100"`
	Unit          *string `json:"unit" binding:"omitempty,oneof=kg pcs"`
	PricePerUnit  *int64  `json:"price_per_unit" binding:"omitempty,gt=0"`
	DurationHours *int    `json:"duration_hours" binding:"omitempty,gt=0"`
	Active        *bool   `json:"active"`
}
