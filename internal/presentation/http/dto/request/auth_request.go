package request

// LoginRequest represents a PIN login request
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	PIN      string `json:"pin" binding:"required,min=4,max=12,numeric"`
}

// ChangePINRequest represents a PIN change request
type ChangePINRequest struct {
	CurrentPIN string `json:"current_pin" binding:"required"`
	NewPIN     string `json:"new_pin" binding:"required,min=4,max=12,numeric"`
	ConfirmPIN string `json:"confirm_pin" binding:"required,eqfield=NewPIN"`
}
