package request

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Indonesian mobile numbers: optional +62/62/0 prefix then 8-13 digits.
var idPhonePattern = regexp.MustCompile(`^(\+62|62|0)[0-9]{8,13}$`)

// RegisterIDPhoneValidation registers the "idphone" rule on the gin
// binding validator.
func RegisterIDPhoneValidation(v *validator.Validate) error {
	return v.RegisterValidation("idphone", func(fl validator.FieldLevel) bool {
		return idPhonePattern.MatchString(fl.Field().String())
	})
}

// CreateCustomerRequest represents a create customer request
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Phone   string  `json:"phone" binding:"required,idphone"`
	Address *string `json:"address"`
}

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,idphone"`
	Address *string `json:"address"`
}

// AddStampsRequest represents a manual stamp accrual request
type AddStampsRequest struct {
	Stamps int `json:"stamps" binding:"required,gt=0,lte=100"`
}
