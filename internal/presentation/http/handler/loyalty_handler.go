package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rizkyfh/laundry-pos-api/internal/application/service"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/response"
)

// LoyaltyHandler serves the public loyalty card view. The routes are
// unauthenticated: a customer opens them from a QR code on the counter,
// and a valid customer ID only ever reveals that customer's own data.
type LoyaltyHandler struct {
	loyaltyService *service.LoyaltyService
}

// NewLoyaltyHandler creates a new loyalty handler
func NewLoyaltyHandler(loyaltyService *service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

// Card handles the public card lookup
func (h *LoyaltyHandler) Card(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	card, err := h.loyaltyService.Card(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Loyalty card retrieved successfully", card)
}

// CardQR handles rendering the card link as a QR code PNG
func (h *LoyaltyHandler) CardQR(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := h.loyaltyService.CardQR(id, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "image/png", png)
}
