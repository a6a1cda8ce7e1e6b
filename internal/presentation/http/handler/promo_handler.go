package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rizkyfh/laundry-pos-api/internal/application/service"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/request"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/response"
)

// PromoHandler handles promo HTTP requests
type PromoHandler struct {
	promoService *service.PromoService
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(promoService *service.PromoService) *PromoHandler {
	return &PromoHandler{promoService: promoService}
}

// Create handles creating a promo
func (h *PromoHandler) Create(c *gin.Context) {
	var req request.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	kind, _ := parseDiscountKind(req.DiscountKind)
	eligibility, _ := parseEligibilityKind(req.Eligibility)
	input := &service.CreatePromoInput{
		Name:          req.Name,
		Description:   req.Description,
		DiscountKind:  kind,
		DiscountValue: req.DiscountValue,
		Eligibility:   eligibility,
		MinWeightKg:   req.MinWeightKg,
		MinSubtotal:   req.MinSubtotal,
		MaxDiscount:   req.MaxDiscount,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
	}

	promo, err := h.promoService.CreatePromo(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Promo created successfully", promo)
}

// Get handles retrieving a promo
func (h *PromoHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid promo ID")
		return
	}

	promo, err := h.promoService.GetPromo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promo retrieved successfully", promo)
}

// List handles listing promos. With subtotal and weight query params it
// returns only the promos eligible for that cart snapshot.
func (h *PromoHandler) List(c *gin.Context) {
	if c.Query("subtotal") != "" || c.Query("weight") != "" {
		subtotal, _ := strconv.ParseInt(c.DefaultQuery("subtotal", "0"), 10, 64)
		weight, _ := strconv.ParseFloat(c.DefaultQuery("weight", "0"), 64)

		promos, err := h.promoService.EligiblePromos(c.Request.Context(), subtotal, weight)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Eligible promos retrieved successfully", promos)
		return
	}

	activeOnly := c.DefaultQuery("active", "true") == "true"
	promos, err := h.promoService.ListPromos(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promos retrieved successfully", promos)
}

// Update handles editing a promo
func (h *PromoHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid promo ID")
		return
	}

	var req request.UpdatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdatePromoInput{
		Name:          req.Name,
		Description:   req.Description,
		DiscountValue: req.DiscountValue,
		MinWeightKg:   req.MinWeightKg,
		MinSubtotal:   req.MinSubtotal,
		MaxDiscount:   req.MaxDiscount,
		Active:        req.Active,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
	}
	if req.DiscountKind != nil {
		kind, _ := parseDiscountKind(*req.DiscountKind)
		input.DiscountKind = &kind
	}
	if req.Eligibility != nil {
		eligibility, _ := parseEligibilityKind(*req.Eligibility)
		input.Eligibility = &eligibility
	}

	promo, err := h.promoService.UpdatePromo(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promo updated successfully", promo)
}

// Delete handles removing a promo
func (h *PromoHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid promo ID")
		return
	}

	if err := h.promoService.DeletePromo(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promo deleted successfully", nil)
}

func parseDiscountKind(s string) (enum.DiscountKind, bool) {
	switch s {
	case "percent":
		return enum.DiscountKindPercent, true
	case "fixed":
		return enum.DiscountKindFixed, true
	}
	return enum.DiscountKindPercent, false
}

func parseEligibilityKind(s string) (enum.EligibilityKind, bool) {
	switch s {
	case "weight":
		return enum.EligibilityKindWeight, true
	case "subtotal":
		return enum.EligibilityKindSubtotal, true
	}
	return enum.EligibilityKindWeight, false
}
