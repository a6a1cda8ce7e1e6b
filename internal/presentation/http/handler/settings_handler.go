package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rizkyfh/laundry-pos-api/internal/application/service"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/request"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the store settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles a partial settings update
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		StoreName:       req.StoreName,
		Address:         req.Address,
		Phone:           req.Phone,
		FooterMessage:   req.FooterMessage,
		InvoicePrefix:   req.InvoicePrefix,
		MinBillableKg:   req.MinBillableKg,
		EnforceMinimum:  req.EnforceMinimum,
		MinTrxPerStamp:  req.MinTrxPerStamp,
		StampTarget:     req.StampTarget,
		RewardOption:    req.RewardOption,
		RewardValue:     req.RewardValue,
		AutoNotify:      req.AutoNotify,
		DeliveryPerKm:   req.DeliveryPerKm,
		DeliveryMinimum: req.DeliveryMinimum,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
