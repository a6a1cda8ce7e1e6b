package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rizkyfh/laundry-pos-api/internal/application/service"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/request"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles service catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Create handles adding a catalog service
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	unit, _ := parseBillingUnit(req.Unit)
	input := &service.CreateServiceInput{
		Name:          req.Name,
		Unit:          unit,
		PricePerUnit:  req.PricePerUnit,
		DurationHours: req.DurationHours,
	}
	if input.DurationHours == 0 {
		input.DurationHours = 24
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// Get handles retrieving a catalog service
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// List handles listing the catalog
func (h *CatalogHandler) List(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") == "true"

	services, err := h.catalogService.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", services)
}

// Update handles editing a catalog service
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateServiceInput{
		Name:          req.Name,
		PricePerUnit:  req.PricePerUnit,
		DurationHours: req.DurationHours,
		Active:        req.Active,
	}
	if req.Unit != nil {
		unit, _ := parseBillingUnit(*req.Unit)
		input.Unit = &unit
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// Delete handles removing a catalog service
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service deleted successfully", nil)
}

func parseBillingUnit(s string) (enum.BillingUnit, bool) {
	switch s {
	case "kg":
		return enum.BillingUnitKg, true
	case "pcs":
		return enum.BillingUnitPcs, true
	}
	return enum.BillingUnitKg, false
}
