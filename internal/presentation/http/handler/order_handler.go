package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/application/service"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/request"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/response"
	"github.com/rizkyfh/laundry-pos-api/pkg/pagination"
	"github.com/rizkyfh/laundry-pos-api/pkg/whatsapp"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, printerService *service.PrinterService) *OrderHandler {
	return &OrderHandler{orderService: orderService, printerService: printerService}
}

// Checkout handles creating an order from a cart
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	input := &service.CheckoutInput{
		CashierID: *userID,
		Cashier:   GetUsername(c),
		Notes:     req.Notes,
	}
	for _, l := range req.Lines {
		serviceID, err := uuid.Parse(l.ServiceID)
		if err != nil {
			response.BadRequest(c, "Invalid service ID")
			return
		}
		input.Lines = append(input.Lines, service.CheckoutLine{ServiceID: serviceID, Quantity: l.Quantity})
	}
	if req.PromoID != nil {
		promoID, err := uuid.Parse(*req.PromoID)
		if err != nil {
			response.BadRequest(c, "Invalid promo ID")
			return
		}
		input.PromoID = &promoID
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}
	input.CustomerID = &customerID

	method, _ := enum.ParsePaymentMethod(req.Payment.Method)
	input.Payment = service.PaymentInput{
		Method:         method,
		Tendered:       req.Payment.Tendered,
		BankName:       req.Payment.BankName,
		SenderName:     req.Payment.SenderName,
		WalletProvider: req.Payment.WalletProvider,
		ReferenceNo:    req.Payment.ReferenceNo,
	}
	if req.Delivery != nil && req.Delivery.Type == "delivery" {
		input.Delivery = &service.DeliveryInput{
			Type:       enum.DeliveryTypeDelivery,
			DistanceKm: req.Delivery.DistanceKm,
		}
	}

	order, err := h.orderService.Checkout(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving an order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders with filters
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	filter := &repository.OrderFilter{
		Search: c.Query("search"),
		Unpaid: c.Query("unpaid") == "true",
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := enum.ParseOrderStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Unknown order status")
			return
		}
		filter.Status = &status
	}
	if customerStr := c.Query("customer_id"); customerStr != "" {
		customerID, err := uuid.Parse(customerStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		filter.CustomerID = &customerID
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// UpdateStatus handles an order status transition
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status, _ := enum.ParseOrderStatus(req.Status)
	result, err := h.orderService.UpdateStatus(c.Request.Context(), id, status, GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := gin.H{"order": result.Order}
	if result.WhatsAppLink != "" {
		payload["whatsapp_link"] = result.WhatsAppLink
	}
	response.OK(c, "Order status updated successfully", payload)
}

// ConfirmPayment handles flipping a pending payment to paid
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.ConfirmPayment(c.Request.Context(), id, GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment confirmed", order)
}

// UpdateDamageNote handles setting or clearing the damage note
func (h *OrderHandler) UpdateDamageNote(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.DamageNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateDamageNote(c.Request.Context(), id, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Damage note updated successfully", order)
}

// Receipt handles rendering the order receipt
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	result, err := h.printerService.RenderReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt rendered successfully", result)
}

// WhatsAppLink handles building a notification deep link
func (h *OrderHandler) WhatsAppLink(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.WhatsAppLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tpl, _ := whatsapp.ParseTemplate(req.Template)
	link, err := h.orderService.WhatsAppLink(c.Request.Context(), id, tpl)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp link built successfully", gin.H{"link": link})
}

// Delete handles removing an order by explicit staff action
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}
