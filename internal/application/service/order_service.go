package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/internal/realtime"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/pagination"
	"github.com/rizkyfh/laundry-pos-api/pkg/utils"
	"github.com/rizkyfh/laundry-pos-api/pkg/whatsapp"
	"github.com/sirupsen/logrus"
)

// OrderService handles checkout, the fulfillment lifecycle and
// payment confirmation.
type OrderService struct {
	orderRepo    repository.OrderRepository
	serviceRepo  repository.ServiceRepository
	promoRepo    repository.PromoRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	publisher    realtime.Publisher
	log          *logrus.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	serviceRepo repository.ServiceRepository,
	promoRepo repository.PromoRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	publisher realtime.Publisher,
	log *logrus.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		serviceRepo:  serviceRepo,
		promoRepo:    promoRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		publisher:    publisher,
		log:          log,
	}
}

// CheckoutLine is one (service, quantity) selection in a checkout request.
type CheckoutLine struct {
	ServiceID uuid.UUID
	Quantity  float64
}

// DeliveryInput is the optional courier leg of a checkout.
type DeliveryInput struct {
	Type       enum.DeliveryType
	DistanceKm float64
}

// CheckoutInput represents a full checkout request
type CheckoutInput struct {
	Lines      []CheckoutLine
	PromoID    *uuid.UUID
	CustomerID *uuid.UUID
	CashierID  uuid.UUID
	Cashier    string
	Payment    PaymentInput
	Delivery   *DeliveryInput
	Notes      *string
}

// Checkout prices the cart, applies the promo, reconciles payment and
// persists the order with its initial status log. Validation failures
// reject before anything is written.
func (s *OrderService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}
	// Every order belongs to a customer; there is no walk-in fallback.
	if input.CustomerID == nil {
		return nil, apperror.NewBadRequestError("Customer is required")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(input.Lines))
	for _, l := range input.Lines {
		ids = append(ids, l.ServiceID)
	}
	services, err := s.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Service, len(services))
	for i := range services {
		byID[services[i].ID] = &services[i]
	}

	cartLines := make([]CartLine, 0, len(input.Lines))
	maxDuration := 0
	for _, l := range input.Lines {
		svc, ok := byID[l.ServiceID]
		if !ok {
			return nil, apperror.NewNotFoundError("Service")
		}
		if !svc.Active {
			return nil, apperror.NewUnprocessableError("Service " + svc.Name + " is inactive")
		}
		cartLines = append(cartLines, CartLine{Service: svc, Quantity: l.Quantity})
		if l.Quantity > 0 && svc.DurationHours > maxDuration {
			maxDuration = svc.DurationHours
		}
	}

	pricing := NewPricingService(settings.MinBillableKg, settings.EnforceMinimum)
	priced, err := pricing.Price(cartLines)
	if err != nil {
		return nil, err
	}
	if len(priced.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	var discount int64
	var promoID *uuid.UUID
	var promoName *string
	if input.PromoID != nil {
		promo, err := s.promoRepo.GetByID(ctx, *input.PromoID)
		if err != nil {
			return nil, err
		}
		if promo == nil {
			return nil, apperror.NewNotFoundError("Promo")
		}
		eval := PromoService{}
		if !eval.Eligible(promo, priced.Subtotal, priced.TotalWeightKg) {
			return nil, apperror.NewUnprocessableError("Promo is not eligible for this cart")
		}
		discount = eval.Discount(promo, priced.Subtotal)
		// Snapshot name and value; later promo edits never rewrite history.
		promoID = &promo.ID
		name := promo.Name
		promoName = &name
	}

	total := priced.Subtotal - discount
	if total < 0 {
		total = 0
	}

	var delivery entity.Delivery
	if input.Delivery != nil && input.Delivery.Type == enum.DeliveryTypeDelivery {
		cost := int64(math.Round(input.Delivery.DistanceKm * float64(settings.DeliveryPerKm)))
		if cost < settings.DeliveryMinimum {
			cost = settings.DeliveryMinimum
		}
		delivery = entity.Delivery{
			Type:       enum.DeliveryTypeDelivery,
			DistanceKm: input.Delivery.DistanceKm,
			Cost:       cost,
		}
		total += cost
	}

	customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	payment, err := ReconcilePayment(&input.Payment, total)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		InvoiceNo:  utils.GenerateInvoiceNumber(settings.InvoicePrefix),
		CustomerID: input.CustomerID,
		CashierID:  input.CashierID,
		Status:     enum.OrderStatusQueued,
		Subtotal:   priced.Subtotal,
		Discount:   discount,
		Total:      total,
		PromoID:    promoID,
		PromoName:  promoName,
		Payment:    *payment,
		Delivery:   delivery,
		Notes:      input.Notes,
		EstimateAt: now.Add(time.Duration(maxDuration) * time.Hour),
		StatusLogs: []entity.OrderStatusLog{
			{Status: enum.OrderStatusQueued, UpdatedBy: input.Cashier},
		},
	}
	if settings.EnforceMinimum {
		order.MinBillableKg = settings.MinBillableKg
	}
	for _, line := range priced.Lines {
		order.Items = append(order.Items, entity.OrderItem{
			ServiceID:      line.ServiceID,
			ServiceName:    line.ServiceName,
			Unit:           line.Unit,
			UnitPrice:      line.UnitPrice,
			Quantity:       line.Quantity,
			BilledQuantity: line.BilledQuantity,
			MinimumApplied: line.MinimumApplied,
			LineTotal:      line.LineTotal,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"invoice_no": order.InvoiceNo,
		"total":      order.Total,
		"items":      len(order.Items),
	}).Info("order created")

	s.publisher.Publish(realtime.Event{
		Kind:      realtime.EventOrderCreated,
		OrderID:   order.ID.String(),
		InvoiceNo: order.InvoiceNo,
		Status:    order.Status.String(),
	})

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns orders with pagination and filters
func (s *OrderService) ListOrders(ctx context.Context, params *pagination.PaginationParams, filter *repository.OrderFilter) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params, filter)
}

// StatusUpdateResult carries the updated order plus the notification
// hand-off, when auto-notify selected a template.
type StatusUpdateResult struct {
	Order        *entity.Order
	WhatsAppLink string
}

// UpdateStatus moves the order to any fulfillment status. Stage jumps
// are allowed in both directions; staff legitimately skip stages for
// same-day walk-ins. Every transition appends one immutable log entry.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus, updatedBy string) (*StatusUpdateResult, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown order status")
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return &StatusUpdateResult{Order: order}, nil
	}
	// Fulfillment stages may be jumped in either direction; only a
	// cancelled order is frozen.
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewConflictError("Order is cancelled")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status, updatedBy); err != nil {
		return nil, err
	}
	order, err = s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"invoice_no": order.InvoiceNo,
		"status":     status.String(),
		"updated_by": updatedBy,
	}).Info("order status updated")

	s.publisher.Publish(realtime.Event{
		Kind:      realtime.EventStatusChanged,
		OrderID:   order.ID.String(),
		InvoiceNo: order.InvoiceNo,
		Status:    status.String(),
	})

	result := &StatusUpdateResult{Order: order}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings.AutoNotify {
		if link, ok := s.notificationLink(order, settings, status); ok {
			result.WhatsAppLink = link
		}
	}
	return result, nil
}

// notificationLink selects the message template for a transition into
// in_progress, ready or collected. Dispatch is the caller's problem;
// this only builds the deep link.
func (s *OrderService) notificationLink(order *entity.Order, settings *entity.StoreSettings, status enum.OrderStatus) (string, bool) {
	if order.Customer == nil || order.Customer.Phone == "" {
		return "", false
	}

	var tpl whatsapp.Template
	switch status {
	case enum.OrderStatusInProgress:
		tpl = whatsapp.TemplateInProgress
	case enum.OrderStatusReady:
		tpl = whatsapp.TemplateReady
	case enum.OrderStatusCollected:
		tpl = whatsapp.TemplateCollected
	default:
		return "", false
	}

	body := whatsapp.Body(tpl, whatsapp.Params{
		CustomerName: order.Customer.Name,
		StoreName:    settings.StoreName,
		InvoiceNo:    order.InvoiceNo,
		Total:        order.Total,
		Estimate:     order.EstimateAt.Format("02/01/2006 15:04"),
	})
	return whatsapp.Link(whatsapp.NormalizePhone(order.Customer.Phone), body), true
}

// WhatsAppLink builds the deep link for a named template on demand.
func (s *OrderService) WhatsAppLink(ctx context.Context, id uuid.UUID, tpl whatsapp.Template) (string, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return "", err
	}
	if order.Customer == nil || order.Customer.Phone == "" {
		return "", apperror.NewUnprocessableError("Order has no customer phone")
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	body := whatsapp.Body(tpl, whatsapp.Params{
		CustomerName: order.Customer.Name,
		StoreName:    settings.StoreName,
		InvoiceNo:    order.InvoiceNo,
		Total:        order.Total,
		Estimate:     order.EstimateAt.Format("02/01/2006 15:04"),
	})
	return whatsapp.Link(whatsapp.NormalizePhone(order.Customer.Phone), body), nil
}

// ConfirmPayment flips a pending transfer or e-wallet payment to paid.
// Idempotent: confirming an already-paid order changes nothing.
func (s *OrderService) ConfirmPayment(ctx context.Context, id uuid.UUID, confirmedBy string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	payment := order.Payment
	if !ConfirmPayment(&payment) {
		return order, nil
	}

	if err := s.orderRepo.UpdatePayment(ctx, id, &payment); err != nil {
		return nil, err
	}
	order.Payment = payment

	s.log.WithFields(logrus.Fields{
		"invoice_no":   order.InvoiceNo,
		"confirmed_by": confirmedBy,
	}).Info("payment confirmed")

	s.publisher.Publish(realtime.Event{
		Kind:      realtime.EventPaymentSet,
		OrderID:   order.ID.String(),
		InvoiceNo: order.InvoiceNo,
	})

	return order, nil
}

// UpdateDamageNote sets or clears the damage/condition note.
func (s *OrderService) UpdateDamageNote(ctx context.Context, id uuid.UUID, note *string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateDamageNote(ctx, id, note); err != nil {
		return nil, err
	}
	order.DamageNote = note
	return order, nil
}

// DeleteOrder removes an order by explicit staff action.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, order.ID)
}
