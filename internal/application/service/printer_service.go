package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/printer"
	"github.com/rizkyfh/laundry-pos-api/pkg/receipt"
	"github.com/sirupsen/logrus"
)

// PrinterService renders order receipts and hands them to the
// configured printer.
type PrinterService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	printer      printer.Printer
	log          *logrus.Logger
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	p printer.Printer,
	log *logrus.Logger,
) *PrinterService {
	return &PrinterService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		printer:      p,
		log:          log,
	}
}

// ReceiptResult is a rendered receipt plus its transport encodings.
type ReceiptResult struct {
	Text       string `json:"text"`
	RawBTLink  string `json:"rawbt_link"`
	Copy       bool   `json:"copy"`
	PrintCount int    `json:"print_count"`
}

// RenderReceipt renders the order's receipt. The first render is the
// original; every later render carries the copy watermark. Each call
// bumps the order's print counter.
func (s *PrinterService) RenderReceipt(ctx context.Context, orderID uuid.UUID) (*ReceiptResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	before, err := s.orderRepo.IncrementPrintCount(ctx, orderID)
	if err != nil {
		return nil, err
	}
	isCopy := before > 0

	text := receipt.Render(buildReceiptData(order, settings, isCopy))

	if err := s.printer.Print([]byte(text)); err != nil {
		// Rendering stays usable even when the thermal printer is
		// offline; the RawBT link is the fallback transport.
		s.log.WithError(err).Warn("printer write failed")
	}

	return &ReceiptResult{
		Text:       text,
		RawBTLink:  printer.RawBTLink([]byte(text)),
		Copy:       isCopy,
		PrintCount: before + 1,
	}, nil
}

func buildReceiptData(order *entity.Order, settings *entity.StoreSettings, isCopy bool) *receipt.Data {
	data := &receipt.Data{
		Header: receipt.Header{
			StoreName: settings.StoreName,
			Address:   settings.Address,
			Phone:     settings.Phone,
		},
		InvoiceNo:     order.InvoiceNo,
		Date:          order.CreatedAt,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Total:         order.Total,
		FooterMessage: settings.FooterMessage,
		Copy:          isCopy,
	}
	if order.DamageNote != nil {
		data.DamageNote = *order.DamageNote
	}
	// The floor disclosed on the receipt is the one snapshotted at
	// checkout, so reprints survive later settings changes.
	data.MinBillableKg = order.MinBillableKg
	if order.Customer != nil {
		data.CustomerName = order.Customer.Name
	}
	for _, item := range order.Items {
		data.Items = append(data.Items, receipt.Item{
			Name:           item.ServiceName,
			Qty:            item.BilledQuantity,
			UnitPrice:      item.UnitPrice,
			Total:          item.LineTotal,
			MinimumApplied: item.MinimumApplied,
		})
	}
	data.Payment = receipt.Payment{
		Method:   order.Payment.Method.String(),
		Paid:     order.Payment.Status == enum.PaymentStatusPaid,
		Tendered: order.Payment.Tendered,
		Change:   order.Payment.Change,
	}
	if order.Delivery.Type == enum.DeliveryTypeDelivery {
		data.Delivery = &receipt.Delivery{
			Type:       order.Delivery.Type.String(),
			DistanceKm: order.Delivery.DistanceKm,
			Cost:       order.Delivery.Cost,
		}
	}
	return data
}
