package service

import (
	"time"

	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/receipt"
)

// PaymentInput is the method-specific input collected at checkout.
type PaymentInput struct {
	Method         enum.PaymentMethod
	Tendered       int64   // cash only
	BankName       *string // transfer only
	SenderName     *string // transfer only
	WalletProvider *string // e-wallet only
	ReferenceNo    *string // transfer, e-wallet and QRIS
}

// ReconcilePayment turns a payment input and the total due into the
// payment record stored on the order.
//
// Cash settles immediately and requires tendered >= total; short cash
// is rejected before any order is written. QRIS is assumed settled at
// point of scan. Transfer and e-wallet record the total and stay
// pending until a manual confirmation.
func ReconcilePayment(input *PaymentInput, total int64) (*entity.Payment, error) {
	if !input.Method.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}

	now := time.Now()
	payment := &entity.Payment{
		Method: input.Method,
		Paid:   total,
	}

	// Only the fields the method actually collects are kept; a bank
	// name sent alongside a cash payment is dropped, not stored.
	switch input.Method {
	case enum.PaymentMethodCash:
		if input.Tendered < total {
			return nil, apperror.NewUnprocessableError(
				"Insufficient cash: tendered " + receipt.FormatRupiah(input.Tendered) +
					" for total " + receipt.FormatRupiah(total))
		}
		payment.Tendered = input.Tendered
		payment.Change = input.Tendered - total
		payment.Status = enum.PaymentStatusPaid
		payment.PaidAt = &now
	case enum.PaymentMethodQRIS:
		payment.ReferenceNo = input.ReferenceNo
		payment.Status = enum.PaymentStatusPaid
		payment.PaidAt = &now
	case enum.PaymentMethodTransfer:
		payment.BankName = input.BankName
		payment.SenderName = input.SenderName
		payment.ReferenceNo = input.ReferenceNo
		payment.Status = enum.PaymentStatusPending
	case enum.PaymentMethodEWallet:
		payment.WalletProvider = input.WalletProvider
		payment.ReferenceNo = input.ReferenceNo
		payment.Status = enum.PaymentStatusPending
	}

	return payment, nil
}

// ConfirmPayment flips a pending payment to paid without touching the
// recorded amount. Confirming an already-paid payment is a no-op; the
// bool reports whether anything changed.
func ConfirmPayment(payment *entity.Payment) bool {
	if payment.Status == enum.PaymentStatusPaid {
		return false
	}
	now := time.Now()
	payment.Status = enum.PaymentStatusPaid
	payment.PaidAt = &now
	return true
}
