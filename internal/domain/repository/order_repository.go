package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/pkg/pagination"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status     *enum.OrderStatus
	CustomerID *uuid.UUID
	Unpaid     bool
	Search     string
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create persists an order with its items and initial status log.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID loads an order with items, status logs and customer.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	// UpdateStatus sets the status and appends a status log entry in one transaction.
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus, updatedBy string) error
	// UpdatePayment overwrites the embedded payment block.
	UpdatePayment(ctx context.Context, id uuid.UUID, payment *entity.Payment) error
	UpdateDamageNote(ctx context.Context, id uuid.UUID, note *string) error
	// IncrementPrintCount bumps the print counter and returns the value before the bump.
	IncrementPrintCount(ctx context.Context, id uuid.UUID) (int, error)
	List(ctx context.Context, params *pagination.PaginationParams, filter *OrderFilter) ([]entity.Order, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
