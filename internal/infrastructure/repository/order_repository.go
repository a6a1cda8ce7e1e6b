package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	domainRepo "github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("StatusLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&order, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus, updatedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.ErrNotFound
		}
		return tx.Create(&entity.OrderStatusLog{
			OrderID:   id,
			Status:    status,
			UpdatedBy: updatedBy,
		}).Error
	})
}

func (r *orderRepository) UpdatePayment(ctx context.Context, id uuid.UUID, payment *entity.Payment) error {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_method":          payment.Method,
			"payment_status":          payment.Status,
			"payment_paid":            payment.Paid,
			"payment_tendered":        payment.Tendered,
			"payment_change":          payment.Change,
			"payment_bank_name":       payment.BankName,
			"payment_sender_name":     payment.SenderName,
			"payment_wallet_provider": payment.WalletProvider,
			"payment_reference_no":    payment.ReferenceNo,
			"payment_paid_at":         payment.PaidAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdateDamageNote(ctx context.Context, id uuid.UUID, note *string) error {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("damage_note", note)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

// IncrementPrintCount returns the count before the bump so callers can
// decide whether this print is the original or a copy.
func (r *orderRepository) IncrementPrintCount(ctx context.Context, id uuid.UUID) (int, error) {
	var before int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		if err := tx.Select("print_count").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}
		before = order.PrintCount
		return tx.Model(&entity.Order{}).Where("id = ?", id).
			Update("print_count", gorm.Expr("print_count + 1")).Error
	})
	return before, err
}

func (r *orderRepository) List(ctx context.Context, params *pagination.PaginationParams, filter *domainRepo.OrderFilter) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.CustomerID != nil {
			query = query.Where("customer_id = ?", *filter.CustomerID)
		}
		if filter.Unpaid {
			query = query.Where("payment_status = ?", enum.PaymentStatusPending)
		}
		if filter.Search != "" {
			query = query.Where("invoice_no ILIKE ?", "%"+filter.Search+"%")
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Items").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id).Error
}
