package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns customers with page-based pagination and optional name/phone search.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// AddStamps atomically adds n to both the current and lifetime stamp counters.
	AddStamps(ctx context.Context, id uuid.UUID, n int) error
	// Redeem subtracts stampsUsed and records the redemption in one transaction.
	// Fails if the customer does not hold enough stamps.
	Redeem(ctx context.Context, redemption *entity.RewardRedemption) error
	// ListRedemptions returns a customer's redemption history, newest first.
	ListRedemptions(ctx context.Context, customerID uuid.UUID) ([]entity.RewardRedemption, error)
}
