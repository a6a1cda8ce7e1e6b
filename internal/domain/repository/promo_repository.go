package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
)

// PromoRepository defines the interface for promo data operations
type PromoRepository interface {
	Create(ctx context.Context, promo *entity.Promo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Promo, error)
	Update(ctx context.Context, promo *entity.Promo) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns promos, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]entity.Promo, error)
}
