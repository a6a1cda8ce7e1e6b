package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
)

// ServiceRepository defines the interface for laundry service data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns services, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]entity.Service, error)
	// GetByIDs fetches services in bulk for cart pricing.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error)
}
