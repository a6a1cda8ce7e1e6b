package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
)

// CatalogService manages the laundry service catalog
type CatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// CreateServiceInput represents the create service input
type CreateServiceInput struct {
	Name          string
	Unit          enum.BillingUnit
	PricePerUnit  int64
	DurationHours int
}

// CreateService adds a catalog item
func (s *CatalogService) CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error) {
	if input.PricePerUnit <= 0 {
		return nil, apperror.NewBadRequestError("Price must be positive")
	}
	if !input.Unit.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown billing unit")
	}

	svc := &entity.Service{
		Name:          input.Name,
		Unit:          input.Unit,
		PricePerUnit:  input.PricePerUnit,
		DurationHours: input.DurationHours,
		Active:        true,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetService retrieves a catalog item
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// UpdateServiceInput represents the update service input
type UpdateServiceInput struct {
	Name          *string
	Unit          *enum.BillingUnit
	PricePerUnit  *int64
	DurationHours *int
	Active        *bool
}

// UpdateService edits a catalog item. Past orders keep their copied
// line data, so price changes never rewrite history.
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *UpdateServiceInput) (*entity.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.Unit != nil {
		svc.Unit = *input.Unit
	}
	if input.PricePerUnit != nil {
		if *input.PricePerUnit <= 0 {
			return nil, apperror.NewBadRequestError("Price must be positive")
		}
		svc.PricePerUnit = *input.PricePerUnit
	}
	if input.DurationHours != nil {
		svc.DurationHours = *input.DurationHours
	}
	if input.Active != nil {
		svc.Active = *input.Active
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListServices returns the catalog
func (s *CatalogService) ListServices(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	return s.serviceRepo.List(ctx, activeOnly)
}

// DeleteService soft-deletes a catalog item; historical order lines
// keep their copy.
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return err
	}
	return s.serviceRepo.Delete(ctx, svc.ID)
}
