package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
	"github.com/rizkyfh/laundry-pos-api/pkg/pagination"
	"github.com/rizkyfh/laundry-pos-api/pkg/whatsapp"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Address *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	phone := whatsapp.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, apperror.NewBadRequestError("Phone number is required")
	}

	existing, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this phone already exists")
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Phone:   phone,
		Address: input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		phone := whatsapp.NormalizePhone(*input.Phone)
		if phone == "" {
			return nil, apperror.NewBadRequestError("Phone number is required")
		}
		if phone != customer.Phone {
			existing, err := s.customerRepo.GetByPhone(ctx, phone)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperror.NewConflictError("Customer with this phone already exists")
			}
			customer.Phone = phone
		}
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers returns customers with pagination and search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params, search)
}

// DeleteCustomer soft-deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customer.ID)
}
