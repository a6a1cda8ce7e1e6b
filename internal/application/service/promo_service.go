package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/enum"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
)

// PromoService evaluates promo eligibility and discounts, and manages
// the promo catalog.
type PromoService struct {
	promoRepo repository.PromoRepository
}

// NewPromoService creates a new promo service
func NewPromoService(promoRepo repository.PromoRepository) *PromoService {
	return &PromoService{promoRepo: promoRepo}
}

// Eligible reports whether the promo applies to a cart with the given
// subtotal and billed weight.
func (s *PromoService) Eligible(promo *entity.Promo, subtotal int64, totalWeightKg float64) bool {
	if !promo.Active || !promo.InWindow(time.Now()) {
		return false
	}
	switch promo.Eligibility {
	case enum.EligibilityKindWeight:
		return totalWeightKg >= promo.MinWeightKg
	case enum.EligibilityKindSubtotal:
		return subtotal >= promo.MinSubtotal
	}
	return false
}

// Discount computes the discount amount for an eligible promo. The
// result never exceeds the subtotal, so the order total floors at zero.
func (s *PromoService) Discount(promo *entity.Promo, subtotal int64) int64 {
	var discount int64
	switch promo.DiscountKind {
	case enum.DiscountKindPercent:
		discount = int64(math.Round(float64(subtotal) * float64(promo.DiscountValue) / 100))
	case enum.DiscountKindFixed:
		discount = promo.DiscountValue
	}
	if promo.MaxDiscount > 0 && discount > promo.MaxDiscount {
		discount = promo.MaxDiscount
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// EligiblePromos returns the active promos that apply to the cart.
func (s *PromoService) EligiblePromos(ctx context.Context, subtotal int64, totalWeightKg float64) ([]entity.Promo, error) {
	promos, err := s.promoRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	eligible := make([]entity.Promo, 0, len(promos))
	for _, p := range promos {
		if s.Eligible(&p, subtotal, totalWeightKg) {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}

// CreatePromoInput represents the create promo input
type CreatePromoInput struct {
	Name          string
	Description   *string
	DiscountKind  enum.DiscountKind
	DiscountValue int64
	Eligibility   enum.EligibilityKind
	MinWeightKg   float64
	MinSubtotal   int64
	MaxDiscount   int64
	ValidFrom     *time.Time
	ValidUntil    *time.Time
}

// CreatePromo creates a new promo
func (s *PromoService) CreatePromo(ctx context.Context, input *CreatePromoInput) (*entity.Promo, error) {
	if input.DiscountValue <= 0 {
		return nil, apperror.NewBadRequestError("Discount value must be positive")
	}
	if input.DiscountKind == enum.DiscountKindPercent && input.DiscountValue > 100 {
		return nil, apperror.NewBadRequestError("Percentage discount cannot exceed 100")
	}

	promo := &entity.Promo{
		Name:          input.Name,
		Description:   input.Description,
		DiscountKind:  input.DiscountKind,
		DiscountValue: input.DiscountValue,
		Eligibility:   input.Eligibility,
		MinWeightKg:   input.MinWeightKg,
		MinSubtotal:   input.MinSubtotal,
		MaxDiscount:   input.MaxDiscount,
		Active:        true,
		ValidFrom:     input.ValidFrom,
		ValidUntil:    input.ValidUntil,
	}
	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// GetPromo retrieves a promo by ID
func (s *PromoService) GetPromo(ctx context.Context, id uuid.UUID) (*entity.Promo, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, apperror.NewNotFoundError("Promo")
	}
	return promo, nil
}

// UpdatePromoInput represents the update promo input
type UpdatePromoInput struct {
	Name          *string
	Description   *string
	DiscountKind  *enum.DiscountKind
	DiscountValue *int64
	Eligibility   *enum.EligibilityKind
	MinWeightKg   *float64
	MinSubtotal   *int64
	MaxDiscount   *int64
	Active        *bool
	ValidFrom     *time.Time
	ValidUntil    *time.Time
}

// UpdatePromo updates a promo. Past orders keep their promo snapshot,
// so edits never change history.
func (s *PromoService) UpdatePromo(ctx context.Context, id uuid.UUID, input *UpdatePromoInput) (*entity.Promo, error) {
	promo, err := s.GetPromo(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		promo.Name = *input.Name
	}
	if input.Description != nil {
		promo.Description = input.Description
	}
	if input.DiscountKind != nil {
		promo.DiscountKind = *input.DiscountKind
	}
	if input.DiscountValue != nil {
		promo.DiscountValue = *input.DiscountValue
	}
	if input.Eligibility != nil {
		promo.Eligibility = *input.Eligibility
	}
	if input.MinWeightKg != nil {
		promo.MinWeightKg = *input.MinWeightKg
	}
	if input.MinSubtotal != nil {
		promo.MinSubtotal = *input.MinSubtotal
	}
	if input.MaxDiscount != nil {
		promo.MaxDiscount = *input.MaxDiscount
	}
	if input.Active != nil {
		promo.Active = *input.Active
	}
	if input.ValidFrom != nil {
		promo.ValidFrom = input.ValidFrom
	}
	if input.ValidUntil != nil {
		promo.ValidUntil = input.ValidUntil
	}

	if err := s.promoRepo.Update(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// ListPromos returns the promo catalog
func (s *PromoService) ListPromos(ctx context.Context, activeOnly bool) ([]entity.Promo, error) {
	return s.promoRepo.List(ctx, activeOnly)
}

// DeletePromo soft-deletes a promo
func (s *PromoService) DeletePromo(ctx context.Context, id uuid.UUID) error {
	promo, err := s.GetPromo(ctx, id)
	if err != nil {
		return err
	}
	return s.promoRepo.Delete(ctx, promo.ID)
}
