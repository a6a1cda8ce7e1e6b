package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	domainRepo "github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type promoRepository struct {
	db *gorm.DB
}

// NewPromoRepository creates a new promo repository
func NewPromoRepository(db *gorm.DB) domainRepo.PromoRepository {
	return &promoRepository{db: db}
}

func (r *promoRepository) Create(ctx context.Context, promo *entity.Promo) error {
	return r.db.WithContext(ctx).Create(promo).Error
}

func (r *promoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Promo, error) {
	var promo entity.Promo
	err := r.db.WithContext(ctx).First(&promo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &promo, err
}

func (r *promoRepository) Update(ctx context.Context, promo *entity.Promo) error {
	return r.db.WithContext(ctx).Save(promo).Error
}

func (r *promoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Promo{}, "id = ?", id).Error
}

func (r *promoRepository) List(ctx context.Context, activeOnly bool) ([]entity.Promo, error) {
	var promos []entity.Promo
	query := r.db.WithContext(ctx).Model(&entity.Promo{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&promos).Error
	return promos, err
}
