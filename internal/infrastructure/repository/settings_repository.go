package repository

import (
	"context"
	"errors"

	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	domainRepo "github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new store settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the settings row, creating it with defaults on first use.
func (r *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var settings entity.StoreSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = entity.StoreSettings{
			ID:             1,
			StoreName:      "Laundry",
			InvoicePrefix:  "INV",
			MinTrxPerStamp: 20000,
			StampTarget:    10,
		}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	return &settings, err
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.StoreSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
