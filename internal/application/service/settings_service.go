package service

import (
	"context"

	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
	"github.com/rizkyfh/laundry-pos-api/internal/domain/repository"
	"github.com/rizkyfh/laundry-pos-api/pkg/apperror"
)

// SettingsService manages the store-wide settings row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the store settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	StoreName       *string
	Address         *string
	Phone           *string
	FooterMessage   *string
	InvoicePrefix   *string
	MinBillableKg   *float64
	EnforceMinimum  *bool
	MinTrxPerStamp  *int64
	StampTarget     *int
	RewardOption    *string
	RewardValue     *int64
	AutoNotify      *bool
	DeliveryPerKm   *int64
	DeliveryMinimum *int64
}

// UpdateSettings applies a partial settings update
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		settings.StoreName = *input.StoreName
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.FooterMessage != nil {
		settings.FooterMessage = *input.FooterMessage
	}
	if input.InvoicePrefix != nil {
		if *input.InvoicePrefix == "" {
			return nil, apperror.NewBadRequestError("Invoice prefix must not be empty")
		}
		settings.InvoicePrefix = *input.InvoicePrefix
	}
	if input.MinBillableKg != nil {
		if *input.MinBillableKg < 0 {
			return nil, apperror.NewBadRequestError("Minimum billable weight must not be negative")
		}
		settings.MinBillableKg = *input.MinBillableKg
	}
	if input.EnforceMinimum != nil {
		settings.EnforceMinimum = *input.EnforceMinimum
	}
	if input.MinTrxPerStamp != nil {
		settings.MinTrxPerStamp = *input.MinTrxPerStamp
	}
	if input.StampTarget != nil {
		if *input.StampTarget <= 0 {
			return nil, apperror.NewBadRequestError("Stamp target must be positive")
		}
		settings.StampTarget = *input.StampTarget
	}
	if input.RewardOption != nil {
		settings.RewardOption = *input.RewardOption
	}
	if input.RewardValue != nil {
		if *input.RewardValue < 0 {
			return nil, apperror.NewBadRequestError("Reward value must not be negative")
		}
		settings.RewardValue = *input.RewardValue
	}
	if input.AutoNotify != nil {
		settings.AutoNotify = *input.AutoNotify
	}
	if input.DeliveryPerKm != nil {
		settings.DeliveryPerKm = *input.DeliveryPerKm
	}
	if input.DeliveryMinimum != nil {
		settings.DeliveryMinimum = *input.DeliveryMinimum
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
