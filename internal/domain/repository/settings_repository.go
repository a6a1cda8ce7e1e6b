package repository

import (
	"context"

	"github.com/rizkyfh/laundry-pos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings operations.
// Settings live in a single row that Get creates on first access.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
