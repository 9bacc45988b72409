package repository

import (
	"context"

	"github.com/storekeep/backoffice-api/internal/domain/entity"
)

// SettingsRepository defines the interface for system settings access.
// The settings table holds a single row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SystemSettings, error)
	Create(ctx context.Context, settings *entity.SystemSettings) error
	Update(ctx context.Context, settings *entity.SystemSettings) error
}
