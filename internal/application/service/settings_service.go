package service

import (
	"context"

	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/domain/repository"
	"github.com/storekeep/backoffice-api/pkg/apperror"
)

// SettingsService manages the singleton system settings record
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// SettingsInput represents the update settings payload
type SettingsInput struct {
	CompanyName        string
	TaxID              *string
	Address            *string
	Phone              *string
	Currency           string
	TaxRate            float64
	DarkMode           bool
	EmailNotifications bool
	AutoBackup         bool
}

// GetSettings returns the settings record, creating it with defaults on first
// access.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.SystemSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSystemSettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettings updates the settings record. Admins and managers only.
func (s *SettingsService) UpdateSettings(ctx context.Context, actor access.Actor, input *SettingsInput) (*entity.SystemSettings, error) {
	if actor.Role != enum.RoleAdmin && actor.Role != enum.RoleManager {
		return nil, apperror.ErrForbidden
	}
	if input.TaxRate < 0 {
		return nil, apperror.NewInvalidInputError("Tax rate must not be negative")
	}
	if input.CompanyName == "" {
		return nil, apperror.NewInvalidInputError("Company name is required")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.CompanyName = input.CompanyName
	settings.TaxID = input.TaxID
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Currency = input.Currency
	settings.TaxRate = input.TaxRate
	settings.DarkMode = input.DarkMode
	settings.EmailNotifications = input.EmailNotifications
	settings.AutoBackup = input.AutoBackup

	if settings.Currency == "" {
		settings.Currency = "USD"
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
