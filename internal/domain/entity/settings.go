package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSettings is the singleton system-wide configuration record.
// The first GET creates it with defaults when it does not exist yet.
type SystemSettings struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName        string         `gorm:"size:255;not null;default:'My Company'" json:"company_name"`
	TaxID              *string        `gorm:"size:100" json:"tax_id,omitempty"`
	Address            *string        `gorm:"type:text" json:"address,omitempty"`
	Phone              *string        `gorm:"size:50" json:"phone,omitempty"`
	Currency           string         `gorm:"size:10;not null;default:'USD'" json:"currency"`
	TaxRate            float64        `gorm:"not null;default:0.05" json:"tax_rate"`
	DarkMode           bool           `gorm:"default:false" json:"dark_mode"`
	EmailNotifications bool           `gorm:"default:true" json:"email_notifications"`
	AutoBackup         bool           `gorm:"default:false" json:"auto_backup"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating the settings record
func (s *SystemSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SystemSettings model
func (SystemSettings) TableName() string {
	return "system_settings"
}

// CurrencySymbol resolves the display symbol for the configured currency code
func (s *SystemSettings) CurrencySymbol() string {
	return CurrencySymbol(s.Currency)
}

// CurrencySymbol maps a currency code to its display symbol
func CurrencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "ILS":
		return "₪"
	default:
		return "$"
	}
}

// DefaultSystemSettings returns the settings row created when none exists
func DefaultSystemSettings() *SystemSettings {
	return &SystemSettings{
		CompanyName:        "My Company",
		Currency:           "USD",
		TaxRate:            0.05,
		EmailNotifications: true,
	}
}
