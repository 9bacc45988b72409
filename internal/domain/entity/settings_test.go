package entity_test

import (
	"testing"

	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", entity.CurrencySymbol("USD"))
	assert.Equal(t, "€", entity.CurrencySymbol("EUR"))
	assert.Equal(t, "₪", entity.CurrencySymbol("ILS"))

	// Unknown codes fall back to the dollar sign
	assert.Equal(t, "$", entity.CurrencySymbol("GBP"))
	assert.Equal(t, "$", entity.CurrencySymbol(""))
}

func TestDefaultSystemSettings(t *testing.T) {
	settings := entity.DefaultSystemSettings()

	assert.Equal(t, "My Company", settings.CompanyName)
	assert.Equal(t, "USD", settings.Currency)
	assert.InDelta(t, 0.05, settings.TaxRate, 1e-9)
	assert.True(t, settings.EmailNotifications)
	assert.Equal(t, "$", settings.CurrencySymbol())
}
