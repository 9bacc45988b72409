package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles system settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the system settings, creating defaults on first access
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the system settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CompanyName        string  `json:"company_name" binding:"required"`
		TaxID              *string `json:"tax_id"`
		Address            *string `json:"address"`
		Phone              *string `json:"phone"`
		Currency           string  `json:"currency"`
		TaxRate            float64 `json:"tax_rate"`
		DarkMode           bool    `json:"dark_mode"`
		EmailNotifications bool    `json:"email_notifications"`
		AutoBackup         bool    `json:"auto_backup"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), *actor, &service.SettingsInput{
		CompanyName:        req.CompanyName,
		TaxID:              req.TaxID,
		Address:            req.Address,
		Phone:              req.Phone,
		Currency:           req.Currency,
		TaxRate:            req.TaxRate,
		DarkMode:           req.DarkMode,
		EmailNotifications: req.EmailNotifications,
		AutoBackup:         req.AutoBackup,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
