package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"furnish-shop/models"
	"furnish-shop/store"
)

type SettingsController struct {
	Store *store.Store
}

// GetSettings godoc
// @Summary Get site settings
// @Tags Settings
// @Produce json
// @Success 200 {object} models.SiteSettings
// @Router /settings [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	var settings models.SiteSettings
	ok, err := ctrl.Store.Load(models.SettingsSet, &settings)
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to read settings", Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Settings not found"})
		return
	}
	c.JSON(200, settings)
}

// UpdateSettings godoc
// @Summary Replace site settings
// @Tags Admin - Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SiteSettings true "Settings"
// @Success 200 {object} models.SiteSettings
// @Router /admin/settings [put]
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := ctrl.Store.Save(models.SettingsSet, settings); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to save settings", Error: err.Error()})
		return
	}

	c.JSON(200, settings)
}
