package controller

import (
	"net/http"

	"github.com/aurea-joias/aurea-backend/internal/app/service"
	apperrors "github.com/aurea-joias/aurea-backend/internal/errors"
	"github.com/aurea-joias/aurea-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

type UpdateSettingsRequest struct {
	SiteName       *string `json:"site_name"`
	Logo           *string `json:"logo"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	InstagramURL   *string `json:"instagram_url"`
	FacebookURL    *string `json:"facebook_url"`
	WhatsappNumber *string `json:"whatsapp_number"`
	TermsOfUse     *string `json:"terms_of_use"`
}

// GetSettings returns the storefront configuration
// GET /api/v1/settings
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	settings, err := ctrl.settingsService.Get()
	if err != nil {
		log.Error("Failed to fetch site settings", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": settings,
	})
}

// UpdateSettings applies partial settings updates (Admin only)
// PUT /api/v1/settings
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid settings update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid settings data")
		return
	}

	settings, err := ctrl.settingsService.Update(service.SiteSettingsUpdateInput{
		SiteName:       req.SiteName,
		Logo:           req.Logo,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		InstagramURL:   req.InstagramURL,
		FacebookURL:    req.FacebookURL,
		WhatsappNumber: req.WhatsappNumber,
		TermsOfUse:     req.TermsOfUse,
	})
	if err != nil {
		log.Error("Failed to update site settings", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update settings")
		return
	}

	log.Info("Site settings updated", nil)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}
