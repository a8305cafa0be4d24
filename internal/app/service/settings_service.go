package service

import (
	"errors"
	"sync"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"gorm.io/gorm"
)

// SiteSettingsUpdateInput carries partial updates; nil fields are untouched.
type SiteSettingsUpdateInput struct {
	SiteName       *string
	Logo           *string
	PrimaryColor   *string
	SecondaryColor *string
	InstagramURL   *string
	FacebookURL    *string
	WhatsappNumber *string
	TermsOfUse     *string
}

type SettingsService interface {
	Get() (*model.SiteSettings, error)
	Update(input SiteSettingsUpdateInput) (*model.SiteSettings, error)
}

type settingsService struct {
	settingsRepo repository.SiteSettingsRepository
	mu           sync.Mutex
}

func NewSettingsService(settingsRepo repository.SiteSettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// Get returns the settings row, creating it with defaults on first access.
// The mutex keeps concurrent first reads from racing a second row into
// existence.
func (s *settingsService) Get() (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to load site settings", err, nil)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the lock; another request may have won the race.
	settings, err = s.settingsRepo.Get()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = &model.SiteSettings{
		SiteName:       "Minha Joalheria",
		PrimaryColor:   "#000000",
		SecondaryColor: "#D4AF37",
	}
	if err := s.settingsRepo.Create(settings); err != nil {
		logger.Error("Failed to create default site settings", err, nil)
		return nil, err
	}

	logger.Info("Default site settings created", map[string]interface{}{
		"settings_id": settings.ID,
	})
	return settings, nil
}

func (s *settingsService) Update(input SiteSettingsUpdateInput) (*model.SiteSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	if input.SiteName != nil {
		settings.SiteName = *input.SiteName
	}
	if input.Logo != nil {
		settings.Logo = *input.Logo
	}
	if input.PrimaryColor != nil {
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		settings.SecondaryColor = *input.SecondaryColor
	}
	if input.InstagramURL != nil {
		settings.InstagramURL = *input.InstagramURL
	}
	if input.FacebookURL != nil {
		settings.FacebookURL = *input.FacebookURL
	}
	if input.WhatsappNumber != nil {
		settings.WhatsappNumber = *input.WhatsappNumber
	}
	if input.TermsOfUse != nil {
		settings.TermsOfUse = *input.TermsOfUse
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		logger.Error("Failed to save site settings", err, nil)
		return nil, err
	}

	logger.Info("Site settings updated", map[string]interface{}{
		"settings_id": settings.ID,
	})
	return settings, nil
}
