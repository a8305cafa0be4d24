package repository

import (
	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"gorm.io/gorm"
)

type SiteSettingsRepository interface {
	Get() (*model.SiteSettings, error)
	Create(settings *model.SiteSettings) error
	Save(settings *model.SiteSettings) error
	Count() (int64, error)
}

type siteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

// Get returns the single settings row, or gorm.ErrRecordNotFound when the
// table is still empty.
func (r *siteSettingsRepository) Get() (*model.SiteSettings, error) {
	var settings model.SiteSettings
	if err := r.db.Order("id ASC").First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *siteSettingsRepository) Create(settings *model.SiteSettings) error {
	logger.Debug("Creating site settings row in database", nil)

	if err := r.db.Create(settings).Error; err != nil {
		logger.Error("Failed to create site settings in database", err, nil)
		return err
	}
	return nil
}

func (r *siteSettingsRepository) Save(settings *model.SiteSettings) error {
	if err := r.db.Save(settings).Error; err != nil {
		logger.Error("Failed to save site settings in database", err, map[string]interface{}{
			"settings_id": settings.ID,
		})
		return err
	}
	return nil
}

func (r *siteSettingsRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.SiteSettings{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count site settings rows in database", err, nil)
		return 0, err
	}
	return count, nil
}
