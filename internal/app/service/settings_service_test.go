package service

import (
	"sync"
	"testing"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSettingsServiceTest(t *testing.T) (SettingsService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewSettingsService(repository.NewSiteSettingsRepository(testDB)), testDB
}

func TestSettingsService_Get_CreatesDefaults(t *testing.T) {
	settingsService, testDB := setupSettingsServiceTest(t)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "Minha Joalheria", settings.SiteName)
	assert.Equal(t, "#000000", settings.PrimaryColor)
	assert.Equal(t, "#D4AF37", settings.SecondaryColor)

	// a second read returns the same row, not a new one
	again, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	testDB.Model(&model.SiteSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsService_Get_ConcurrentFirstAccess(t *testing.T) {
	settingsService, testDB := setupSettingsServiceTest(t)

	// in-memory SQLite gives each pooled connection its own database
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := settingsService.Get()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var count int64
	testDB.Model(&model.SiteSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsService_Update(t *testing.T) {
	settingsService, _ := setupSettingsServiceTest(t)

	name := "Aurea Joias"
	whatsapp := "+55 11 99999-0000"
	updated, err := settingsService.Update(SiteSettingsUpdateInput{
		SiteName:       &name,
		WhatsappNumber: &whatsapp,
	})
	require.NoError(t, err)
	assert.Equal(t, "Aurea Joias", updated.SiteName)
	assert.Equal(t, "+55 11 99999-0000", updated.WhatsappNumber)
	// untouched fields keep their defaults
	assert.Equal(t, "#D4AF37", updated.SecondaryColor)

	reloaded, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "Aurea Joias", reloaded.SiteName)
}
