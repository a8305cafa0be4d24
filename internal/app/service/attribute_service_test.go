package service

import (
	"testing"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAttributeServiceTest(t *testing.T) (AttributeService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewAttributeService(repository.NewAttributeRepository(testDB)), testDB
}

func TestAttributeService_CreateAndValues(t *testing.T) {
	attributeService, _ := setupAttributeServiceTest(t)

	attribute, err := attributeService.Create("Material")
	require.NoError(t, err)
	assert.Equal(t, "material", attribute.Slug)

	gold, err := attributeService.AddValue(attribute.ID, "Ouro 18k")
	require.NoError(t, err)
	_, err = attributeService.AddValue(attribute.ID, "Prata 925")
	require.NoError(t, err)

	reloaded, err := attributeService.Get(attribute.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Values, 2)

	_, err = attributeService.AddValue(9999, "Órfão")
	assert.ErrorIs(t, err, ErrAttributeNotFound)

	require.NoError(t, attributeService.DeleteValue(gold.ID))
	err = attributeService.DeleteValue(gold.ID)
	assert.ErrorIs(t, err, ErrAttributeValueNotFound)
}

func TestAttributeService_Update_KeepsSlug(t *testing.T) {
	attributeService, _ := setupAttributeServiceTest(t)

	attribute, err := attributeService.Create("Pedra")
	require.NoError(t, err)

	updated, err := attributeService.Update(attribute.ID, "Pedra Preciosa")
	require.NoError(t, err)
	assert.Equal(t, "Pedra Preciosa", updated.Name)
	assert.Equal(t, "pedra", updated.Slug)
}

func TestAttributeService_Delete_CascadesValues(t *testing.T) {
	attributeService, testDB := setupAttributeServiceTest(t)

	attribute, err := attributeService.Create("Aro")
	require.NoError(t, err)
	_, err = attributeService.AddValue(attribute.ID, "16")
	require.NoError(t, err)

	require.NoError(t, attributeService.Delete(attribute.ID))

	var valueCount int64
	testDB.Model(&model.AttributeValue{}).Count(&valueCount)
	assert.Zero(t, valueCount)

	_, err = attributeService.Get(attribute.ID)
	assert.ErrorIs(t, err, ErrAttributeNotFound)
}
