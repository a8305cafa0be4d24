package repository

import (
	"testing"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCategoryTest(t *testing.T) (*gorm.DB, CategoryRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewCategoryRepository(testDB)
	return testDB, repo
}

func TestCategoryRepository_Create(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	root := model.Category{Name: "Anéis", Slug: "aneis", ShowOnHome: true}
	require.NoError(t, repo.Create(&root))
	assert.NotZero(t, root.ID)

	child := model.Category{Name: "Anéis Solitários", Slug: "aneis-solitarios", ParentID: &root.ID}
	require.NoError(t, repo.Create(&child))
	assert.Equal(t, root.ID, *child.ParentID)
}

func TestCategoryRepository_Create_DuplicateSlug(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(&model.Category{Name: "Anéis", Slug: "aneis"}))

	err := repo.Create(&model.Category{Name: "Aneis", Slug: "aneis"})
	assert.Error(t, err)
}

func TestCategoryRepository_FindAll(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(&model.Category{Name: "Pulseiras", Slug: "pulseiras"}))
	require.NoError(t, repo.Create(&model.Category{Name: "Brincos", Slug: "brincos"}))

	categories, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// ordered by name
	assert.Equal(t, "Brincos", categories[0].Name)
	assert.Equal(t, "Pulseiras", categories[1].Name)
}

func TestCategoryRepository_FindBySlug(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(&model.Category{Name: "Colares", Slug: "colares"}))

	found, err := repo.FindBySlug("colares")
	require.NoError(t, err)
	assert.Equal(t, "Colares", found.Name)

	_, err = repo.FindBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepository_DeleteMany(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	root := model.Category{Name: "Anéis", Slug: "aneis"}
	require.NoError(t, repo.Create(&root))
	child := model.Category{Name: "Solitários", Slug: "solitarios", ParentID: &root.ID}
	require.NoError(t, repo.Create(&child))

	require.NoError(t, repo.DeleteMany([]uint{root.ID, child.ID}))

	categories, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryRepository_CountProductsByCategoryIDs(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	root := model.Category{Name: "Anéis", Slug: "aneis"}
	require.NoError(t, repo.Create(&root))
	child := model.Category{Name: "Solitários", Slug: "solitarios", ParentID: &root.ID}
	require.NoError(t, repo.Create(&child))
	empty := model.Category{Name: "Colares", Slug: "colares"}
	require.NoError(t, repo.Create(&empty))

	require.NoError(t, testDB.Create(&model.Product{
		Name: "Anel", Slug: "anel", BasePrice: 100, CategoryID: child.ID, IsActive: true,
	}).Error)

	count, err := repo.CountProductsByCategoryIDs([]uint{root.ID, child.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountProductsByCategoryIDs([]uint{empty.ID})
	require.NoError(t, err)
	assert.Zero(t, count)
}
