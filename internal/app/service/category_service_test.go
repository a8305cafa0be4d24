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

func setupCategoryServiceTest(t *testing.T) (CategoryService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewCategoryService(repository.NewCategoryRepository(testDB)), testDB
}

func TestCategoryService_Create(t *testing.T) {
	categoryService, _ := setupCategoryServiceTest(t)

	root, err := categoryService.Create("Anéis", "", nil, true)
	require.NoError(t, err)
	assert.Equal(t, "aneis", root.Slug)
	assert.True(t, root.ShowOnHome)

	child, err := categoryService.Create("Anéis Solitários", "", &root.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "aneis-solitarios", child.Slug)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.ID, *child.ParentID)

	missing := uint(9999)
	_, err = categoryService.Create("Órfã", "", &missing, false)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_ListTree(t *testing.T) {
	categoryService, _ := setupCategoryServiceTest(t)

	rings, err := categoryService.Create("Anéis", "", nil, true)
	require.NoError(t, err)
	solitaires, err := categoryService.Create("Solitários", "", &rings.ID, false)
	require.NoError(t, err)
	_, err = categoryService.Create("Solitários de Ouro", "", &solitaires.ID, false)
	require.NoError(t, err)
	_, err = categoryService.Create("Colares", "", nil, false)
	require.NoError(t, err)

	tree, err := categoryService.ListTree()
	require.NoError(t, err)
	require.Len(t, tree, 2) // only roots at the top level

	var ringsNode *model.CategoryNode
	for i := range tree {
		if tree[i].Slug == "aneis" {
			ringsNode = &tree[i]
		}
	}
	require.NotNil(t, ringsNode)
	require.Len(t, ringsNode.Subcategories, 1)
	assert.Equal(t, "solitarios", ringsNode.Subcategories[0].Slug)
	require.Len(t, ringsNode.Subcategories[0].Subcategories, 1)
	assert.Equal(t, "solitarios-de-ouro", ringsNode.Subcategories[0].Subcategories[0].Slug)
}

func TestCategoryService_Update(t *testing.T) {
	categoryService, _ := setupCategoryServiceTest(t)

	rings, err := categoryService.Create("Anéis", "", nil, false)
	require.NoError(t, err)
	child, err := categoryService.Create("Solitários", "", &rings.ID, false)
	require.NoError(t, err)
	grandchild, err := categoryService.Create("Solitários de Ouro", "", &child.ID, false)
	require.NoError(t, err)

	t.Run("Rename keeps slug", func(t *testing.T) {
		name := "Anéis e Alianças"
		updated, err := categoryService.Update(rings.ID, &name, nil, nil, false, nil)
		require.NoError(t, err)
		assert.Equal(t, "Anéis e Alianças", updated.Name)
		assert.Equal(t, "aneis", updated.Slug)
	})

	t.Run("Self parent rejected", func(t *testing.T) {
		_, err := categoryService.Update(rings.ID, nil, nil, &rings.ID, false, nil)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("Descendant parent rejected", func(t *testing.T) {
		_, err := categoryService.Update(rings.ID, nil, nil, &grandchild.ID, false, nil)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("Clear parent promotes to root", func(t *testing.T) {
		updated, err := categoryService.Update(child.ID, nil, nil, nil, true, nil)
		require.NoError(t, err)
		assert.Nil(t, updated.ParentID)
	})

	t.Run("Unknown parent rejected", func(t *testing.T) {
		missing := uint(9999)
		_, err := categoryService.Update(child.ID, nil, nil, &missing, false, nil)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	categoryService, testDB := setupCategoryServiceTest(t)

	rings, err := categoryService.Create("Anéis", "", nil, false)
	require.NoError(t, err)
	child, err := categoryService.Create("Solitários", "", &rings.ID, false)
	require.NoError(t, err)

	t.Run("Subtree product blocks deletion", func(t *testing.T) {
		product := model.Product{
			Name: "Anel", Slug: "anel", BasePrice: 100, CategoryID: child.ID, IsActive: true,
		}
		require.NoError(t, testDB.Create(&product).Error)

		// the product hangs off the child, yet the root is protected too
		err := categoryService.Delete(rings.ID)
		assert.ErrorIs(t, err, ErrCategoryInUse)

		require.NoError(t, testDB.Delete(&model.Product{}, product.ID).Error)
	})

	t.Run("Delete removes whole subtree", func(t *testing.T) {
		require.NoError(t, categoryService.Delete(rings.ID))

		var count int64
		testDB.Model(&model.Category{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("Unknown category", func(t *testing.T) {
		err := categoryService.Delete(9999)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}
