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

func setupProductServiceTest(t *testing.T) (ProductService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productService := NewProductService(
		repository.NewProductRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewAttributeRepository(testDB),
	)
	return productService, testDB
}

func seedCategory(t *testing.T, testDB *gorm.DB, name, slug string) model.Category {
	category := model.Category{Name: name, Slug: slug}
	require.NoError(t, testDB.Create(&category).Error)
	return category
}

func TestProductService_Create(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)
	category := seedCategory(t, testDB, "Anéis", "aneis")

	attribute := model.ProductAttribute{Name: "Material", Slug: "material"}
	require.NoError(t, testDB.Create(&attribute).Error)
	gold := model.AttributeValue{AttributeID: attribute.ID, Value: "Ouro 18k"}
	require.NoError(t, testDB.Create(&gold).Error)

	t.Run("Full create", func(t *testing.T) {
		product, err := productService.Create(ProductCreateInput{
			Name:              "Anel Solitário Clássico",
			Description:       "Anel em ouro 18k",
			BasePrice:         4890,
			CategoryID:        category.ID,
			AttributeValueIDs: []uint{gold.ID},
			ImageURLs:         []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
			CoverIndex:        1,
		})
		require.NoError(t, err)
		assert.Equal(t, "anel-solitario-classico", product.Slug)
		assert.True(t, product.IsActive) // default
		require.Len(t, product.Attributes, 1)
		require.Len(t, product.Images, 2)
		assert.False(t, product.Images[0].IsCover)
		assert.True(t, product.Images[1].IsCover)
	})

	t.Run("Unknown category", func(t *testing.T) {
		_, err := productService.Create(ProductCreateInput{
			Name: "Perdido", BasePrice: 10, CategoryID: 9999,
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("Unknown attribute value", func(t *testing.T) {
		_, err := productService.Create(ProductCreateInput{
			Name: "Sem Atributo", BasePrice: 10, CategoryID: category.ID,
			AttributeValueIDs: []uint{9999},
		})
		assert.ErrorIs(t, err, ErrAttributeValueNotFound)
	})
}

func TestProductService_Visibility(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)
	category := seedCategory(t, testDB, "Anéis", "aneis")

	inactive := false
	_, err := productService.Create(ProductCreateInput{
		Name: "Anel Oculto", BasePrice: 100, CategoryID: category.ID, IsActive: &inactive,
	})
	require.NoError(t, err)
	_, err = productService.Create(ProductCreateInput{
		Name: "Anel Visível", BasePrice: 200, CategoryID: category.ID,
	})
	require.NoError(t, err)

	t.Run("Shoppers see only active products", func(t *testing.T) {
		products, total, err := productService.List(ProductListInput{}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, products, 1)
		assert.Equal(t, "anel-visivel", products[0].Slug)

		_, err = productService.GetBySlug("anel-oculto", false)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Staff see everything", func(t *testing.T) {
		_, total, err := productService.List(ProductListInput{}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		product, err := productService.GetBySlug("anel-oculto", true)
		require.NoError(t, err)
		assert.False(t, product.IsActive)
	})
}

func TestProductService_List_CategoryFilter(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)
	rings := seedCategory(t, testDB, "Anéis", "aneis")
	solitaires := model.Category{Name: "Solitários", Slug: "solitarios", ParentID: &rings.ID}
	require.NoError(t, testDB.Create(&solitaires).Error)

	_, err := productService.Create(ProductCreateInput{
		Name: "Anel Genérico", BasePrice: 100, CategoryID: rings.ID,
	})
	require.NoError(t, err)
	_, err = productService.Create(ProductCreateInput{
		Name: "Anel Solitário", BasePrice: 200, CategoryID: solitaires.ID,
	})
	require.NoError(t, err)

	t.Run("Matches the named category only", func(t *testing.T) {
		products, total, err := productService.List(ProductListInput{CategorySlug: "aneis"}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, products, 1)
		assert.Equal(t, "anel-generico", products[0].Slug)
	})

	t.Run("Unknown slug yields empty page", func(t *testing.T) {
		products, total, err := productService.List(ProductListInput{CategorySlug: "inexistente"}, false)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
	})
}

func TestProductService_Update(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)
	category := seedCategory(t, testDB, "Anéis", "aneis")

	product, err := productService.Create(ProductCreateInput{
		Name:             "Anel Solitário",
		BasePrice:        4890,
		PromotionalPrice: floatPtr(3990),
		CategoryID:       category.ID,
		ImageURLs:        []string{"https://cdn.example.com/a.jpg"},
	})
	require.NoError(t, err)

	t.Run("Rename keeps slug", func(t *testing.T) {
		name := "Anel Solitário Premium"
		updated, err := productService.Update(product.ID, ProductUpdateInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Anel Solitário Premium", updated.Name)
		assert.Equal(t, "anel-solitario", updated.Slug)
	})

	t.Run("Clear promotional price", func(t *testing.T) {
		updated, err := productService.Update(product.ID, ProductUpdateInput{ClearPromotional: true})
		require.NoError(t, err)
		assert.Nil(t, updated.PromotionalPrice)
	})

	t.Run("Updates only append images", func(t *testing.T) {
		_, err := productService.Update(product.ID, ProductUpdateInput{
			NewImageURLs: []string{"https://cdn.example.com/b.jpg"},
		})
		require.NoError(t, err)

		var count int64
		testDB.Model(&model.ProductImage{}).Where("product_id = ?", product.ID).Count(&count)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Unknown product", func(t *testing.T) {
		_, err := productService.Update(9999, ProductUpdateInput{})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductService_DeleteImage(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)
	category := seedCategory(t, testDB, "Anéis", "aneis")

	product, err := productService.Create(ProductCreateInput{
		Name: "Anel", BasePrice: 100, CategoryID: category.ID,
		ImageURLs: []string{"https://cdn.example.com/a.jpg"},
	})
	require.NoError(t, err)
	require.Len(t, product.Images, 1)

	require.NoError(t, productService.DeleteImage(product.Images[0].ID))

	err = productService.DeleteImage(product.Images[0].ID)
	assert.ErrorIs(t, err, ErrProductImageNotFound)
}

func floatPtr(v float64) *float64 { return &v }
