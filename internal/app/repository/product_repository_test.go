package repository

import (
	"testing"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductTest(t *testing.T) (*gorm.DB, ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewProductRepository(testDB)
	return testDB, repo
}

func createTestCategory(t *testing.T, testDB *gorm.DB, name, slug string) model.Category {
	category := model.Category{Name: name, Slug: slug}
	require.NoError(t, testDB.Create(&category).Error)
	return category
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestProductRepository_Create(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	category := createTestCategory(t, testDB, "Anéis", "aneis")

	product := &model.Product{
		Name:        "Anel Solitário",
		Slug:        "anel-solitario",
		Description: "Anel solitário em ouro 18k",
		BasePrice:   4890.00,
		CategoryID:  category.ID,
		IsActive:    true,
	}

	err := repo.Create(product)
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)
}

func TestProductRepository_FindWithFilter(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	rings := createTestCategory(t, testDB, "Anéis", "aneis")
	necklaces := createTestCategory(t, testDB, "Colares", "colares")

	products := []model.Product{
		{Name: "Anel Barato", Slug: "anel-barato", BasePrice: 100, CategoryID: rings.ID, IsActive: true},
		{Name: "Anel Caro", Slug: "anel-caro", BasePrice: 5000, PromotionalPrice: floatPtr(4200), CategoryID: rings.ID, IsActive: true},
		{Name: "Colar Dourado", Slug: "colar-dourado", BasePrice: 900, CategoryID: necklaces.ID, IsActive: true},
		{Name: "Anel Inativo", Slug: "anel-inativo", BasePrice: 300, CategoryID: rings.ID, IsActive: false},
	}
	for i := range products {
		require.NoError(t, repo.Create(&products[i]))
	}

	t.Run("Hides inactive by default", func(t *testing.T) {
		found, total, err := repo.FindWithFilter(ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, found, 3)
	})

	t.Run("IncludeInactive widens visibility", func(t *testing.T) {
		found, total, err := repo.FindWithFilter(ProductFilter{IncludeInactive: true})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, found, 4)
	})

	t.Run("Category filter", func(t *testing.T) {
		found, total, err := repo.FindWithFilter(ProductFilter{CategoryID: necklaces.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		assert.Equal(t, "colar-dourado", found[0].Slug)
	})

	t.Run("Base price range", func(t *testing.T) {
		found, _, err := repo.FindWithFilter(ProductFilter{
			BasePriceGT: floatPtr(150),
			BasePriceLT: floatPtr(1000),
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "colar-dourado", found[0].Slug)
	})

	t.Run("Promotional price presence", func(t *testing.T) {
		withPromo, _, err := repo.FindWithFilter(ProductFilter{PromoIsNull: boolPtr(false)})
		require.NoError(t, err)
		require.Len(t, withPromo, 1)
		assert.Equal(t, "anel-caro", withPromo[0].Slug)

		withoutPromo, _, err := repo.FindWithFilter(ProductFilter{PromoIsNull: boolPtr(true)})
		require.NoError(t, err)
		assert.Len(t, withoutPromo, 2)
	})

	t.Run("Search matches name and description", func(t *testing.T) {
		found, total, err := repo.FindWithFilter(ProductFilter{Search: "Colar"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		assert.Equal(t, "colar-dourado", found[0].Slug)
	})

	t.Run("Sort by effective price descending", func(t *testing.T) {
		found, _, err := repo.FindWithFilter(ProductFilter{SortBy: "price", SortDesc: true})
		require.NoError(t, err)
		require.Len(t, found, 3)
		// anel-caro sorts on its promotional price (4200), still the highest
		assert.Equal(t, "anel-caro", found[0].Slug)
		assert.Equal(t, "anel-barato", found[2].Slug)
	})

	t.Run("Pagination", func(t *testing.T) {
		found, total, err := repo.FindWithFilter(ProductFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total) // total ignores limit and offset
		assert.Len(t, found, 1)
	})
}

func TestProductRepository_FindWithFilter_AttributeValue(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	category := createTestCategory(t, testDB, "Anéis", "aneis")

	attribute := model.ProductAttribute{Name: "Material", Slug: "material"}
	require.NoError(t, testDB.Create(&attribute).Error)
	gold := model.AttributeValue{AttributeID: attribute.ID, Value: "Ouro 18k"}
	silver := model.AttributeValue{AttributeID: attribute.ID, Value: "Prata 925"}
	require.NoError(t, testDB.Create(&gold).Error)
	require.NoError(t, testDB.Create(&silver).Error)

	goldRing := model.Product{Name: "Anel de Ouro", Slug: "anel-de-ouro", BasePrice: 2000, CategoryID: category.ID, IsActive: true}
	silverRing := model.Product{Name: "Anel de Prata", Slug: "anel-de-prata", BasePrice: 200, CategoryID: category.ID, IsActive: true}
	require.NoError(t, repo.Create(&goldRing))
	require.NoError(t, repo.Create(&silverRing))
	require.NoError(t, repo.ReplaceAttributes(&goldRing, []model.AttributeValue{gold}))
	require.NoError(t, repo.ReplaceAttributes(&silverRing, []model.AttributeValue{silver}))

	found, total, err := repo.FindWithFilter(ProductFilter{AttributeValueID: gold.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.Equal(t, "anel-de-ouro", found[0].Slug)
}

func TestProductRepository_FindBySlug(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	category := createTestCategory(t, testDB, "Anéis", "aneis")
	product := model.Product{Name: "Anel Solitário", Slug: "anel-solitario", BasePrice: 4890, CategoryID: category.ID, IsActive: true}
	require.NoError(t, repo.Create(&product))
	require.NoError(t, repo.AddImage(&model.ProductImage{ProductID: product.ID, Image: "https://cdn.example.com/a.jpg", IsCover: true}))

	found, err := repo.FindBySlug("anel-solitario")
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, "Anéis", found.Category.Name)
	require.Len(t, found.Images, 1)
	assert.True(t, found.Images[0].IsCover)

	_, err = repo.FindBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_DeleteRemovesImages(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	category := createTestCategory(t, testDB, "Anéis", "aneis")
	product := model.Product{Name: "Anel", Slug: "anel", BasePrice: 100, CategoryID: category.ID, IsActive: true}
	require.NoError(t, repo.Create(&product))
	require.NoError(t, repo.AddImage(&model.ProductImage{ProductID: product.ID, Image: "https://cdn.example.com/a.jpg"}))

	require.NoError(t, repo.Delete(product.ID))

	var imageCount int64
	testDB.Model(&model.ProductImage{}).Where("product_id = ?", product.ID).Count(&imageCount)
	assert.Zero(t, imageCount)

	_, err := repo.FindByID(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
