package repository

import (
	"testing"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*gorm.DB, OrderRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewOrderRepository(testDB)
	return testDB, repo
}

func createOrderFixtures(t *testing.T, testDB *gorm.DB) (model.User, model.Product) {
	user := model.User{
		Username:     "cliente@example.com",
		Email:        "cliente@example.com",
		PasswordHash: "hash",
		FirstName:    "Maria",
	}
	require.NoError(t, testDB.Create(&user).Error)

	category := model.Category{Name: "Anéis", Slug: "aneis"}
	require.NoError(t, testDB.Create(&category).Error)

	product := model.Product{
		Name:       "Anel Solitário",
		Slug:       "anel-solitario",
		BasePrice:  4890,
		CategoryID: category.ID,
		IsActive:   true,
	}
	require.NoError(t, testDB.Create(&product).Error)
	return user, product
}

func TestOrderRepository_CreateWithItems(t *testing.T) {
	testDB, repo := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	user, product := createOrderFixtures(t, testDB)

	order := &model.Order{
		CustomerID: &user.ID,
		GuestName:  "Maria Silva",
		GuestEmail: "cliente@example.com",
		Address:    "Rua das Flores, 123 - São Paulo/SP",
		Status:     model.OrderStatusPending,
		Total:      9780,
		Items: []model.OrderItem{
			{ProductID: product.ID, Quantity: 2, Price: 4890},
		},
	}

	require.NoError(t, repo.CreateWithItems(order))
	assert.NotZero(t, order.ID)
	require.Len(t, order.Items, 1)
	assert.NotZero(t, order.Items[0].ID)
}

func TestOrderRepository_CreateWithItems_MissingProductAbortsAll(t *testing.T) {
	testDB, repo := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	user, product := createOrderFixtures(t, testDB)

	order := &model.Order{
		CustomerID: &user.ID,
		Address:    "Rua das Flores, 123",
		Status:     model.OrderStatusPending,
		Total:      5000,
		Items: []model.OrderItem{
			{ProductID: product.ID, Quantity: 1, Price: 4890},
			{ProductID: 9999, Quantity: 1, Price: 110},
		},
	}

	err := repo.CreateWithItems(order)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// nothing from the failed order may survive
	var orderCount, itemCount int64
	testDB.Model(&model.Order{}).Count(&orderCount)
	testDB.Model(&model.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestOrderRepository_FindByCustomerID(t *testing.T) {
	testDB, repo := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	user, product := createOrderFixtures(t, testDB)

	other := model.User{
		Username:     "outro@example.com",
		Email:        "outro@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, testDB.Create(&other).Error)

	for _, customerID := range []uint{user.ID, user.ID, other.ID} {
		id := customerID
		require.NoError(t, repo.CreateWithItems(&model.Order{
			CustomerID: &id,
			Address:    "Rua A, 1",
			Status:     model.OrderStatusPending,
			Total:      4890,
			Items:      []model.OrderItem{{ProductID: product.ID, Quantity: 1, Price: 4890}},
		}))
	}

	orders, err := repo.FindByCustomerID(user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		require.Len(t, order.Items, 1)
		assert.Equal(t, product.ID, order.Items[0].Product.ID)
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	testDB, repo := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	user, product := createOrderFixtures(t, testDB)

	order := &model.Order{
		CustomerID: &user.ID,
		Address:    "Rua A, 1",
		Status:     model.OrderStatusPending,
		Total:      4890,
		Items:      []model.OrderItem{{ProductID: product.ID, Quantity: 1, Price: 4890}},
	}
	require.NoError(t, repo.CreateWithItems(order))

	require.NoError(t, repo.UpdateStatus(order.ID, model.OrderStatusPaid))

	updated, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, updated.Status)

	err = repo.UpdateStatus(9999, model.OrderStatusPaid)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
