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

func setupCustomRequestServiceTest(t *testing.T) (CustomRequestService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewCustomRequestService(repository.NewCustomRequestRepository(testDB)), testDB
}

func TestCustomRequestService_Create(t *testing.T) {
	requestService, testDB := setupCustomRequestServiceTest(t)
	owner, _ := seedTwoUsers(t, testDB)

	request, err := requestService.Create(owner.ID, "Aliança personalizada com gravação interna", "https://cdn.example.com/ref.jpg")
	require.NoError(t, err)
	assert.Equal(t, model.CustomRequestPending, request.Status)
	assert.Equal(t, owner.ID, request.UserID)
}

func TestCustomRequestService_Visibility(t *testing.T) {
	requestService, testDB := setupCustomRequestServiceTest(t)
	owner, other := seedTwoUsers(t, testDB)

	request, err := requestService.Create(owner.ID, "Pingente com pedra de nascimento", "")
	require.NoError(t, err)
	_, err = requestService.Create(other.ID, "Brinco sob medida", "")
	require.NoError(t, err)

	t.Run("Customers list only their own", func(t *testing.T) {
		own, err := requestService.List(owner.ID, false)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, request.ID, own[0].ID)
	})

	t.Run("Staff list everything", func(t *testing.T) {
		all, err := requestService.List(owner.ID, true)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Cross-user read is not found", func(t *testing.T) {
		_, err := requestService.Get(request.ID, other.ID, false)
		assert.ErrorIs(t, err, ErrCustomRequestNotFound)
	})

	t.Run("Staff read any", func(t *testing.T) {
		found, err := requestService.Get(request.ID, other.ID, true)
		require.NoError(t, err)
		assert.Equal(t, request.ID, found.ID)
	})
}

func TestCustomRequestService_UpdateStatus(t *testing.T) {
	requestService, testDB := setupCustomRequestServiceTest(t)
	owner, _ := seedTwoUsers(t, testDB)

	request, err := requestService.Create(owner.ID, "Colar com iniciais", "")
	require.NoError(t, err)

	updated, err := requestService.UpdateStatus(request.ID, model.CustomRequestInReview)
	require.NoError(t, err)
	assert.Equal(t, model.CustomRequestInReview, updated.Status)

	_, err = requestService.UpdateStatus(request.ID, model.CustomRequestStatus("melted"))
	assert.ErrorIs(t, err, ErrInvalidCustomRequestStatus)

	_, err = requestService.UpdateStatus(9999, model.CustomRequestApproved)
	assert.ErrorIs(t, err, ErrCustomRequestNotFound)
}
