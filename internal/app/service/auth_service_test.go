package service

import (
	"errors"
	"testing"
	"time"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/aurea-joias/aurea-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMSSender records dispatched codes and can be told to fail.
type fakeSMSSender struct {
	sentPhone string
	sentCode  string
	fail      bool
}

func (f *fakeSMSSender) SendVerificationCode(phone, code string) error {
	if f.fail {
		return errors.New("gateway unreachable")
	}
	f.sentPhone = phone
	f.sentCode = code
	return nil
}

func setupAuthServiceTest(t *testing.T) (AuthService, repository.UserRepository, *fakeSMSSender) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	sender := &fakeSMSSender{}
	authService := NewAuthService(
		userRepo,
		sender,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
	return authService, userRepo, sender
}

func TestAuthService_Register(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	tests := []struct {
		name      string
		email     string
		password  string
		firstName string
		wantErr   error
	}{
		{
			name:      "Valid registration",
			email:     "maria@example.com",
			password:  "Password123",
			firstName: "Maria",
			wantErr:   nil,
		},
		{
			name:      "Duplicate email",
			email:     "maria@example.com",
			password:  "Password456",
			firstName: "Outra",
			wantErr:   ErrEmailAlreadyExists,
		},
		{
			name:      "Duplicate email differing only in case",
			email:     "MARIA@Example.com",
			password:  "Password456",
			firstName: "Outra",
			wantErr:   ErrEmailAlreadyExists,
		},
		{
			name:      "Password without uppercase",
			email:     "joao@example.com",
			password:  "password123",
			firstName: "João",
			wantErr:   util.ErrPasswordNoUpper,
		},
		{
			name:      "Password without digit",
			email:     "joao@example.com",
			password:  "PasswordOnly",
			firstName: "João",
			wantErr:   util.ErrPasswordNoDigit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Register(tt.email, tt.password, tt.firstName, "", "")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, "maria@example.com", user.Email)
				assert.Equal(t, user.Email, user.Username)
				assert.Equal(t, model.RoleCustomer, user.Role)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
			}
		})
	}
}

func TestAuthService_Register_CreatesProfile(t *testing.T) {
	authService, userRepo, _ := setupAuthServiceTest(t)

	user, _, err := authService.Register("maria@example.com", "Password123", "Maria", "Silva", "+55 11 99999-0000")
	require.NoError(t, err)

	profile, err := userRepo.FindProfileByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "+55 11 99999-0000", profile.Phone)
	assert.False(t, profile.IsPhoneVerified)
}

func TestAuthService_Login(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register("maria@example.com", "Password123", "Maria", "", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid login",
			email:    "maria@example.com",
			password: "Password123",
		},
		{
			name:     "Case-insensitive email",
			email:    "Maria@Example.COM",
			password: "Password123",
		},
		{
			name:     "Wrong password",
			email:    "maria@example.com",
			password: "WrongPassword1",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown user",
			email:    "nobody@example.com",
			password: "Password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "maria@example.com", user.Email)
				assert.NotEmpty(t, tokens.AccessToken)
			}
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	authService, _, _ := setupAuthServiceTest(t)

	user, _, err := authService.Register("maria@example.com", "Password123", "Maria", "", "")
	require.NoError(t, err)

	updated, err := authService.UpdateProfile(user.ID, "", "Silva", "123.456.789-00")
	require.NoError(t, err)
	assert.Equal(t, "Maria", updated.FirstName) // untouched
	assert.Equal(t, "Silva", updated.LastName)
	require.NotNil(t, updated.CPF)
	assert.Equal(t, "123.456.789-00", *updated.CPF)

	_, err = authService.UpdateProfile(9999, "X", "", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_PhoneVerification(t *testing.T) {
	authService, userRepo, sender := setupAuthServiceTest(t)

	user, _, err := authService.Register("maria@example.com", "Password123", "Maria", "", "")
	require.NoError(t, err)

	t.Run("Confirm without request", func(t *testing.T) {
		err := authService.ConfirmPhoneVerification(user.ID, "123456")
		assert.ErrorIs(t, err, ErrNoVerificationRequested)
	})

	t.Run("Request stores and dispatches code", func(t *testing.T) {
		require.NoError(t, authService.RequestPhoneVerification(user.ID, "+55 11 98888-0000"))

		profile, err := userRepo.FindProfileByUserID(user.ID)
		require.NoError(t, err)
		require.NotNil(t, profile.VerificationCode)
		assert.Equal(t, "+55 11 98888-0000", sender.sentPhone)
		assert.Equal(t, *profile.VerificationCode, sender.sentCode)
	})

	t.Run("Wrong code leaves state untouched", func(t *testing.T) {
		err := authService.ConfirmPhoneVerification(user.ID, "000000")
		assert.ErrorIs(t, err, ErrInvalidVerificationCode)

		profile, err := userRepo.FindProfileByUserID(user.ID)
		require.NoError(t, err)
		assert.False(t, profile.IsPhoneVerified)
		assert.NotNil(t, profile.VerificationCode)
	})

	t.Run("Correct code verifies and clears", func(t *testing.T) {
		require.NoError(t, authService.ConfirmPhoneVerification(user.ID, sender.sentCode))

		profile, err := userRepo.FindProfileByUserID(user.ID)
		require.NoError(t, err)
		assert.True(t, profile.IsPhoneVerified)
		assert.Nil(t, profile.VerificationCode)
	})

	t.Run("Empty phone rejected", func(t *testing.T) {
		err := authService.RequestPhoneVerification(user.ID, "  ")
		assert.ErrorIs(t, err, ErrPhoneRequired)
	})
}

func TestAuthService_PhoneVerification_SMSFailureIsNotFatal(t *testing.T) {
	authService, userRepo, sender := setupAuthServiceTest(t)
	sender.fail = true

	user, _, err := authService.Register("maria@example.com", "Password123", "Maria", "", "")
	require.NoError(t, err)

	// delivery failure must not surface; the code is stored regardless
	require.NoError(t, authService.RequestPhoneVerification(user.ID, "+55 11 97777-0000"))

	profile, err := userRepo.FindProfileByUserID(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, profile.VerificationCode)
}
