package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"github.com/aurea-joias/aurea-backend/pkg/redis"
	"github.com/aurea-joias/aurea-backend/pkg/sms"
	"github.com/aurea-joias/aurea-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrNoVerificationRequested = errors.New("no verification code was requested")
	ErrPhoneRequired           = errors.New("phone number is required")
)

type AuthService interface {
	Register(email, password, firstName, lastName, phone string) (*model.User, *util.TokenPair, error)
	Login(email, password string) (*model.User, *util.TokenPair, error)
	Logout(token string, expiresAt time.Time) error
	GetUserByID(id uint) (*model.User, error)
	UpdateProfile(userID uint, firstName, lastName, cpf string) (*model.User, error)
	RequestPhoneVerification(userID uint, phone string) error
	ConfirmPhoneVerification(userID uint, code string) error
}

type authService struct {
	userRepo      repository.UserRepository
	smsSender     sms.Sender
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	smsSender sms.Sender,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		smsSender:     smsSender,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Register(email, password, firstName, lastName, phone string) (*model.User, *util.TokenPair, error) {
	// Username and email are stored lowercased so lookups stay
	// case-insensitive without per-query folding.
	email = strings.ToLower(strings.TrimSpace(email))

	logger.Info("Attempting user registration", map[string]interface{}{
		"email": email,
	})

	if err := util.ValidatePasswordPolicy(password); err != nil {
		logger.Warn("Registration failed: password policy violation", map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}
	if existingUser != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	// The profile row is created in the same insert so a user can never
	// exist without one.
	user := &model.User{
		Username:     email,
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         model.RoleCustomer,
		Profile:      &model.Profile{Phone: phone},
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

// Logout blacklists the access token until its natural expiry. Without redis
// the logout is client-side only.
func (s *authService) Logout(token string, expiresAt time.Time) error {
	if !redis.Available() {
		logger.Debug("Redis unavailable, skipping token blacklist", nil)
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := redis.BlacklistToken(context.Background(), token, ttl); err != nil {
		logger.Error("Failed to blacklist token", err, nil)
		return err
	}

	logger.Info("Token blacklisted on logout", map[string]interface{}{
		"ttl": ttl.String(),
	})
	return nil
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User not found", map[string]interface{}{
				"user_id": id,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID uint, firstName, lastName, cpf string) (*model.User, error) {
	logger.Info("Updating user profile", map[string]interface{}{
		"user_id": userID,
	})

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User not found for profile update", map[string]interface{}{
				"user_id": userID,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user for profile update", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	updated := false
	if firstName != "" && firstName != user.FirstName {
		user.FirstName = firstName
		updated = true
	}
	if lastName != "" && lastName != user.LastName {
		user.LastName = lastName
		updated = true
	}
	if cpf != "" && (user.CPF == nil || cpf != *user.CPF) {
		user.CPF = &cpf
		updated = true
	}

	if !updated {
		logger.Debug("No changes detected for user profile", map[string]interface{}{
			"user_id": userID,
		})
		return user, nil
	}

	if err := s.userRepo.Update(user); err != nil {
		logger.Error("Failed to update user profile", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("User profile updated successfully", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

func (s *authService) RequestPhoneVerification(userID uint, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneRequired
	}

	logger.Info("Phone verification requested", map[string]interface{}{
		"user_id": userID,
	})

	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		logger.Error("Failed to fetch profile for verification", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	code := util.GenerateVerificationCode()
	profile.Phone = phone
	profile.IsPhoneVerified = false
	profile.VerificationCode = &code

	if err := s.userRepo.SaveProfile(profile); err != nil {
		logger.Error("Failed to store verification code", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	// Delivery failures are logged but do not fail the request; the user
	// can ask for a new code at any time.
	if err := s.smsSender.SendVerificationCode(phone, code); err != nil {
		logger.Warn("Failed to dispatch verification SMS", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	logger.Info("Verification code stored and dispatched", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}

func (s *authService) ConfirmPhoneVerification(userID uint, code string) error {
	profile, err := s.userRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		logger.Error("Failed to fetch profile for confirmation", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	if profile.VerificationCode == nil {
		return ErrNoVerificationRequested
	}
	if code == "" || *profile.VerificationCode != code {
		logger.Warn("Phone verification failed: code mismatch", map[string]interface{}{
			"user_id": userID,
		})
		return ErrInvalidVerificationCode
	}

	profile.IsPhoneVerified = true
	profile.VerificationCode = nil

	if err := s.userRepo.SaveProfile(profile); err != nil {
		logger.Error("Failed to persist phone verification", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("Phone number verified", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
