package service

import (
	"errors"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCustomRequestNotFound      = errors.New("custom request not found")
	ErrInvalidCustomRequestStatus = errors.New("invalid custom request status")
)

type CustomRequestService interface {
	Create(userID uint, description, referenceImage string) (*model.CustomRequest, error)
	List(userID uint, staff bool) ([]model.CustomRequest, error)
	Get(id uint, userID uint, staff bool) (*model.CustomRequest, error)
	UpdateStatus(id uint, status model.CustomRequestStatus) (*model.CustomRequest, error)
}

type customRequestService struct {
	requestRepo repository.CustomRequestRepository
}

func NewCustomRequestService(requestRepo repository.CustomRequestRepository) CustomRequestService {
	return &customRequestService{requestRepo: requestRepo}
}

func (s *customRequestService) Create(userID uint, description, referenceImage string) (*model.CustomRequest, error) {
	logger.Info("Creating custom request", map[string]interface{}{
		"user_id": userID,
	})

	request := &model.CustomRequest{
		UserID:         userID,
		Description:    description,
		ReferenceImage: referenceImage,
		Status:         model.CustomRequestPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		logger.Error("Failed to create custom request", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Custom request created", map[string]interface{}{
		"request_id": request.ID,
		"user_id":    userID,
	})
	return request, nil
}

func (s *customRequestService) List(userID uint, staff bool) ([]model.CustomRequest, error) {
	if staff {
		requests, err := s.requestRepo.FindAll()
		if err != nil {
			logger.Error("Failed to list custom requests", err, nil)
			return nil, err
		}
		return requests, nil
	}

	requests, err := s.requestRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to list custom requests for user", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return requests, nil
}

func (s *customRequestService) Get(id uint, userID uint, staff bool) (*model.CustomRequest, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomRequestNotFound
		}
		logger.Error("Failed to fetch custom request", err, map[string]interface{}{
			"request_id": id,
		})
		return nil, err
	}

	if !staff && request.UserID != userID {
		return nil, ErrCustomRequestNotFound
	}
	return request, nil
}

func (s *customRequestService) UpdateStatus(id uint, status model.CustomRequestStatus) (*model.CustomRequest, error) {
	if !model.ValidCustomRequestStatus(status) {
		return nil, ErrInvalidCustomRequestStatus
	}

	if err := s.requestRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomRequestNotFound
		}
		logger.Error("Failed to update custom request status", err, map[string]interface{}{
			"request_id": id,
			"status":     status,
		})
		return nil, err
	}

	logger.Info("Custom request status updated", map[string]interface{}{
		"request_id": id,
		"status":     status,
	})
	return s.requestRepo.FindByID(id)
}
