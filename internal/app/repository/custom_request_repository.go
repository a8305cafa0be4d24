package repository

import (
	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"gorm.io/gorm"
)

type CustomRequestRepository interface {
	Create(request *model.CustomRequest) error
	FindByID(id uint) (*model.CustomRequest, error)
	FindAll() ([]model.CustomRequest, error)
	FindByUserID(userID uint) ([]model.CustomRequest, error)
	UpdateStatus(id uint, status model.CustomRequestStatus) error
}

type customRequestRepository struct {
	db *gorm.DB
}

func NewCustomRequestRepository(db *gorm.DB) CustomRequestRepository {
	return &customRequestRepository{db: db}
}

func (r *customRequestRepository) Create(request *model.CustomRequest) error {
	logger.Debug("Creating custom request in database", map[string]interface{}{
		"user_id": request.UserID,
	})

	if err := r.db.Create(request).Error; err != nil {
		logger.Error("Failed to create custom request in database", err, map[string]interface{}{
			"user_id": request.UserID,
		})
		return err
	}
	return nil
}

func (r *customRequestRepository) FindByID(id uint) (*model.CustomRequest, error) {
	var request model.CustomRequest
	if err := r.db.Preload("User").First(&request, id).Error; err != nil {
		logger.Error("Failed to find custom request by ID in database", err, map[string]interface{}{
			"request_id": id,
		})
		return nil, err
	}
	return &request, nil
}

func (r *customRequestRepository) FindAll() ([]model.CustomRequest, error) {
	var requests []model.CustomRequest
	if err := r.db.Preload("User").Order("created_at DESC").Find(&requests).Error; err != nil {
		logger.Error("Failed to find custom requests in database", err, nil)
		return nil, err
	}
	return requests, nil
}

func (r *customRequestRepository) FindByUserID(userID uint) ([]model.CustomRequest, error) {
	var requests []model.CustomRequest
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&requests).Error
	if err != nil {
		logger.Error("Failed to find custom requests by user in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return requests, nil
}

func (r *customRequestRepository) UpdateStatus(id uint, status model.CustomRequestStatus) error {
	result := r.db.Model(&model.CustomRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		logger.Error("Failed to update custom request status in database", result.Error, map[string]interface{}{
			"request_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
