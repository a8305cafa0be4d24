package service

import (
	"errors"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"github.com/aurea-joias/aurea-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrAttributeNotFound      = errors.New("attribute not found")
	ErrAttributeValueNotFound = errors.New("attribute value not found")
)

type AttributeService interface {
	List() ([]model.ProductAttribute, error)
	Get(id uint) (*model.ProductAttribute, error)
	Create(name string) (*model.ProductAttribute, error)
	Update(id uint, name string) (*model.ProductAttribute, error)
	Delete(id uint) error
	AddValue(attributeID uint, value string) (*model.AttributeValue, error)
	DeleteValue(id uint) error
}

type attributeService struct {
	attributeRepo repository.AttributeRepository
}

func NewAttributeService(attributeRepo repository.AttributeRepository) AttributeService {
	return &attributeService{attributeRepo: attributeRepo}
}

func (s *attributeService) List() ([]model.ProductAttribute, error) {
	attributes, err := s.attributeRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list attributes", err, nil)
		return nil, err
	}
	return attributes, nil
}

func (s *attributeService) Get(id uint) (*model.ProductAttribute, error) {
	attribute, err := s.attributeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttributeNotFound
		}
		logger.Error("Failed to fetch attribute", err, map[string]interface{}{
			"attribute_id": id,
		})
		return nil, err
	}
	return attribute, nil
}

func (s *attributeService) Create(name string) (*model.ProductAttribute, error) {
	attribute := &model.ProductAttribute{
		Name: name,
		Slug: util.Slugify(name),
	}

	if err := s.attributeRepo.Create(attribute); err != nil {
		logger.Error("Failed to create attribute", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	logger.Info("Attribute created", map[string]interface{}{
		"attribute_id": attribute.ID,
		"slug":         attribute.Slug,
	})
	return attribute, nil
}

func (s *attributeService) Update(id uint, name string) (*model.ProductAttribute, error) {
	attribute, err := s.attributeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttributeNotFound
		}
		return nil, err
	}

	// Slug keeps its creation-time value across renames.
	attribute.Name = name

	if err := s.attributeRepo.Update(attribute); err != nil {
		logger.Error("Failed to update attribute", err, map[string]interface{}{
			"attribute_id": id,
		})
		return nil, err
	}
	return attribute, nil
}

func (s *attributeService) Delete(id uint) error {
	if _, err := s.attributeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttributeNotFound
		}
		return err
	}

	if err := s.attributeRepo.Delete(id); err != nil {
		logger.Error("Failed to delete attribute", err, map[string]interface{}{
			"attribute_id": id,
		})
		return err
	}

	logger.Info("Attribute deleted", map[string]interface{}{
		"attribute_id": id,
	})
	return nil
}

func (s *attributeService) AddValue(attributeID uint, value string) (*model.AttributeValue, error) {
	if _, err := s.attributeRepo.FindByID(attributeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttributeNotFound
		}
		return nil, err
	}

	attributeValue := &model.AttributeValue{
		AttributeID: attributeID,
		Value:       value,
	}
	if err := s.attributeRepo.CreateValue(attributeValue); err != nil {
		logger.Error("Failed to create attribute value", err, map[string]interface{}{
			"attribute_id": attributeID,
		})
		return nil, err
	}
	return attributeValue, nil
}

func (s *attributeService) DeleteValue(id uint) error {
	if _, err := s.attributeRepo.FindValueByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttributeValueNotFound
		}
		return err
	}

	if err := s.attributeRepo.DeleteValue(id); err != nil {
		logger.Error("Failed to delete attribute value", err, map[string]interface{}{
			"value_id": id,
		})
		return err
	}
	return nil
}
