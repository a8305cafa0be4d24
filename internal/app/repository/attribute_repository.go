package repository

import (
	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"gorm.io/gorm"
)

type AttributeRepository interface {
	Create(attribute *model.ProductAttribute) error
	FindAll() ([]model.ProductAttribute, error)
	FindByID(id uint) (*model.ProductAttribute, error)
	Update(attribute *model.ProductAttribute) error
	Delete(id uint) error
	CreateValue(value *model.AttributeValue) error
	FindValueByID(id uint) (*model.AttributeValue, error)
	FindValuesByIDs(ids []uint) ([]model.AttributeValue, error)
	DeleteValue(id uint) error
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepository {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(attribute *model.ProductAttribute) error {
	logger.Debug("Creating attribute in database", map[string]interface{}{
		"name": attribute.Name,
		"slug": attribute.Slug,
	})

	if err := r.db.Create(attribute).Error; err != nil {
		logger.Error("Failed to create attribute in database", err, map[string]interface{}{
			"name": attribute.Name,
		})
		return err
	}
	return nil
}

func (r *attributeRepository) FindAll() ([]model.ProductAttribute, error) {
	var attributes []model.ProductAttribute
	if err := r.db.Preload("Values").Order("name ASC").Find(&attributes).Error; err != nil {
		logger.Error("Failed to find attributes in database", err, nil)
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) FindByID(id uint) (*model.ProductAttribute, error) {
	var attribute model.ProductAttribute
	if err := r.db.Preload("Values").First(&attribute, id).Error; err != nil {
		logger.Error("Failed to find attribute by ID in database", err, map[string]interface{}{
			"attribute_id": id,
		})
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) Update(attribute *model.ProductAttribute) error {
	if err := r.db.Save(attribute).Error; err != nil {
		logger.Error("Failed to update attribute in database", err, map[string]interface{}{
			"attribute_id": attribute.ID,
		})
		return err
	}
	return nil
}

// Delete removes an attribute type; its values cascade with it
func (r *attributeRepository) Delete(id uint) error {
	logger.Debug("Deleting attribute from database", map[string]interface{}{
		"attribute_id": id,
	})

	if err := r.db.Exec(
		"DELETE FROM product_attribute_values WHERE attribute_value_id IN (SELECT id FROM attribute_values WHERE attribute_id = ?)", id,
	).Error; err != nil {
		logger.Error("Failed to clear product attribute associations", err, map[string]interface{}{
			"attribute_id": id,
		})
		return err
	}
	if err := r.db.Where("attribute_id = ?", id).Delete(&model.AttributeValue{}).Error; err != nil {
		logger.Error("Failed to delete attribute values from database", err, map[string]interface{}{
			"attribute_id": id,
		})
		return err
	}
	if err := r.db.Delete(&model.ProductAttribute{}, id).Error; err != nil {
		logger.Error("Failed to delete attribute from database", err, map[string]interface{}{
			"attribute_id": id,
		})
		return err
	}
	return nil
}

func (r *attributeRepository) CreateValue(value *model.AttributeValue) error {
	logger.Debug("Creating attribute value in database", map[string]interface{}{
		"attribute_id": value.AttributeID,
		"value":        value.Value,
	})

	if err := r.db.Create(value).Error; err != nil {
		logger.Error("Failed to create attribute value in database", err, map[string]interface{}{
			"attribute_id": value.AttributeID,
		})
		return err
	}
	return nil
}

func (r *attributeRepository) FindValueByID(id uint) (*model.AttributeValue, error) {
	var value model.AttributeValue
	if err := r.db.Preload("Attribute").First(&value, id).Error; err != nil {
		logger.Error("Failed to find attribute value by ID in database", err, map[string]interface{}{
			"value_id": id,
		})
		return nil, err
	}
	return &value, nil
}

func (r *attributeRepository) FindValuesByIDs(ids []uint) ([]model.AttributeValue, error) {
	var values []model.AttributeValue
	if len(ids) == 0 {
		return values, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&values).Error; err != nil {
		logger.Error("Failed to find attribute values by IDs in database", err, map[string]interface{}{
			"value_ids": ids,
		})
		return nil, err
	}
	return values, nil
}

func (r *attributeRepository) DeleteValue(id uint) error {
	if err := r.db.Exec(
		"DELETE FROM product_attribute_values WHERE attribute_value_id = ?", id,
	).Error; err != nil {
		logger.Error("Failed to clear product attribute associations", err, map[string]interface{}{
			"value_id": id,
		})
		return err
	}
	if err := r.db.Delete(&model.AttributeValue{}, id).Error; err != nil {
		logger.Error("Failed to delete attribute value from database", err, map[string]interface{}{
			"value_id": id,
		})
		return err
	}
	return nil
}
