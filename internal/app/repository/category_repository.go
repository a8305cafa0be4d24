package repository

import (
	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) error
	DeleteMany(ids []uint) error
	CountProductsByCategoryIDs(ids []uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"name":   category.Name,
		"slug":   category.Slug,
		"parent": category.ParentID,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"name": category.Name,
			"slug": category.Slug,
		})
		return err
	}
	return nil
}

// FindAll returns every category in one query; callers build the tree in memory
func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to find categories in database", err, nil)
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		logger.Error("Failed to find category by ID in database", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		logger.Error("Failed to find category by slug in database", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	logger.Debug("Updating category in database", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})

	if err := r.db.Save(category).Error; err != nil {
		logger.Error("Failed to update category in database", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) Delete(id uint) error {
	return r.DeleteMany([]uint{id})
}

// DeleteMany removes a category subtree in one statement
func (r *categoryRepository) DeleteMany(ids []uint) error {
	logger.Debug("Deleting categories from database", map[string]interface{}{
		"category_ids": ids,
	})

	if err := r.db.Delete(&model.Category{}, ids).Error; err != nil {
		logger.Error("Failed to delete categories from database", err, map[string]interface{}{
			"category_ids": ids,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) CountProductsByCategoryIDs(ids []uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).
		Where("category_id IN ?", ids).
		Count(&count).Error; err != nil {
		logger.Error("Failed to count products by category in database", err, map[string]interface{}{
			"category_ids": ids,
		})
		return 0, err
	}
	return count, nil
}
