package repository

import (
	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductFilter narrows and orders a product listing. Zero values mean
// "no constraint" except IncludeInactive, which widens visibility.
type ProductFilter struct {
	CategoryID       uint
	BasePriceLT      *float64
	BasePriceGT      *float64
	PromoIsNull      *bool
	PromoPriceLT     *float64
	AttributeValueID uint
	Search           string
	SortBy           string // id, price, created_at
	SortDesc         bool
	Limit            int
	Offset           int
	IncludeInactive  bool
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindWithFilter(filter ProductFilter) ([]model.Product, int64, error)
	FindByID(id uint) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	AddImage(image *model.ProductImage) error
	FindImageByID(id uint) (*model.ProductImage, error)
	DeleteImage(id uint) error
	ReplaceAttributes(product *model.Product, values []model.AttributeValue) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":        product.Name,
		"slug":        product.Slug,
		"category_id": product.CategoryID,
	})

	if err := r.db.Omit("Attributes", "Images", "Category").Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{})

	if !filter.IncludeInactive {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.CategoryID != 0 {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.BasePriceLT != nil {
		query = query.Where("products.base_price < ?", *filter.BasePriceLT)
	}
	if filter.BasePriceGT != nil {
		query = query.Where("products.base_price > ?", *filter.BasePriceGT)
	}
	if filter.PromoIsNull != nil {
		if *filter.PromoIsNull {
			query = query.Where("products.promotional_price IS NULL")
		} else {
			query = query.Where("products.promotional_price IS NOT NULL")
		}
	}
	if filter.PromoPriceLT != nil {
		query = query.Where("products.promotional_price < ?", *filter.PromoPriceLT)
	}
	if filter.AttributeValueID != 0 {
		query = query.Joins(
			"JOIN product_attribute_values pav ON pav.product_id = products.id",
		).Where("pav.attribute_value_id = ?", filter.AttributeValueID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("products.name LIKE ? OR products.description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count products in database", err, nil)
		return nil, 0, err
	}

	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	switch filter.SortBy {
	case "price":
		// effective price: promotional when set, base otherwise
		query = query.Order("COALESCE(products.promotional_price, products.base_price) " + direction)
	case "created_at":
		query = query.Order("products.created_at " + direction)
	default:
		query = query.Order("products.id " + direction)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Preload("Images").Preload("Attributes").Find(&products).Error; err != nil {
		logger.Error("Failed to find products in database", err, nil)
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Images").Preload("Attributes").Preload("Category").
		First(&product, id).Error
	if err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Images").Preload("Attributes").Preload("Category").
		Where("slug = ?", slug).First(&product).Error
	if err != nil {
		logger.Error("Failed to find product by slug in database", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *model.Product) error {
	err := r.db.Omit("Attributes", "Images", "Category").Save(product).Error
	if err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	if err := r.db.Where("product_id = ?", id).Delete(&model.ProductImage{}).Error; err != nil {
		logger.Error("Failed to delete product images from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	if err := r.db.Delete(&model.Product{}, id).Error; err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}

func (r *productRepository) AddImage(image *model.ProductImage) error {
	if err := r.db.Create(image).Error; err != nil {
		logger.Error("Failed to create product image in database", err, map[string]interface{}{
			"product_id": image.ProductID,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindImageByID(id uint) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.First(&image, id).Error; err != nil {
		logger.Error("Failed to find product image by ID in database", err, map[string]interface{}{
			"image_id": id,
		})
		return nil, err
	}
	return &image, nil
}

func (r *productRepository) DeleteImage(id uint) error {
	if err := r.db.Delete(&model.ProductImage{}, id).Error; err != nil {
		logger.Error("Failed to delete product image from database", err, map[string]interface{}{
			"image_id": id,
		})
		return err
	}
	return nil
}

func (r *productRepository) ReplaceAttributes(product *model.Product, values []model.AttributeValue) error {
	if err := r.db.Model(product).Association("Attributes").Replace(values); err != nil {
		logger.Error("Failed to replace product attributes in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}
