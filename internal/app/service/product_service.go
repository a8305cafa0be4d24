package service

import (
	"errors"
	"fmt"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/repository"
	"github.com/aurea-joias/aurea-backend/pkg/logger"
	"github.com/aurea-joias/aurea-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductImageNotFound = errors.New("product image not found")
)

// ImageSaveError reports which of the submitted images could not be stored.
// The product itself is committed; the caller may retry just the failed ones.
type ImageSaveError struct {
	FailedIndexes []int
}

func (e *ImageSaveError) Error() string {
	return fmt.Sprintf("failed to save %d product image(s)", len(e.FailedIndexes))
}

// ProductListInput is the catalog listing query as the client sends it.
type ProductListInput struct {
	CategorySlug     string
	BasePriceLT      *float64
	BasePriceGT      *float64
	PromoIsNull      *bool
	PromoPriceLT     *float64
	AttributeValueID uint
	Search           string
	SortBy           string
	SortDesc         bool
	Limit            int
	Offset           int
}

type ProductCreateInput struct {
	Name              string
	Description       string
	BasePrice         float64
	PromotionalPrice  *float64
	CategoryID        uint
	IsActive          *bool
	IsFeatured        bool
	AttributeValueIDs []uint
	ImageURLs         []string
	CoverIndex        int
}

type ProductUpdateInput struct {
	Name              *string
	Description       *string
	BasePrice         *float64
	PromotionalPrice  *float64
	ClearPromotional  bool
	CategoryID        *uint
	IsActive          *bool
	IsFeatured        *bool
	AttributeValueIDs []uint
	NewImageURLs      []string
}

type ProductService interface {
	List(input ProductListInput, staff bool) ([]model.Product, int64, error)
	GetBySlug(slug string, staff bool) (*model.Product, error)
	GetByID(id uint) (*model.Product, error)
	Create(input ProductCreateInput) (*model.Product, error)
	Update(id uint, input ProductUpdateInput) (*model.Product, error)
	Delete(id uint) error
	DeleteImage(imageID uint) error
}

type productService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	attributeRepo repository.AttributeRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	attributeRepo repository.AttributeRepository,
) ProductService {
	return &productService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		attributeRepo: attributeRepo,
	}
}

func (s *productService) List(input ProductListInput, staff bool) ([]model.Product, int64, error) {
	filter := repository.ProductFilter{
		BasePriceLT:      input.BasePriceLT,
		BasePriceGT:      input.BasePriceGT,
		PromoIsNull:      input.PromoIsNull,
		PromoPriceLT:     input.PromoPriceLT,
		AttributeValueID: input.AttributeValueID,
		Search:           input.Search,
		SortBy:           input.SortBy,
		SortDesc:         input.SortDesc,
		Limit:            input.Limit,
		Offset:           input.Offset,
		IncludeInactive:  staff,
	}

	// The category filter matches the named category only, not its
	// descendants. An unknown slug yields an empty page rather than an
	// error, matching the storefront's filter semantics.
	if input.CategorySlug != "" {
		category, err := s.categoryRepo.FindBySlug(input.CategorySlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []model.Product{}, 0, nil
			}
			return nil, 0, err
		}
		filter.CategoryID = category.ID
	}

	products, total, err := s.productRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to list products", err, nil)
		return nil, 0, err
	}
	return products, total, nil
}

func (s *productService) GetBySlug(slug string, staff bool) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product by slug", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}

	// Hidden products are indistinguishable from missing ones for shoppers.
	if !product.IsActive && !staff {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

// Create commits the product row first, then stores images one by one. Image
// failures never roll the product back; they surface as an ImageSaveError so
// the client can retry the uploads.
func (s *productService) Create(input ProductCreateInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":        input.Name,
		"category_id": input.CategoryID,
	})

	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	values, err := s.resolveAttributeValues(input.AttributeValueIDs)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &model.Product{
		Name:             input.Name,
		Slug:             util.Slugify(input.Name),
		Description:      input.Description,
		BasePrice:        input.BasePrice,
		PromotionalPrice: input.PromotionalPrice,
		CategoryID:       input.CategoryID,
		IsActive:         isActive,
		IsFeatured:       input.IsFeatured,
	}

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	if len(values) > 0 {
		if err := s.productRepo.ReplaceAttributes(product, values); err != nil {
			return nil, err
		}
		product.Attributes = values
	}

	if imgErr := s.appendImages(product, input.ImageURLs, input.CoverIndex); imgErr != nil {
		return product, imgErr
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return product, nil
}

func (s *productService) Update(id uint, input ProductUpdateInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product for update", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}

	// The slug is fixed at creation; renames do not regenerate it.
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.BasePrice != nil {
		product.BasePrice = *input.BasePrice
	}
	if input.ClearPromotional {
		product.PromotionalPrice = nil
	} else if input.PromotionalPrice != nil {
		product.PromotionalPrice = input.PromotionalPrice
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	if input.AttributeValueIDs != nil {
		values, err := s.resolveAttributeValues(input.AttributeValueIDs)
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.ReplaceAttributes(product, values); err != nil {
			return nil, err
		}
		product.Attributes = values
	}

	// Updates only ever add images; removal is an explicit separate call.
	if imgErr := s.appendImages(product, input.NewImageURLs, -1); imgErr != nil {
		return product, imgErr
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

func (s *productService) Delete(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func (s *productService) DeleteImage(imageID uint) error {
	if _, err := s.productRepo.FindImageByID(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductImageNotFound
		}
		return err
	}

	if err := s.productRepo.DeleteImage(imageID); err != nil {
		logger.Error("Failed to delete product image", err, map[string]interface{}{
			"image_id": imageID,
		})
		return err
	}
	return nil
}

func (s *productService) resolveAttributeValues(ids []uint) ([]model.AttributeValue, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values, err := s.attributeRepo.FindValuesByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(values) != len(ids) {
		return nil, ErrAttributeValueNotFound
	}
	return values, nil
}

func (s *productService) appendImages(product *model.Product, urls []string, coverIndex int) error {
	var failed []int
	for i, url := range urls {
		image := &model.ProductImage{
			ProductID: product.ID,
			Image:     url,
			IsCover:   i == coverIndex,
		}
		if err := s.productRepo.AddImage(image); err != nil {
			logger.Warn("Failed to save product image", map[string]interface{}{
				"product_id": product.ID,
				"index":      i,
			})
			failed = append(failed, i)
			continue
		}
		product.Images = append(product.Images, *image)
	}

	if len(failed) > 0 {
		return &ImageSaveError{FailedIndexes: failed}
	}
	return nil
}
