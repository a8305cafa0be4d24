package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aurea-joias/aurea-backend/internal/app/service"
	apperrors "github.com/aurea-joias/aurea-backend/internal/errors"
	"github.com/aurea-joias/aurea-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type CreateProductRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	BasePrice        float64  `json:"base_price" binding:"required,gt=0"`
	PromotionalPrice *float64 `json:"promotional_price"`
	Category         uint     `json:"category" binding:"required"`
	IsActive         *bool    `json:"is_active"`
	IsFeatured       bool     `json:"is_featured"`
	Attributes       []uint   `json:"attributes"`
	Images           []string `json:"images"`
	CoverIndex       int      `json:"cover_index"`
}

type UpdateProductRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	BasePrice        *float64 `json:"base_price"`
	PromotionalPrice *float64 `json:"promotional_price"`
	ClearPromotional bool     `json:"clear_promotional"`
	Category         *uint    `json:"category"`
	IsActive         *bool    `json:"is_active"`
	IsFeatured       *bool    `json:"is_featured"`
	Attributes       []uint   `json:"attributes"`
	NewImages        []string `json:"new_images"`
}

// ListProducts returns the filtered catalog listing
// GET /api/v1/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input, ok := parseProductListQuery(c)
	if !ok {
		return
	}

	products, total, err := ctrl.productService.List(input, middleware.IsStaff(c))
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"total":    total,
	})
}

// GetProduct returns one product by slug
// GET /api/v1/products/:slug
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")
	product, err := ctrl.productService.GetBySlug(slug, middleware.IsStaff(c))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// CreateProduct creates a new product (Admin only)
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid product data")
		return
	}

	product, err := ctrl.productService.Create(service.ProductCreateInput{
		Name:              req.Name,
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		PromotionalPrice:  req.PromotionalPrice,
		CategoryID:        req.Category,
		IsActive:          req.IsActive,
		IsFeatured:        req.IsFeatured,
		AttributeValueIDs: req.Attributes,
		ImageURLs:         req.Images,
		CoverIndex:        req.CoverIndex,
	})
	if err != nil {
		var imgErr *service.ImageSaveError
		if errors.As(err, &imgErr) {
			// The product row is committed; only some images failed.
			log.Warn("Product created with failed images", map[string]interface{}{
				"product_id":     product.ID,
				"failed_indexes": imgErr.FailedIndexes,
			})
			c.JSON(http.StatusCreated, gin.H{
				"message":       "Product created, but some images could not be saved",
				"product":       product,
				"failed_images": imgErr.FailedIndexes,
			})
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		if errors.Is(err, service.ErrAttributeValueNotFound) {
			apperrors.BadRequest(c, apperrors.AttributeNotFound, "Unknown attribute value")
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create product")
		return
	}

	log.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct updates an existing product, addressed by slug (Admin only)
// PUT /api/v1/products/:slug
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")
	existing, err := ctrl.productService.GetBySlug(slug, true)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid product data")
		return
	}

	product, err := ctrl.productService.Update(existing.ID, service.ProductUpdateInput{
		Name:              req.Name,
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		PromotionalPrice:  req.PromotionalPrice,
		ClearPromotional:  req.ClearPromotional,
		CategoryID:        req.Category,
		IsActive:          req.IsActive,
		IsFeatured:        req.IsFeatured,
		AttributeValueIDs: req.Attributes,
		NewImageURLs:      req.NewImages,
	})
	if err != nil {
		var imgErr *service.ImageSaveError
		if errors.As(err, &imgErr) {
			log.Warn("Product updated with failed images", map[string]interface{}{
				"product_id":     product.ID,
				"failed_indexes": imgErr.FailedIndexes,
			})
			c.JSON(http.StatusOK, gin.H{
				"message":       "Product updated, but some images could not be saved",
				"product":       product,
				"failed_images": imgErr.FailedIndexes,
			})
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		if errors.Is(err, service.ErrAttributeValueNotFound) {
			apperrors.BadRequest(c, apperrors.AttributeNotFound, "Unknown attribute value")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": existing.ID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct deletes a product, addressed by slug (Admin only)
// DELETE /api/v1/products/:slug
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")
	existing, err := ctrl.productService.GetBySlug(slug, true)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product")
		return
	}

	if err := ctrl.productService.Delete(existing.ID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": existing.ID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product")
		return
	}

	log.Info("Product deleted", map[string]interface{}{
		"product_id": existing.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// DeleteProductImage removes one image from a product (Admin only)
// DELETE /api/v1/products/images/:id
func (ctrl *ProductController) DeleteProductImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteImage(id); err != nil {
		if errors.Is(err, service.ErrProductImageNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Product image not found")
			return
		}
		log.Error("Failed to delete product image", err, map[string]interface{}{
			"image_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product image deleted successfully",
	})
}

func parseProductListQuery(c *gin.Context) (service.ProductListInput, bool) {
	input := service.ProductListInput{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		Limit:        20,
	}

	floatParam := func(name string) (*float64, bool) {
		raw := c.Query(name)
		if raw == "" {
			return nil, true
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "Invalid value for "+name)
			return nil, false
		}
		return &v, true
	}

	var ok bool
	if input.BasePriceLT, ok = floatParam("base_price_lt"); !ok {
		return input, false
	}
	if input.BasePriceGT, ok = floatParam("base_price_gt"); !ok {
		return input, false
	}
	if input.PromoPriceLT, ok = floatParam("promotional_price_lt"); !ok {
		return input, false
	}

	if raw := c.Query("promotional_price_isnull"); raw != "" {
		isNull, err := strconv.ParseBool(raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "Invalid value for promotional_price_isnull")
			return input, false
		}
		input.PromoIsNull = &isNull
	}

	if raw := c.Query("attribute_value"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid attribute value ID")
			return input, false
		}
		input.AttributeValueID = uint(id)
	}

	// ordering accepts id, price, created_at; a leading "-" flips direction.
	if ordering := c.Query("ordering"); ordering != "" {
		if strings.HasPrefix(ordering, "-") {
			input.SortDesc = true
			ordering = ordering[1:]
		}
		switch ordering {
		case "id", "price", "created_at":
			input.SortBy = ordering
		default:
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid ordering field")
			return input, false
		}
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "Limit must be between 1 and 100")
			return input, false
		}
		input.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "Offset must not be negative")
			return input, false
		}
		input.Offset = offset
	}

	return input, true
}
