package controller

import (
	"errors"
	"net/http"

	"github.com/aurea-joias/aurea-backend/internal/app/service"
	apperrors "github.com/aurea-joias/aurea-backend/internal/errors"
	"github.com/aurea-joias/aurea-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AttributeController struct {
	attributeService service.AttributeService
}

func NewAttributeController(attributeService service.AttributeService) *AttributeController {
	return &AttributeController{
		attributeService: attributeService,
	}
}

type AttributeRequest struct {
	Name string `json:"name" binding:"required"`
}

type AttributeValueRequest struct {
	Value string `json:"value" binding:"required"`
}

// ListAttributes returns every attribute type with its values
// GET /api/v1/attributes
func (ctrl *AttributeController) ListAttributes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	attributes, err := ctrl.attributeService.List()
	if err != nil {
		log.Error("Failed to fetch attributes", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list attributes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attributes": attributes,
		"count":      len(attributes),
	})
}

// GetAttribute returns one attribute type
// GET /api/v1/attributes/:id
func (ctrl *AttributeController) GetAttribute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attribute, err := ctrl.attributeService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrAttributeNotFound) {
			apperrors.NotFound(c, apperrors.AttributeNotFound, "Attribute not found")
			return
		}
		log.Error("Failed to fetch attribute", err, map[string]interface{}{
			"attribute_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get attribute")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attribute": attribute,
	})
}

// CreateAttribute creates a new attribute type (Admin only)
// POST /api/v1/attributes
func (ctrl *AttributeController) CreateAttribute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid attribute data")
		return
	}

	attribute, err := ctrl.attributeService.Create(req.Name)
	if err != nil {
		log.Error("Failed to create attribute", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create attribute")
		return
	}

	log.Info("Attribute created", map[string]interface{}{
		"attribute_id": attribute.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Attribute created successfully",
		"attribute": attribute,
	})
}

// UpdateAttribute renames an attribute type (Admin only)
// PUT /api/v1/attributes/:id
func (ctrl *AttributeController) UpdateAttribute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid attribute data")
		return
	}

	attribute, err := ctrl.attributeService.Update(id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrAttributeNotFound) {
			apperrors.NotFound(c, apperrors.AttributeNotFound, "Attribute not found")
			return
		}
		log.Error("Failed to update attribute", err, map[string]interface{}{
			"attribute_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update attribute")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Attribute updated successfully",
		"attribute": attribute,
	})
}

// DeleteAttribute removes an attribute type and its values (Admin only)
// DELETE /api/v1/attributes/:id
func (ctrl *AttributeController) DeleteAttribute(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.attributeService.Delete(id); err != nil {
		if errors.Is(err, service.ErrAttributeNotFound) {
			apperrors.NotFound(c, apperrors.AttributeNotFound, "Attribute not found")
			return
		}
		log.Error("Failed to delete attribute", err, map[string]interface{}{
			"attribute_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete attribute")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute deleted successfully",
	})
}

// AddAttributeValue adds a value to an attribute type (Admin only)
// POST /api/v1/attributes/:id/values
func (ctrl *AttributeController) AddAttributeValue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AttributeValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid attribute value data")
		return
	}

	value, err := ctrl.attributeService.AddValue(id, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrAttributeNotFound) {
			apperrors.NotFound(c, apperrors.AttributeNotFound, "Attribute not found")
			return
		}
		log.Error("Failed to add attribute value", err, map[string]interface{}{
			"attribute_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "add attribute value")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Attribute value created successfully",
		"value":   value,
	})
}

// DeleteAttributeValue removes one attribute value (Admin only)
// DELETE /api/v1/attributes/values/:id
func (ctrl *AttributeController) DeleteAttributeValue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.attributeService.DeleteValue(id); err != nil {
		if errors.Is(err, service.ErrAttributeValueNotFound) {
			apperrors.NotFound(c, apperrors.AttributeNotFound, "Attribute value not found")
			return
		}
		log.Error("Failed to delete attribute value", err, map[string]interface{}{
			"value_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete attribute value")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attribute value deleted successfully",
	})
}
