package controller

import (
	"errors"
	"net/http"

	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/app/service"
	apperrors "github.com/aurea-joias/aurea-backend/internal/errors"
	"github.com/aurea-joias/aurea-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AddressController struct {
	addressService service.AddressService
}

func NewAddressController(addressService service.AddressService) *AddressController {
	return &AddressController{
		addressService: addressService,
	}
}

type AddressRequest struct {
	Name           string `json:"name" binding:"required"`
	ZipCode        string `json:"zip_code" binding:"required"`
	Street         string `json:"street" binding:"required"`
	Neighborhood   string `json:"neighborhood" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required,len=2"`
	Number         string `json:"number" binding:"required"`
	Complement     string `json:"complement"`
	ReferencePoint string `json:"reference_point"`
}

func (req *AddressRequest) toModel() *model.Address {
	return &model.Address{
		Name:           req.Name,
		ZipCode:        req.ZipCode,
		Street:         req.Street,
		Neighborhood:   req.Neighborhood,
		City:           req.City,
		State:          req.State,
		Number:         req.Number,
		Complement:     req.Complement,
		ReferencePoint: req.ReferencePoint,
	}
}

// ListAddresses returns the requester's address book
// GET /api/v1/addresses
func (ctrl *AddressController) ListAddresses(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	addresses, err := ctrl.addressService.GetUserAddresses(userID)
	if err != nil {
		log.Error("Failed to fetch addresses", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list addresses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"addresses": addresses,
		"count":     len(addresses),
	})
}

// GetAddress returns one of the requester's addresses
// GET /api/v1/addresses/:id
func (ctrl *AddressController) GetAddress(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	address, err := ctrl.addressService.GetAddress(userID, id)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Address not found")
			return
		}
		log.Error("Failed to fetch address", err, map[string]interface{}{
			"address_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"address": address,
	})
}

// CreateAddress creates an address in the requester's address book
// POST /api/v1/addresses
func (ctrl *AddressController) CreateAddress(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid address creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid address data")
		return
	}

	address := req.toModel()
	if err := ctrl.addressService.CreateAddress(userID, address); err != nil {
		log.Error("Failed to create address", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create address")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address created successfully",
		"address": address,
	})
}

// UpdateAddress updates one of the requester's addresses
// PUT /api/v1/addresses/:id
func (ctrl *AddressController) UpdateAddress(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid address data")
		return
	}

	if err := ctrl.addressService.UpdateAddress(userID, id, req.toModel()); err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Address not found")
			return
		}
		if errors.Is(err, service.ErrUnauthorizedAccess) {
			apperrors.Forbidden(c, "You cannot modify this address")
			return
		}
		log.Error("Failed to update address", err, map[string]interface{}{
			"address_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address updated successfully",
	})
}

// DeleteAddress removes one of the requester's addresses
// DELETE /api/v1/addresses/:id
func (ctrl *AddressController) DeleteAddress(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.addressService.DeleteAddress(userID, id); err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Address not found")
			return
		}
		if errors.Is(err, service.ErrUnauthorizedAccess) {
			apperrors.Forbidden(c, "You cannot delete this address")
			return
		}
		log.Error("Failed to delete address", err, map[string]interface{}{
			"address_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete address")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted successfully",
	})
}
