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

type CustomRequestController struct {
	requestService service.CustomRequestService
}

func NewCustomRequestController(requestService service.CustomRequestService) *CustomRequestController {
	return &CustomRequestController{
		requestService: requestService,
	}
}

type CreateCustomRequestRequest struct {
	Description    string `json:"description" binding:"required"`
	ReferenceImage string `json:"reference_image"`
}

type UpdateCustomRequestStatusRequest struct {
	Status model.CustomRequestStatus `json:"status" binding:"required"`
}

// CreateCustomRequest submits a quote request for a custom piece
// POST /api/v1/custom-requests
func (ctrl *CustomRequestController) CreateCustomRequest(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateCustomRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Description is required")
		return
	}

	request, err := ctrl.requestService.Create(userID, req.Description, req.ReferenceImage)
	if err != nil {
		log.Error("Failed to create custom request", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create custom request")
		return
	}

	log.Info("Custom request created", map[string]interface{}{
		"request_id": request.ID,
		"user_id":    userID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Custom request submitted successfully",
		"custom_request": request,
	})
}

// ListCustomRequests lists quote requests: own for customers, all for admins
// GET /api/v1/custom-requests
func (ctrl *CustomRequestController) ListCustomRequests(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	requests, err := ctrl.requestService.List(userID, middleware.IsStaff(c))
	if err != nil {
		log.Error("Failed to fetch custom requests", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list custom requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"custom_requests": requests,
		"count":           len(requests),
	})
}

// GetCustomRequest returns one quote request; customers only see their own
// GET /api/v1/custom-requests/:id
func (ctrl *CustomRequestController) GetCustomRequest(c *gin.Context) {
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

	request, err := ctrl.requestService.Get(id, userID, middleware.IsStaff(c))
	if err != nil {
		if errors.Is(err, service.ErrCustomRequestNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Custom request not found")
			return
		}
		log.Error("Failed to fetch custom request", err, map[string]interface{}{
			"request_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get custom request")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"custom_request": request,
	})
}

// UpdateCustomRequestStatus moves a quote request through review (Admin only)
// PUT /api/v1/custom-requests/:id/status
func (ctrl *CustomRequestController) UpdateCustomRequestStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Status is required")
		return
	}

	request, err := ctrl.requestService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrCustomRequestNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Custom request not found")
			return
		}
		if errors.Is(err, service.ErrInvalidCustomRequestStatus) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid custom request status")
			return
		}
		log.Error("Failed to update custom request status", err, map[string]interface{}{
			"request_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update custom request status")
		return
	}

	log.Info("Custom request status updated", map[string]interface{}{
		"request_id": id,
		"status":     req.Status,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":        "Custom request status updated successfully",
		"custom_request": request,
	})
}
