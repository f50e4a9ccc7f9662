package handlers

import (
	"net/http"

	"crewlink_backend/internal/middleware"
	"crewlink_backend/internal/repositories"
	"crewlink_backend/internal/services"
	"crewlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

// RegisterRoutes wires the agency inbox endpoints behind JWT auth.
func (h *NotificationHandler) RegisterRoutes(api *gin.RouterGroup) {
	notifications := api.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.List)
		notifications.PUT("/:id/viewed", h.MarkViewed)
		notifications.POST("/:id/respond", h.Respond)
		notifications.PUT("/:id/archive", h.Archive)
	}
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	agencyID, ok := h.GetAndAuthorizeAgencyID(c)
	if !ok {
		return
	}

	var criteria repositories.NotificationSearchCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	result, err := h.notificationService.GetInbox(agencyID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MarkViewed handles PUT /api/v1/notifications/:id/viewed.
func (h *NotificationHandler) MarkViewed(c *gin.Context) {
	agencyID, ok := h.GetAndAuthorizeAgencyID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkViewed(c.Param("id"), agencyID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as viewed"})
}

// Respond handles POST /api/v1/notifications/:id/respond.
func (h *NotificationHandler) Respond(c *gin.Context) {
	agencyID, ok := h.GetAndAuthorizeAgencyID(c)
	if !ok {
		return
	}

	var input dto.RespondInput
	if !h.BindAndValidate_JSON(c, &input) {
		return
	}

	if err := h.notificationService.Respond(c.Param("id"), agencyID, &input); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Response recorded"})
}

// Archive handles PUT /api/v1/notifications/:id/archive.
func (h *NotificationHandler) Archive(c *gin.Context) {
	agencyID, ok := h.GetAndAuthorizeAgencyID(c)
	if !ok {
		return
	}

	if err := h.notificationService.Archive(c.Param("id"), agencyID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification archived"})
}
