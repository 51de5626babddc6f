package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/interfaces/http/middleware"
	"synnovator.backend/internal/interfaces/http/response"
)

type NotificationService interface {
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entities.Notification, int64, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationUsecase NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// List lists the caller's notifications
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, limit := pageParams(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, total, err := h.notificationUsecase.List(c.Request.Context(), userID, unreadOnly, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "notifications", notifications, page, limit, total)
}

// MarkRead marks one of the caller's notifications as read
// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid notification ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.notificationUsecase.MarkRead(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}
