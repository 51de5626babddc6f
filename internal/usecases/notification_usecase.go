package usecases

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	"synnovator.backend/internal/domain/repositories"
)

// NotificationUsecase lists and acknowledges in-app notifications
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo repositories.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

// List returns notifications for a recipient, newest first
func (u *NotificationUsecase) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entities.Notification, int64, error) {
	return u.notificationRepo.ListByRecipient(ctx, recipientID, unreadOnly, limit, offset)
}

// MarkRead marks one of the recipient's notifications as read
func (u *NotificationUsecase) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return u.notificationRepo.MarkRead(ctx, id, recipientID)
}
