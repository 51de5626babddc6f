package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entities.Notification, int64, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}

type AdvancementRepository interface {
	Create(ctx context.Context, log *entities.AdvancementLog) error
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.AdvancementLog, error)
}
