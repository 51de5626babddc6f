package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

type QuestRepository interface {
	Create(ctx context.Context, quest *entities.Quest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Quest, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Quest, error)
	List(ctx context.Context, filter entities.QuestFilter, limit, offset int) ([]*entities.Quest, int64, error)
}
