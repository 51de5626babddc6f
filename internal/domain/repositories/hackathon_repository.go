package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

// HackathonFilter narrows hackathon listings
type HackathonFilter struct {
	Status string
	Tag    string
}

type HackathonRepository interface {
	Create(ctx context.Context, hackathon *entities.Hackathon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Hackathon, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Hackathon, error)
	List(ctx context.Context, filter HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error)
	Update(ctx context.Context, hackathon *entities.Hackathon) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.HackathonStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Phases, ordered by (order, start_date)
	CreatePhase(ctx context.Context, phase *entities.Phase) error
	ListPhases(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Phase, error)

	// Prizes, ordered by rank
	CreatePrize(ctx context.Context, prize *entities.Prize) error
	ListPrizes(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Prize, error)
}
