package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	GetBySlug(ctx context.Context, hackathonID uuid.UUID, slug string) (*entities.Team, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Team, error)
	// ListByUser returns the teams the user belongs to, optionally narrowed
	// to one hackathon.
	ListByUser(ctx context.Context, userID uuid.UUID, hackathonID *uuid.UUID) ([]*entities.Team, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TeamStatus, reason string) error
	// SaveScores persists the aggregate score fields.
	SaveScores(ctx context.Context, team *entities.Team) error
	// Leaderboard returns submitted/verified/advanced teams ordered by final
	// score descending.
	Leaderboard(ctx context.Context, hackathonID uuid.UUID, limit int) ([]*entities.LeaderboardEntry, error)

	AddMember(ctx context.Context, member *entities.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamMember, error)
}
