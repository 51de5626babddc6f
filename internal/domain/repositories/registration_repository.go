package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *entities.TeamRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamRegistration, error)
	GetByTeamAndHackathon(ctx context.Context, hackathonID, teamID uuid.UUID) (*entities.TeamRegistration, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID, status entities.RegistrationStatus) ([]*entities.TeamRegistration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RegistrationStatus) error

	// HasApprovedTeam reports whether the team holds an approved registration
	// for the hackathon.
	HasApprovedTeam(ctx context.Context, hackathonID, teamID uuid.UUID) (bool, error)
	// HasApprovedUser reports whether any team the user belongs to holds an
	// approved registration for the hackathon.
	HasApprovedUser(ctx context.Context, hackathonID, userID uuid.UUID) (bool, error)
}
