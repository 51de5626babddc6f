package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

type RuleRepository interface {
	Create(ctx context.Context, rule *entities.CompetitionRule) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CompetitionRule, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*entities.CompetitionRule, error)
	// ListMandatory returns mandatory rules across all hackathons in the
	// given statuses; used by the compliance sweep.
	ListMandatory(ctx context.Context, statuses []entities.HackathonStatus) ([]*entities.CompetitionRule, error)
}

// ViolationFilter narrows violation listings
type ViolationFilter struct {
	TeamID *uuid.UUID
	Status entities.ViolationStatus
}

type ViolationRepository interface {
	Create(ctx context.Context, v *entities.RuleViolation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RuleViolation, error)
	List(ctx context.Context, filter ViolationFilter, limit, offset int) ([]*entities.RuleViolation, int64, error)
	// HasOpen reports whether a pending or confirmed violation of the rule
	// already exists for the team; the sweep uses it to avoid duplicates.
	HasOpen(ctx context.Context, teamID, ruleID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ViolationStatus, reviewedBy uuid.UUID, actionTaken string) error
}
