package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

// SubmissionFilter narrows submission listings
type SubmissionFilter struct {
	HackathonID *uuid.UUID
	QuestID     *uuid.UUID
	UserID      *uuid.UUID
	TeamID      *uuid.UUID
	Status      entities.VerificationStatus
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entities.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error)
	Update(ctx context.Context, submission *entities.Submission) error
	List(ctx context.Context, filter SubmissionFilter, limit, offset int) ([]*entities.Submission, int64, error)

	// CountForParticipant counts the participant's submissions against the
	// hackathon, for quota enforcement.
	CountForParticipant(ctx context.Context, hackathonID uuid.UUID, p entities.Participant) (int64, error)
	// ListVerifiedByTeam returns the team's verified submissions ordered by
	// creation time; score aggregation iterates them in this order.
	ListVerifiedByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Submission, error)
	// HasQualifyingForTeam reports whether the team has any submission with
	// verified or pending status.
	HasQualifyingForTeam(ctx context.Context, teamID uuid.UUID) (bool, error)
}
