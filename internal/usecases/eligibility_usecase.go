package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
)

// EligibilityDecision is the answer to "may this participant submit now".
// Allowed with a non-empty reason means a tolerated edge such as a late
// submission.
type EligibilityDecision struct {
	Allowed bool            `json:"allowed"`
	Reason  entities.Reason `json:"reason,omitempty"`
	Message string          `json:"message,omitempty"`
}

// EligibilityUsecase decides whether a user or team may submit to a hackathon
type EligibilityUsecase struct {
	hackathonRepo    repositories.HackathonRepository
	registrationRepo repositories.RegistrationRepository
	submissionRepo   repositories.SubmissionRepository
	now              func() time.Time
}

// NewEligibilityUsecase creates a new eligibility usecase
func NewEligibilityUsecase(
	hackathonRepo repositories.HackathonRepository,
	registrationRepo repositories.RegistrationRepository,
	submissionRepo repositories.SubmissionRepository,
) *EligibilityUsecase {
	return &EligibilityUsecase{
		hackathonRepo:    hackathonRepo,
		registrationRepo: registrationRepo,
		submissionRepo:   submissionRepo,
		now:              time.Now,
	}
}

// CanSubmit evaluates the submission eligibility chain for one participant.
// A rejection is a decision, not an error; errors mean the facts could not
// be loaded.
func (u *EligibilityUsecase) CanSubmit(ctx context.Context, hackathonID uuid.UUID, p entities.Participant) (*EligibilityDecision, error) {
	if !p.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	hackathon, err := u.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	facts, err := u.loadFacts(ctx, hackathon, p)
	if err != nil {
		return nil, err
	}

	allowed, reason := entities.EvaluateEligibility(hackathon, p, facts)
	return &EligibilityDecision{
		Allowed: allowed,
		Reason:  reason,
		Message: reason.Message(),
	}, nil
}

func (u *EligibilityUsecase) loadFacts(ctx context.Context, h *entities.Hackathon, p entities.Participant) (entities.EligibilityFacts, error) {
	var facts entities.EligibilityFacts

	// Registration standing is only loaded when the hackathon demands it.
	if h.RequireRegistration {
		var registered bool
		var err error
		switch p.Kind {
		case entities.ParticipantTeam:
			registered, err = u.registrationRepo.HasApprovedTeam(ctx, h.ID, p.ID)
		default:
			registered, err = u.registrationRepo.HasApprovedUser(ctx, h.ID, p.ID)
		}
		if err != nil {
			return facts, err
		}
		facts.Registered = registered
	}

	if h.MaxSubmissionsPerParticipant > 0 {
		count, err := u.submissionRepo.CountForParticipant(ctx, h.ID, p)
		if err != nil {
			return facts, err
		}
		facts.SubmissionCount = count
	}

	if h.RestrictToSubmissionPhase {
		phases, err := u.hackathonRepo.ListPhases(ctx, h.ID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return facts, err
		}
		facts.HasPhases = len(phases) > 0
		facts.CurrentPhase = entities.CurrentPhase(phases, u.now())
	}

	return facts, nil
}
