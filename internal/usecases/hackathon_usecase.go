package usecases

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/pkg/utils"
)

// HackathonUsecase handles hackathon management business logic
type HackathonUsecase struct {
	hackathonRepo repositories.HackathonRepository
}

// NewHackathonUsecase creates a new hackathon usecase
func NewHackathonUsecase(hackathonRepo repositories.HackathonRepository) *HackathonUsecase {
	return &HackathonUsecase{hackathonRepo: hackathonRepo}
}

// Create creates a hackathon in draft status
func (u *HackathonUsecase) Create(ctx context.Context, input *entities.CreateHackathonInput) (*entities.Hackathon, error) {
	if input.MinTeamSize < 0 || input.MaxTeamSize < 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.MaxTeamSize > 0 && input.MinTeamSize > input.MaxTeamSize {
		return nil, domainerrors.NewError("minTeamSize exceeds maxTeamSize", domainerrors.ErrInvalidInput)
	}

	submissionType := input.SubmissionType
	if submissionType == "" {
		submissionType = entities.SubmissionTypeBoth
	}
	switch submissionType {
	case entities.SubmissionTypeIndividual, entities.SubmissionTypeTeam, entities.SubmissionTypeBoth:
	default:
		return nil, domainerrors.ErrInvalidInput
	}

	hackathon := &entities.Hackathon{
		ID:                           utils.GenerateUUIDv7(),
		Title:                        input.Title,
		Slug:                         input.Slug,
		Description:                  input.Description,
		Tags:                         input.Tags,
		Status:                       entities.HackathonStatusDraft,
		MinTeamSize:                  input.MinTeamSize,
		MaxTeamSize:                  input.MaxTeamSize,
		AllowSolo:                    input.AllowSolo,
		RequiredRoles:                input.RequiredRoles,
		PassingScore:                 input.PassingScore,
		SubmissionType:               submissionType,
		MaxSubmissionsPerParticipant: input.MaxSubmissionsPerParticipant,
		RequireRegistration:          boolOr(input.RequireRegistration, true),
		RestrictToSubmissionPhase:    boolOr(input.RestrictToSubmissionPhase, true),
		AllowLateSubmission:          input.AllowLateSubmission,
		AllowEditAfterSubmit:         boolOr(input.AllowEditAfterSubmit, true),
	}
	if err := u.hackathonRepo.Create(ctx, hackathon); err != nil {
		return nil, err
	}
	return hackathon, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// Get returns a hackathon by ID
func (u *HackathonUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Hackathon, error) {
	return u.hackathonRepo.GetByID(ctx, id)
}

// GetBySlug returns a hackathon by slug
func (u *HackathonUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Hackathon, error) {
	return u.hackathonRepo.GetBySlug(ctx, slug)
}

// List returns hackathons matching the filter
func (u *HackathonUsecase) List(ctx context.Context, filter repositories.HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error) {
	return u.hackathonRepo.List(ctx, filter, limit, offset)
}

// Update updates hackathon configuration
func (u *HackathonUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.CreateHackathonInput) (*entities.Hackathon, error) {
	hackathon, err := u.hackathonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hackathon.Title = input.Title
	hackathon.Description = input.Description
	hackathon.Tags = input.Tags
	hackathon.MinTeamSize = input.MinTeamSize
	hackathon.MaxTeamSize = input.MaxTeamSize
	hackathon.AllowSolo = input.AllowSolo
	hackathon.RequiredRoles = input.RequiredRoles
	hackathon.PassingScore = input.PassingScore
	if input.SubmissionType != "" {
		hackathon.SubmissionType = input.SubmissionType
	}
	hackathon.MaxSubmissionsPerParticipant = input.MaxSubmissionsPerParticipant
	hackathon.RequireRegistration = boolOr(input.RequireRegistration, hackathon.RequireRegistration)
	hackathon.RestrictToSubmissionPhase = boolOr(input.RestrictToSubmissionPhase, hackathon.RestrictToSubmissionPhase)
	hackathon.AllowLateSubmission = input.AllowLateSubmission
	hackathon.AllowEditAfterSubmit = boolOr(input.AllowEditAfterSubmit, hackathon.AllowEditAfterSubmit)

	if err := u.hackathonRepo.Update(ctx, hackathon); err != nil {
		return nil, err
	}
	return hackathon, nil
}

// Transition moves a hackathon along its lifecycle
func (u *HackathonUsecase) Transition(ctx context.Context, id uuid.UUID, next entities.HackathonStatus) (*entities.Hackathon, error) {
	hackathon, err := u.hackathonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hackathon.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition
	}
	if err := u.hackathonRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	hackathon.Status = next
	return hackathon, nil
}

// Delete soft-deletes a hackathon
func (u *HackathonUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.hackathonRepo.SoftDelete(ctx, id)
}

// AddPhase adds a phase to a hackathon
func (u *HackathonUsecase) AddPhase(ctx context.Context, hackathonID uuid.UUID, phase *entities.Phase) (*entities.Phase, error) {
	if _, err := u.hackathonRepo.GetByID(ctx, hackathonID); err != nil {
		return nil, err
	}
	if !phase.EndDate.After(phase.StartDate) {
		return nil, domainerrors.NewError("phase end must be after start", domainerrors.ErrInvalidInput)
	}
	phase.ID = utils.GenerateUUIDv7()
	phase.HackathonID = hackathonID
	if err := u.hackathonRepo.CreatePhase(ctx, phase); err != nil {
		return nil, err
	}
	return phase, nil
}

// ListPhases returns a hackathon's phases in order
func (u *HackathonUsecase) ListPhases(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Phase, error) {
	return u.hackathonRepo.ListPhases(ctx, hackathonID)
}

// AddPrize adds a prize to a hackathon
func (u *HackathonUsecase) AddPrize(ctx context.Context, hackathonID uuid.UUID, prize *entities.Prize) (*entities.Prize, error) {
	if _, err := u.hackathonRepo.GetByID(ctx, hackathonID); err != nil {
		return nil, err
	}
	if prize.Rank < 1 {
		return nil, domainerrors.ErrInvalidInput
	}
	prize.ID = utils.GenerateUUIDv7()
	prize.HackathonID = hackathonID
	if err := u.hackathonRepo.CreatePrize(ctx, prize); err != nil {
		return nil, err
	}
	return prize, nil
}

// ListPrizes returns a hackathon's prizes by rank
func (u *HackathonUsecase) ListPrizes(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Prize, error) {
	return u.hackathonRepo.ListPrizes(ctx, hackathonID)
}
