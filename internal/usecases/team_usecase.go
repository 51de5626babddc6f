package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/pkg/crypto"
	"synnovator.backend/pkg/utils"
)

// TeamUsecase handles team formation business logic
type TeamUsecase struct {
	teamRepo      repositories.TeamRepository
	hackathonRepo repositories.HackathonRepository
	userRepo      repositories.UserRepository
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	hackathonRepo repositories.HackathonRepository,
	userRepo repositories.UserRepository,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:      teamRepo,
		hackathonRepo: hackathonRepo,
		userRepo:      userRepo,
	}
}

// Create creates a team with the caller as its leader
func (u *TeamUsecase) Create(ctx context.Context, leaderID uuid.UUID, input *entities.CreateTeamInput) (*entities.Team, error) {
	hackathon, err := u.hackathonRepo.GetByID(ctx, input.HackathonID)
	if err != nil {
		return nil, err
	}
	if !hackathon.IsRegistrationOpen() {
		return nil, domainerrors.ErrRegistrationClosed
	}

	role := input.LeaderRole
	if role == "" {
		role = entities.MemberRoleHacker
	}
	if !entities.ValidMemberRole(role) {
		return nil, domainerrors.ErrInvalidInput
	}

	// A user joins at most one team per hackathon.
	existing, err := u.teamRepo.ListByUser(ctx, leaderID, &input.HackathonID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domainerrors.ErrAlreadyExists
	}

	inviteCode, err := crypto.GenerateInviteCode()
	if err != nil {
		return nil, err
	}

	team := &entities.Team{
		ID:               utils.GenerateUUIDv7(),
		HackathonID:      input.HackathonID,
		Name:             input.Name,
		Slug:             input.Slug,
		Tagline:          input.Tagline,
		InviteCode:       inviteCode,
		Status:           entities.TeamStatusForming,
		IsSeekingMembers: true,
		CurrentRound:     1,
	}
	if err := u.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	leader := &entities.TeamMember{
		ID:       utils.GenerateUUIDv7(),
		TeamID:   team.ID,
		UserID:   leaderID,
		Role:     role,
		IsLeader: true,
	}
	if err := u.teamRepo.AddMember(ctx, leader); err != nil {
		return nil, err
	}
	team.Members = []*entities.TeamMember{leader}
	return team, nil
}

// Get returns a team with members
func (u *TeamUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	return u.teamRepo.GetByID(ctx, id)
}

// ListByHackathon returns a hackathon's teams
func (u *TeamUsecase) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Team, error) {
	return u.teamRepo.ListByHackathon(ctx, hackathonID)
}

// ListMine returns the caller's teams
func (u *TeamUsecase) ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	return u.teamRepo.ListByUser(ctx, userID, nil)
}

// Join adds the caller to a team via its invite code. The team must be
// forming and under the hackathon's size cap.
func (u *TeamUsecase) Join(ctx context.Context, teamID, userID uuid.UUID, role entities.MemberRole, inviteCode string) (*entities.Team, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.InviteCode != inviteCode {
		return nil, domainerrors.ErrForbidden
	}
	if !entities.ValidMemberRole(role) {
		return nil, domainerrors.ErrInvalidInput
	}

	hackathon, err := u.hackathonRepo.GetByID(ctx, team.HackathonID)
	if err != nil {
		return nil, err
	}
	if !team.CanAddMember(hackathon.MaxTeamSize) {
		return nil, domainerrors.ErrTeamFull
	}

	existing, err := u.teamRepo.ListByUser(ctx, userID, &team.HackathonID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domainerrors.ErrAlreadyExists
	}

	member := &entities.TeamMember{
		ID:     utils.GenerateUUIDv7(),
		TeamID: team.ID,
		UserID: userID,
		Role:   role,
	}
	if err := u.teamRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return u.teamRepo.GetByID(ctx, teamID)
}

// RemoveMember removes a member. Leaders may remove anyone but themselves;
// members may only remove themselves.
func (u *TeamUsecase) RemoveMember(ctx context.Context, teamID, callerID, memberID uuid.UUID) error {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}

	leader := team.Leader()
	isLeader := leader != nil && leader.UserID == callerID
	if leader != nil && memberID == leader.UserID {
		return domainerrors.ErrInvalidState
	}
	if !isLeader && callerID != memberID {
		return domainerrors.ErrForbidden
	}

	return u.teamRepo.RemoveMember(ctx, teamID, memberID)
}

// MarkReady moves a forming team to ready once the hackathon's size and role
// requirements are met. Only the leader may do this.
func (u *TeamUsecase) MarkReady(ctx context.Context, teamID, callerID uuid.UUID) (*entities.Team, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	leader := team.Leader()
	if leader == nil || leader.UserID != callerID {
		return nil, domainerrors.ErrForbidden
	}
	if team.Status != entities.TeamStatusForming {
		return nil, domainerrors.ErrInvalidTransition
	}

	hackathon, err := u.hackathonRepo.GetByID(ctx, team.HackathonID)
	if err != nil {
		return nil, err
	}
	if len(team.Members) < hackathon.MinTeamSize && !(hackathon.AllowSolo && len(team.Members) == 1) {
		return nil, domainerrors.NewError("team is below the minimum size", domainerrors.ErrInvalidState)
	}
	if !team.HasRequiredRoles(hackathon.RequiredRoles) {
		return nil, domainerrors.NewError("team is missing required roles", domainerrors.ErrInvalidState)
	}

	if err := u.teamRepo.UpdateStatus(ctx, teamID, entities.TeamStatusReady, ""); err != nil {
		return nil, err
	}
	team.Status = entities.TeamStatusReady
	return team, nil
}

// GetBySlug returns a team by hackathon and slug
func (u *TeamUsecase) GetBySlug(ctx context.Context, hackathonID uuid.UUID, slug string) (*entities.Team, error) {
	team, err := u.teamRepo.GetBySlug(ctx, hackathonID, slug)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("team not found")
		}
		return nil, err
	}
	return team, nil
}
