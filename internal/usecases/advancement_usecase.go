package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/pkg/logger"
	"synnovator.backend/pkg/utils"
)

// AdvancementUsecase handles judging decisions moving teams between rounds
type AdvancementUsecase struct {
	teamRepo         repositories.TeamRepository
	advancementRepo  repositories.AdvancementRepository
	notificationRepo repositories.NotificationRepository
}

// NewAdvancementUsecase creates a new advancement usecase
func NewAdvancementUsecase(
	teamRepo repositories.TeamRepository,
	advancementRepo repositories.AdvancementRepository,
	notificationRepo repositories.NotificationRepository,
) *AdvancementUsecase {
	return &AdvancementUsecase{
		teamRepo:         teamRepo,
		advancementRepo:  advancementRepo,
		notificationRepo: notificationRepo,
	}
}

// advanceableStatuses are the states a team may be advanced or eliminated
// from.
func advanceable(status entities.TeamStatus) bool {
	switch status {
	case entities.TeamStatusSubmitted, entities.TeamStatusVerified, entities.TeamStatusAdvanced:
		return true
	}
	return false
}

// Advance moves a team to the next round and records the decision
func (u *AdvancementUsecase) Advance(ctx context.Context, teamID, judgeID uuid.UUID, input *entities.AdvanceTeamInput) (*entities.Team, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !advanceable(team.Status) {
		return nil, domainerrors.ErrInvalidTransition
	}

	if err := u.teamRepo.UpdateStatus(ctx, teamID, entities.TeamStatusAdvanced, ""); err != nil {
		return nil, err
	}
	team.Status = entities.TeamStatusAdvanced

	log := &entities.AdvancementLog{
		ID:        utils.GenerateUUIDv7(),
		TeamID:    teamID,
		ToPhaseID: input.ToPhaseID,
		Decision:  entities.DecisionAdvanced,
		DecidedBy: &judgeID,
		Notes:     input.Notes,
	}
	if err := u.advancementRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	u.notifyTeam(ctx, team, "Your team advanced to the next round", input.Notes)
	return team, nil
}

// Eliminate removes a team from the competition with a reason
func (u *AdvancementUsecase) Eliminate(ctx context.Context, teamID, judgeID uuid.UUID, input *entities.EliminateTeamInput) (*entities.Team, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !advanceable(team.Status) {
		return nil, domainerrors.ErrInvalidTransition
	}

	if err := u.teamRepo.UpdateStatus(ctx, teamID, entities.TeamStatusEliminated, input.Reason); err != nil {
		return nil, err
	}
	team.Status = entities.TeamStatusEliminated
	team.EliminationReason = input.Reason

	log := &entities.AdvancementLog{
		ID:        utils.GenerateUUIDv7(),
		TeamID:    teamID,
		Decision:  entities.DecisionEliminated,
		DecidedBy: &judgeID,
		Notes:     input.Reason,
	}
	if err := u.advancementRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	u.notifyTeam(ctx, team, "Your team was eliminated", input.Reason)
	return team, nil
}

// History returns a team's advancement audit trail
func (u *AdvancementUsecase) History(ctx context.Context, teamID uuid.UUID) ([]*entities.AdvancementLog, error) {
	return u.advancementRepo.ListByTeam(ctx, teamID)
}

func (u *AdvancementUsecase) notifyTeam(ctx context.Context, team *entities.Team, title, message string) {
	for _, member := range team.Members {
		n := &entities.Notification{
			ID:          utils.GenerateUUIDv7(),
			RecipientID: member.UserID,
			Type:        entities.NotificationTeamAdvancement,
			Title:       title,
			Message:     message,
		}
		if err := u.notificationRepo.Create(ctx, n); err != nil {
			logger.Warn(ctx, "advancement notification failed",
				zap.String("team_id", fmt.Sprint(team.ID)), zap.Error(err))
		}
	}
}
