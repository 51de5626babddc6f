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

// RegistrationUsecase handles team registration business logic
type RegistrationUsecase struct {
	registrationRepo repositories.RegistrationRepository
	hackathonRepo    repositories.HackathonRepository
	teamRepo         repositories.TeamRepository
	notificationRepo repositories.NotificationRepository
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	registrationRepo repositories.RegistrationRepository,
	hackathonRepo repositories.HackathonRepository,
	teamRepo repositories.TeamRepository,
	notificationRepo repositories.NotificationRepository,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		registrationRepo: registrationRepo,
		hackathonRepo:    hackathonRepo,
		teamRepo:         teamRepo,
		notificationRepo: notificationRepo,
	}
}

// Register registers a team for a hackathon. Only the team leader may
// register, and only while the hackathon accepts registrations. The
// registration is approved on creation; organizers can still reject it
// through Review.
func (u *RegistrationUsecase) Register(ctx context.Context, hackathonID, callerID uuid.UUID, input *entities.RegisterTeamInput) (*entities.TeamRegistration, error) {
	hackathon, err := u.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if !hackathon.IsRegistrationOpen() {
		return nil, domainerrors.ErrRegistrationClosed
	}

	team, err := u.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}
	if team.HackathonID != hackathonID {
		return nil, domainerrors.ErrInvalidInput
	}
	leader := team.Leader()
	if leader == nil || leader.UserID != callerID {
		return nil, domainerrors.ErrForbidden
	}

	reg := &entities.TeamRegistration{
		ID:          utils.GenerateUUIDv7(),
		HackathonID: hackathonID,
		TeamID:      input.TeamID,
		Status:      entities.RegistrationStatusApproved,
		Notes:       input.Notes,
	}
	if err := u.registrationRepo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Review approves or rejects a registration and notifies the team leader.
// Withdrawn registrations are final.
func (u *RegistrationUsecase) Review(ctx context.Context, registrationID uuid.UUID, approve bool) (*entities.TeamRegistration, error) {
	reg, err := u.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.Status == entities.RegistrationStatusWithdrawn {
		return nil, domainerrors.ErrInvalidTransition
	}

	status := entities.RegistrationStatusRejected
	if approve {
		status = entities.RegistrationStatusApproved
	}
	if err := u.registrationRepo.UpdateStatus(ctx, registrationID, status); err != nil {
		return nil, err
	}
	reg.Status = status

	u.notifyLeader(ctx, reg)
	return reg, nil
}

// Withdraw withdraws a team's registration. Only the leader may withdraw.
func (u *RegistrationUsecase) Withdraw(ctx context.Context, registrationID, callerID uuid.UUID) error {
	reg, err := u.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}

	team, err := u.teamRepo.GetByID(ctx, reg.TeamID)
	if err != nil {
		return err
	}
	leader := team.Leader()
	if leader == nil || leader.UserID != callerID {
		return domainerrors.ErrForbidden
	}

	if reg.Status == entities.RegistrationStatusWithdrawn {
		return domainerrors.ErrInvalidTransition
	}
	return u.registrationRepo.UpdateStatus(ctx, registrationID, entities.RegistrationStatusWithdrawn)
}

// ListByHackathon returns registrations for a hackathon, optionally filtered
// by status
func (u *RegistrationUsecase) ListByHackathon(ctx context.Context, hackathonID uuid.UUID, status entities.RegistrationStatus) ([]*entities.TeamRegistration, error) {
	return u.registrationRepo.ListByHackathon(ctx, hackathonID, status)
}

func (u *RegistrationUsecase) notifyLeader(ctx context.Context, reg *entities.TeamRegistration) {
	team, err := u.teamRepo.GetByID(ctx, reg.TeamID)
	if err != nil {
		logger.Warn(ctx, "registration notification skipped", zap.Error(err))
		return
	}
	leader := team.Leader()
	if leader == nil {
		return
	}

	n := &entities.Notification{
		ID:          utils.GenerateUUIDv7(),
		RecipientID: leader.UserID,
		Type:        entities.NotificationRegistrationStatus,
		Title:       fmt.Sprintf("Registration %s", reg.Status),
		Message:     fmt.Sprintf("Your team's registration is now %s", reg.Status),
	}
	if err := u.notificationRepo.Create(ctx, n); err != nil {
		logger.Warn(ctx, "registration notification failed", zap.Error(err))
	}
}
