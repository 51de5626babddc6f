package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
)

func TestRegistrationRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createRegistrationTable(t, db)
	createTeamTables(t, db)
	repo := NewRegistrationRepository(db)
	teamRepo := NewTeamRepository(db)
	ctx := context.Background()

	hackathonID := uuid.New()
	teamID := uuid.New()
	userID := uuid.New()

	require.NoError(t, teamRepo.Create(ctx, &entities.Team{
		ID: teamID, HackathonID: hackathonID, Name: "Crew", Slug: "crew",
		InviteCode: "inv-crew", Status: entities.TeamStatusForming,
	}))
	require.NoError(t, teamRepo.AddMember(ctx, &entities.TeamMember{
		ID: uuid.New(), TeamID: teamID, UserID: userID,
		Role: entities.MemberRoleHacker, IsLeader: true,
	}))

	reg := &entities.TeamRegistration{
		ID:          uuid.New(),
		HackathonID: hackathonID,
		TeamID:      teamID,
		Status:      entities.RegistrationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, reg))
	require.False(t, reg.RegisteredAt.IsZero())

	dup := &entities.TeamRegistration{
		ID: uuid.New(), HackathonID: hackathonID, TeamID: teamID,
		Status: entities.RegistrationStatusPending,
	}
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrAlreadyExists)

	got, err := repo.GetByTeamAndHackathon(ctx, hackathonID, teamID)
	require.NoError(t, err)
	require.Equal(t, reg.ID, got.ID)

	ok, err := repo.HasApprovedTeam(ctx, hackathonID, teamID)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.UpdateStatus(ctx, reg.ID, entities.RegistrationStatusApproved))

	ok, err = repo.HasApprovedTeam(ctx, hackathonID, teamID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.HasApprovedUser(ctx, hackathonID, userID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.HasApprovedUser(ctx, hackathonID, uuid.New())
	require.NoError(t, err)
	require.False(t, ok)

	approved, err := repo.ListByHackathon(ctx, hackathonID, entities.RegistrationStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)

	rejected, err := repo.ListByHackathon(ctx, hackathonID, entities.RegistrationStatusRejected)
	require.NoError(t, err)
	require.Empty(t, rejected)
}
