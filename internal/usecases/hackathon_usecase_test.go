package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/usecases"
)

func TestHackathonUsecase_Create_Defaults(t *testing.T) {
	hackathonRepo := new(MockHackathonRepository)
	uc := usecases.NewHackathonUsecase(hackathonRepo)

	hackathonRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Hackathon")).Return(nil).Once()

	h, err := uc.Create(context.Background(), &entities.CreateHackathonInput{
		Title: "Spring Hack",
		Slug:  "spring-hack",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.HackathonStatusDraft, h.Status)
	assert.Equal(t, entities.SubmissionTypeBoth, h.SubmissionType)
	assert.True(t, h.RequireRegistration)
	assert.True(t, h.RestrictToSubmissionPhase)
	assert.True(t, h.AllowEditAfterSubmit)
	assert.False(t, h.AllowLateSubmission)
}

func TestHackathonUsecase_Create_ExplicitFalseOverridesDefault(t *testing.T) {
	hackathonRepo := new(MockHackathonRepository)
	uc := usecases.NewHackathonUsecase(hackathonRepo)

	hackathonRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Hackathon")).Return(nil).Once()

	off := false
	h, err := uc.Create(context.Background(), &entities.CreateHackathonInput{
		Title:               "Open Hack",
		Slug:                "open-hack",
		RequireRegistration: &off,
	})
	require.NoError(t, err)
	assert.False(t, h.RequireRegistration)
}

func TestHackathonUsecase_Create_InvalidTeamSizes(t *testing.T) {
	uc := usecases.NewHackathonUsecase(new(MockHackathonRepository))

	_, err := uc.Create(context.Background(), &entities.CreateHackathonInput{
		Title:       "Bad Sizes",
		Slug:        "bad-sizes",
		MinTeamSize: 5,
		MaxTeamSize: 2,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = uc.Create(context.Background(), &entities.CreateHackathonInput{
		Title:       "Negative",
		Slug:        "negative",
		MinTeamSize: -1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestHackathonUsecase_Create_InvalidSubmissionType(t *testing.T) {
	uc := usecases.NewHackathonUsecase(new(MockHackathonRepository))

	_, err := uc.Create(context.Background(), &entities.CreateHackathonInput{
		Title:          "Bad Type",
		Slug:           "bad-type",
		SubmissionType: "pairs",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestHackathonUsecase_Transition_Valid(t *testing.T) {
	hackathonRepo := new(MockHackathonRepository)
	uc := usecases.NewHackathonUsecase(hackathonRepo)

	h := &entities.Hackathon{ID: uuid.New(), Status: entities.HackathonStatusRegistrationOpen}
	hackathonRepo.On("GetByID", context.Background(), h.ID).Return(h, nil).Once()
	hackathonRepo.On("UpdateStatus", context.Background(), h.ID, entities.HackathonStatusInProgress).Return(nil).Once()

	updated, err := uc.Transition(context.Background(), h.ID, entities.HackathonStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entities.HackathonStatusInProgress, updated.Status)
}

func TestHackathonUsecase_Transition_Invalid(t *testing.T) {
	hackathonRepo := new(MockHackathonRepository)
	uc := usecases.NewHackathonUsecase(hackathonRepo)

	h := &entities.Hackathon{ID: uuid.New(), Status: entities.HackathonStatusDraft}
	hackathonRepo.On("GetByID", context.Background(), h.ID).Return(h, nil).Once()

	_, err := uc.Transition(context.Background(), h.ID, entities.HackathonStatusCompleted)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	hackathonRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestHackathonUsecase_AddPhase_EndMustFollowStart(t *testing.T) {
	hackathonRepo := new(MockHackathonRepository)
	uc := usecases.NewHackathonUsecase(hackathonRepo)

	h := &entities.Hackathon{ID: uuid.New()}
	hackathonRepo.On("GetByID", context.Background(), h.ID).Return(h, nil)

	now := time.Now()
	_, err := uc.AddPhase(context.Background(), h.ID, &entities.Phase{
		Title:     "Backwards",
		StartDate: now,
		EndDate:   now.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	hackathonRepo.On("CreatePhase", context.Background(), mock.AnythingOfType("*entities.Phase")).Return(nil).Once()
	phase, err := uc.AddPhase(context.Background(), h.ID, &entities.Phase{
		Title:     "Hacking",
		StartDate: now,
		EndDate:   now.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, h.ID, phase.HackathonID)
	assert.NotEqual(t, uuid.Nil, phase.ID)
}

func TestHackathonUsecase_AddPrize_RankRequired(t *testing.T) {
	hackathonRepo := new(MockHackathonRepository)
	uc := usecases.NewHackathonUsecase(hackathonRepo)

	h := &entities.Hackathon{ID: uuid.New()}
	hackathonRepo.On("GetByID", context.Background(), h.ID).Return(h, nil)

	_, err := uc.AddPrize(context.Background(), h.ID, &entities.Prize{Title: "Grand Prize", Rank: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	hackathonRepo.On("CreatePrize", context.Background(), mock.AnythingOfType("*entities.Prize")).Return(nil).Once()
	prize, err := uc.AddPrize(context.Background(), h.ID, &entities.Prize{Title: "Grand Prize", Rank: 1})
	require.NoError(t, err)
	assert.Equal(t, h.ID, prize.HackathonID)
}

func TestHackathonUsecase_Update_PreservesUnsetBooleans(t *testing.T) {
	hackathonRepo := new(MockHackathonRepository)
	uc := usecases.NewHackathonUsecase(hackathonRepo)

	h := &entities.Hackathon{
		ID:                  uuid.New(),
		Title:               "Before",
		Status:              entities.HackathonStatusDraft,
		RequireRegistration: true,
	}
	hackathonRepo.On("GetByID", context.Background(), h.ID).Return(h, nil).Once()
	hackathonRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.Hackathon")).Return(nil).Once()

	updated, err := uc.Update(context.Background(), h.ID, &entities.CreateHackathonInput{
		Title: "After",
		Slug:  "after",
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.True(t, updated.RequireRegistration)
}
