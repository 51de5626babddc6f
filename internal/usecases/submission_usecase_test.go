package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/usecases"
)

type submissionFixture struct {
	submissionRepo   *MockSubmissionRepository
	teamRepo         *MockTeamRepository
	questRepo        *MockQuestRepository
	userRepo         *MockUserRepository
	notificationRepo *MockNotificationRepository
	hackathonRepo    *MockHackathonRepository
	registrationRepo *MockRegistrationRepository
	judgeScoreRepo   *MockJudgeScoreRepository
	uc               *usecases.SubmissionUsecase
}

func newSubmissionFixture() *submissionFixture {
	f := &submissionFixture{
		submissionRepo:   new(MockSubmissionRepository),
		teamRepo:         new(MockTeamRepository),
		questRepo:        new(MockQuestRepository),
		userRepo:         new(MockUserRepository),
		notificationRepo: new(MockNotificationRepository),
		hackathonRepo:    new(MockHackathonRepository),
		registrationRepo: new(MockRegistrationRepository),
		judgeScoreRepo:   new(MockJudgeScoreRepository),
	}
	eligibility := usecases.NewEligibilityUsecase(f.hackathonRepo, f.registrationRepo, f.submissionRepo)
	scoring := usecases.NewScoringUsecase(f.submissionRepo, f.judgeScoreRepo, f.teamRepo, false)
	f.uc = usecases.NewSubmissionUsecase(f.submissionRepo, f.teamRepo, f.questRepo, f.userRepo, f.notificationRepo, eligibility, scoring)
	return f
}

func TestSubmissionUsecase_Create_HackathonSubmission(t *testing.T) {
	f := newSubmissionFixture()
	userID := uuid.New()
	hackathon := openHackathon()

	f.hackathonRepo.On("GetByID", context.Background(), hackathon.ID).Return(hackathon, nil).Once()
	f.submissionRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Submission")).Return(nil).Once()

	submission, err := f.uc.Create(context.Background(), userID, &entities.CreateSubmissionInput{
		HackathonID:   &hackathon.ID,
		Title:         "Demo",
		SubmissionURL: "https://example.com/repo",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationStatusDraft, submission.Status)
	require.NotNil(t, submission.UserID)
	assert.Equal(t, userID, *submission.UserID)
	assert.Nil(t, submission.TeamID)
	assert.Equal(t, 1, submission.AttemptNumber)
}

func TestSubmissionUsecase_Create_RejectedByEligibility(t *testing.T) {
	f := newSubmissionFixture()
	userID := uuid.New()
	hackathon := openHackathon()
	hackathon.RequireRegistration = true

	f.hackathonRepo.On("GetByID", context.Background(), hackathon.ID).Return(hackathon, nil).Once()
	f.registrationRepo.On("HasApprovedUser", context.Background(), hackathon.ID, userID).Return(false, nil).Once()

	_, err := f.uc.Create(context.Background(), userID, &entities.CreateSubmissionInput{
		HackathonID:   &hackathon.ID,
		Title:         "Demo",
		SubmissionURL: "https://example.com/repo",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotEligible)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You must register before submitting", appErr.Message)
	f.submissionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmissionUsecase_Create_TeamSubmissionRequiresMembership(t *testing.T) {
	f := newSubmissionFixture()
	teamID := uuid.New()
	hackathonID := uuid.New()

	f.teamRepo.On("ListMembers", context.Background(), teamID).Return([]*entities.TeamMember{
		{TeamID: teamID, UserID: uuid.New()},
	}, nil).Once()

	_, err := f.uc.Create(context.Background(), uuid.New(), &entities.CreateSubmissionInput{
		TeamID:        &teamID,
		HackathonID:   &hackathonID,
		Title:         "Demo",
		SubmissionURL: "https://example.com/repo",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSubmissionUsecase_Create_QuestSubmissionStartsPending(t *testing.T) {
	f := newSubmissionFixture()
	userID := uuid.New()
	quest := &entities.Quest{ID: uuid.New(), IsActive: true, XPReward: 100}

	f.questRepo.On("GetByID", context.Background(), quest.ID).Return(quest, nil).Once()
	f.submissionRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Submission")).Return(nil).Once()

	submission, err := f.uc.Create(context.Background(), userID, &entities.CreateSubmissionInput{
		QuestID:       &quest.ID,
		Title:         "Quest attempt",
		SubmissionURL: "https://example.com/solution",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationStatusPending, submission.Status)
}

func TestSubmissionUsecase_Create_InactiveQuestRejected(t *testing.T) {
	f := newSubmissionFixture()
	quest := &entities.Quest{ID: uuid.New(), IsActive: false}

	f.questRepo.On("GetByID", context.Background(), quest.ID).Return(quest, nil).Once()

	_, err := f.uc.Create(context.Background(), uuid.New(), &entities.CreateSubmissionInput{
		QuestID:       &quest.ID,
		Title:         "Quest attempt",
		SubmissionURL: "https://example.com/solution",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestSubmissionUsecase_Create_TargetRequired(t *testing.T) {
	f := newSubmissionFixture()

	_, err := f.uc.Create(context.Background(), uuid.New(), &entities.CreateSubmissionInput{
		Title:         "No target",
		SubmissionURL: "https://example.com/repo",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestSubmissionUsecase_Submit_DraftBecomesSubmitted(t *testing.T) {
	f := newSubmissionFixture()
	userID := uuid.New()
	teamID := uuid.New()
	hackathonID := uuid.New()
	submission := &entities.Submission{
		ID:          uuid.New(),
		TeamID:      &teamID,
		HackathonID: &hackathonID,
		Status:      entities.VerificationStatusDraft,
	}

	f.submissionRepo.On("GetByID", context.Background(), submission.ID).Return(submission, nil).Once()
	f.teamRepo.On("ListMembers", context.Background(), teamID).Return([]*entities.TeamMember{
		{TeamID: teamID, UserID: userID},
	}, nil).Once()
	f.submissionRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.Submission")).Return(nil).Once()
	f.teamRepo.On("UpdateStatus", context.Background(), teamID, entities.TeamStatusSubmitted, "").Return(nil).Once()

	updated, err := f.uc.Submit(context.Background(), submission.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationStatusSubmitted, updated.Status)
	require.NotNil(t, updated.SubmittedAt)
	f.teamRepo.AssertExpectations(t)
}

func TestSubmissionUsecase_Submit_NonOwnerForbidden(t *testing.T) {
	f := newSubmissionFixture()
	ownerID := uuid.New()
	submission := &entities.Submission{ID: uuid.New(), UserID: &ownerID, Status: entities.VerificationStatusDraft}

	f.submissionRepo.On("GetByID", context.Background(), submission.ID).Return(submission, nil).Once()

	_, err := f.uc.Submit(context.Background(), submission.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSubmissionUsecase_Submit_AlreadySubmitted(t *testing.T) {
	f := newSubmissionFixture()
	ownerID := uuid.New()
	submission := &entities.Submission{ID: uuid.New(), UserID: &ownerID, Status: entities.VerificationStatusSubmitted}

	f.submissionRepo.On("GetByID", context.Background(), submission.ID).Return(submission, nil).Once()

	_, err := f.uc.Submit(context.Background(), submission.ID, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestSubmissionUsecase_Review_VerifyQuestAwardsXP(t *testing.T) {
	f := newSubmissionFixture()
	userID := uuid.New()
	questID := uuid.New()
	reviewerID := uuid.New()
	submission := &entities.Submission{
		ID:      uuid.New(),
		UserID:  &userID,
		QuestID: &questID,
		Status:  entities.VerificationStatusPending,
	}
	quest := &entities.Quest{ID: questID, IsActive: true, XPReward: 150}

	f.submissionRepo.On("GetByID", context.Background(), submission.ID).Return(submission, nil).Once()
	f.submissionRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.Submission")).Return(nil).Once()
	f.questRepo.On("GetByID", context.Background(), questID).Return(quest, nil).Once()
	f.userRepo.On("AddXP", context.Background(), userID, 150).Return(nil).Once()
	f.notificationRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Notification")).Return(nil).Once()

	score := 88.0
	updated, err := f.uc.Review(context.Background(), submission.ID, reviewerID, &entities.ReviewSubmissionInput{
		Status:   entities.VerificationStatusVerified,
		Score:    &score,
		Feedback: "solid work",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationStatusVerified, updated.Status)
	require.NotNil(t, updated.VerifiedAt)
	require.NotNil(t, updated.VerifiedBy)
	assert.Equal(t, reviewerID, *updated.VerifiedBy)
	assert.Equal(t, 88.0, updated.Score.Float64)
	f.userRepo.AssertExpectations(t)
}

func TestSubmissionUsecase_Review_VerifyTeamRecomputesScores(t *testing.T) {
	f := newSubmissionFixture()
	teamID := uuid.New()
	hackathonID := uuid.New()
	leaderID := uuid.New()
	submission := &entities.Submission{
		ID:          uuid.New(),
		TeamID:      &teamID,
		HackathonID: &hackathonID,
		Status:      entities.VerificationStatusUnderReview,
	}
	team := &entities.Team{
		ID:          teamID,
		HackathonID: hackathonID,
		Members:     []*entities.TeamMember{{TeamID: teamID, UserID: leaderID, IsLeader: true}},
	}

	f.submissionRepo.On("GetByID", context.Background(), submission.ID).Return(submission, nil).Once()
	f.submissionRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.Submission")).Return(nil).Once()
	f.teamRepo.On("UpdateStatus", context.Background(), teamID, entities.TeamStatusVerified, "").Return(nil).Once()
	f.teamRepo.On("GetByID", context.Background(), teamID).Return(team, nil)
	f.submissionRepo.On("ListVerifiedByTeam", context.Background(), teamID).Return([]*entities.Submission{submission}, nil).Once()
	f.judgeScoreRepo.On("ListBySubmission", context.Background(), submission.ID).Return([]*entities.JudgeScore{
		{TechnicalScore: 90, CommercialScore: 60, OperationalScore: 30},
	}, nil).Once()
	f.teamRepo.On("SaveScores", context.Background(), mock.AnythingOfType("*entities.Team")).Return(nil).Once().Run(func(args mock.Arguments) {
		saved := args.Get(1).(*entities.Team)
		assert.InDelta(t, 60.0, saved.FinalScore, 0.001)
	})
	f.notificationRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Notification")).Return(nil).Once().Run(func(args mock.Arguments) {
		n := args.Get(1).(*entities.Notification)
		assert.Equal(t, leaderID, n.RecipientID)
		assert.Equal(t, entities.NotificationSubmissionReviewed, n.Type)
	})

	_, err := f.uc.Review(context.Background(), submission.ID, uuid.New(), &entities.ReviewSubmissionInput{
		Status: entities.VerificationStatusVerified,
	})
	require.NoError(t, err)
	f.teamRepo.AssertExpectations(t)
}

func TestSubmissionUsecase_Review_InvalidTransition(t *testing.T) {
	f := newSubmissionFixture()
	userID := uuid.New()
	submission := &entities.Submission{ID: uuid.New(), UserID: &userID, Status: entities.VerificationStatusVerified}

	f.submissionRepo.On("GetByID", context.Background(), submission.ID).Return(submission, nil).Once()

	_, err := f.uc.Review(context.Background(), submission.ID, uuid.New(), &entities.ReviewSubmissionInput{
		Status: entities.VerificationStatusRejected,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestSubmissionUsecase_Review_NeedsRevisionAllowsResubmit(t *testing.T) {
	f := newSubmissionFixture()
	userID := uuid.New()
	submission := &entities.Submission{ID: uuid.New(), UserID: &userID, Status: entities.VerificationStatusSubmitted}

	f.submissionRepo.On("GetByID", context.Background(), submission.ID).Return(submission, nil)
	f.submissionRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.Submission")).Return(nil)
	f.notificationRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Notification")).Return(nil)

	updated, err := f.uc.Review(context.Background(), submission.ID, uuid.New(), &entities.ReviewSubmissionInput{
		Status:   entities.VerificationStatusNeedsRevision,
		Feedback: "missing demo video",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationStatusNeedsRevision, updated.Status)
	assert.True(t, updated.CanTransitionTo(entities.VerificationStatusSubmitted))
}
