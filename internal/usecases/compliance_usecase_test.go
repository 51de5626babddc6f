package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"synnovator.backend/internal/domain/entities"
	"synnovator.backend/internal/usecases"
)

func newComplianceForTest(
	teamRepo *MockTeamRepository,
	ruleRepo *MockRuleRepository,
	violationRepo *MockViolationRepository,
	submissionRepo *MockSubmissionRepository,
	notificationRepo *MockNotificationRepository,
) *usecases.ComplianceUsecase {
	return usecases.NewComplianceUsecase(teamRepo, ruleRepo, violationRepo, submissionRepo, notificationRepo)
}

func complianceTeam(memberRoles ...entities.MemberRole) *entities.Team {
	team := &entities.Team{ID: uuid.New(), HackathonID: uuid.New(), Name: "checked"}
	for i, role := range memberRoles {
		team.Members = append(team.Members, &entities.TeamMember{
			ID:       uuid.New(),
			TeamID:   team.ID,
			UserID:   uuid.New(),
			Role:     role,
			IsLeader: i == 0,
		})
	}
	return team
}

func intPtr(v int) *int { return &v }

func TestComplianceUsecase_CheckTeam_NoRules(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, new(MockViolationRepository), new(MockSubmissionRepository), new(MockNotificationRepository))

	team := complianceTeam(entities.MemberRoleHacker)
	teamRepo.On("GetByID", context.Background(), team.ID).Return(team, nil).Once()
	ruleRepo.On("ListByHackathon", context.Background(), team.HackathonID).Return([]*entities.CompetitionRule{}, nil).Once()

	results, err := uc.CheckTeam(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestComplianceUsecase_CheckTeam_TeamSizeBelowMinimum(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	violationRepo := new(MockViolationRepository)
	submissionRepo := new(MockSubmissionRepository)
	notificationRepo := new(MockNotificationRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, violationRepo, submissionRepo, notificationRepo)

	team := complianceTeam(entities.MemberRoleHacker)
	rule := &entities.CompetitionRule{
		ID:          uuid.New(),
		HackathonID: team.HackathonID,
		RuleType:    entities.RuleTypeTeamSize,
		Title:       "Minimum team size",
		Definition:  entities.RuleDefinition{MinMembers: intPtr(2)},
		IsMandatory: true,
	}

	teamRepo.On("GetByID", context.Background(), team.ID).Return(team, nil).Once()
	ruleRepo.On("ListByHackathon", context.Background(), team.HackathonID).Return([]*entities.CompetitionRule{rule}, nil).Once()
	submissionRepo.On("HasQualifyingForTeam", context.Background(), team.ID).Return(true, nil).Once()
	violationRepo.On("HasOpen", context.Background(), team.ID, rule.ID).Return(false, nil).Once()
	violationRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.RuleViolation")).Return(nil).Once().Run(func(args mock.Arguments) {
		v := args.Get(1).(*entities.RuleViolation)
		assert.Equal(t, entities.DetectionAutomated, v.DetectionMethod)
		assert.Equal(t, entities.ViolationStatusPending, v.Status)
		assert.Equal(t, "Team has 1 members, minimum is 2", v.Description)
	})
	notificationRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.Notification")).Return(nil).Once().Run(func(args mock.Arguments) {
		n := args.Get(1).(*entities.Notification)
		assert.Equal(t, entities.NotificationRuleViolation, n.Type)
		assert.Equal(t, team.Members[0].UserID, n.RecipientID)
	})

	results, err := uc.CheckTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Compliant)
	assert.Equal(t, "Team has 1 members, minimum is 2", results[0].Message)
	violationRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestComplianceUsecase_CheckTeam_OpenViolationNotDuplicated(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	violationRepo := new(MockViolationRepository)
	submissionRepo := new(MockSubmissionRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, violationRepo, submissionRepo, new(MockNotificationRepository))

	team := complianceTeam(entities.MemberRoleHacker)
	rule := &entities.CompetitionRule{
		ID:          uuid.New(),
		RuleType:    entities.RuleTypeTeamSize,
		Definition:  entities.RuleDefinition{MinMembers: intPtr(3)},
		IsMandatory: true,
	}

	teamRepo.On("GetByID", context.Background(), team.ID).Return(team, nil).Once()
	ruleRepo.On("ListByHackathon", context.Background(), team.HackathonID).Return([]*entities.CompetitionRule{rule}, nil).Once()
	submissionRepo.On("HasQualifyingForTeam", context.Background(), team.ID).Return(true, nil).Once()
	violationRepo.On("HasOpen", context.Background(), team.ID, rule.ID).Return(true, nil).Once()

	results, err := uc.CheckTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Compliant)
	violationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestComplianceUsecase_CheckTeam_MissingRolesSorted(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	submissionRepo := new(MockSubmissionRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, new(MockViolationRepository), submissionRepo, new(MockNotificationRepository))

	team := complianceTeam(entities.MemberRoleHacker)
	rule := &entities.CompetitionRule{
		ID:       uuid.New(),
		RuleType: entities.RuleTypeTeamComposition,
		Definition: entities.RuleDefinition{
			RequiredRoles: []string{"hustler", "hacker", "hipster"},
		},
	}

	teamRepo.On("GetByID", context.Background(), team.ID).Return(team, nil).Once()
	ruleRepo.On("ListByHackathon", context.Background(), team.HackathonID).Return([]*entities.CompetitionRule{rule}, nil).Once()
	submissionRepo.On("HasQualifyingForTeam", context.Background(), team.ID).Return(false, nil).Once()

	results, err := uc.CheckTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Missing required roles: hipster, hustler", results[0].Message)
}

func TestComplianceUsecase_CheckTeam_SubmissionFormatAndManualRules(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	submissionRepo := new(MockSubmissionRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, new(MockViolationRepository), submissionRepo, new(MockNotificationRepository))

	team := complianceTeam(entities.MemberRoleHacker)
	formatRule := &entities.CompetitionRule{ID: uuid.New(), RuleType: entities.RuleTypeSubmissionFormat}
	conductRule := &entities.CompetitionRule{ID: uuid.New(), RuleType: entities.RuleTypeConduct}

	teamRepo.On("GetByID", context.Background(), team.ID).Return(team, nil).Once()
	ruleRepo.On("ListByHackathon", context.Background(), team.HackathonID).Return([]*entities.CompetitionRule{formatRule, conductRule}, nil).Once()
	submissionRepo.On("HasQualifyingForTeam", context.Background(), team.ID).Return(false, nil).Once()

	results, err := uc.CheckTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Compliant)
	assert.Equal(t, "No valid submission found", results[0].Message)
	assert.True(t, results[1].Compliant)
	assert.Equal(t, "Manual verification required", results[1].Message)
}

func TestComplianceUsecase_CheckTeam_NonMandatoryFailureNotRecorded(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	violationRepo := new(MockViolationRepository)
	submissionRepo := new(MockSubmissionRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, violationRepo, submissionRepo, new(MockNotificationRepository))

	team := complianceTeam(entities.MemberRoleHacker)
	rule := &entities.CompetitionRule{
		ID:          uuid.New(),
		RuleType:    entities.RuleTypeTeamSize,
		Definition:  entities.RuleDefinition{MinMembers: intPtr(4)},
		IsMandatory: false,
	}

	teamRepo.On("GetByID", context.Background(), team.ID).Return(team, nil).Once()
	ruleRepo.On("ListByHackathon", context.Background(), team.HackathonID).Return([]*entities.CompetitionRule{rule}, nil).Once()
	submissionRepo.On("HasQualifyingForTeam", context.Background(), team.ID).Return(true, nil).Once()

	results, err := uc.CheckTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Compliant)
	violationRepo.AssertNotCalled(t, "HasOpen", mock.Anything, mock.Anything, mock.Anything)
	violationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestComplianceUsecase_ReviewViolation_ConfirmDisqualifies(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	violationRepo := new(MockViolationRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, violationRepo, new(MockSubmissionRepository), new(MockNotificationRepository))

	violation := &entities.RuleViolation{
		ID:     uuid.New(),
		TeamID: uuid.New(),
		RuleID: uuid.New(),
		Status: entities.ViolationStatusPending,
	}
	rule := &entities.CompetitionRule{
		ID:      violation.RuleID,
		Title:   "No plagiarism",
		Penalty: entities.PenaltyDisqualification,
	}
	reviewerID := uuid.New()

	violationRepo.On("GetByID", context.Background(), violation.ID).Return(violation, nil).Once()
	violationRepo.On("UpdateStatus", context.Background(), violation.ID, entities.ViolationStatusConfirmed, reviewerID, "disqualified").Return(nil).Once()
	ruleRepo.On("GetByID", context.Background(), violation.RuleID).Return(rule, nil).Once()
	teamRepo.On("UpdateStatus", context.Background(), violation.TeamID, entities.TeamStatusDisqualified, "Confirmed violation of rule: No plagiarism").Return(nil).Once()

	err := uc.ReviewViolation(context.Background(), violation.ID, reviewerID, true, "disqualified")
	require.NoError(t, err)
	teamRepo.AssertExpectations(t)
}

func TestComplianceUsecase_ReviewViolation_DismissLeavesTeamAlone(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	violationRepo := new(MockViolationRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, violationRepo, new(MockSubmissionRepository), new(MockNotificationRepository))

	violation := &entities.RuleViolation{ID: uuid.New(), TeamID: uuid.New(), RuleID: uuid.New()}
	reviewerID := uuid.New()

	violationRepo.On("GetByID", context.Background(), violation.ID).Return(violation, nil).Once()
	violationRepo.On("UpdateStatus", context.Background(), violation.ID, entities.ViolationStatusDismissed, reviewerID, "false positive").Return(nil).Once()

	err := uc.ReviewViolation(context.Background(), violation.ID, reviewerID, false, "false positive")
	require.NoError(t, err)
	ruleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	teamRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComplianceUsecase_ReviewViolation_ConfirmWarningPenalty(t *testing.T) {
	teamRepo := new(MockTeamRepository)
	ruleRepo := new(MockRuleRepository)
	violationRepo := new(MockViolationRepository)
	uc := newComplianceForTest(teamRepo, ruleRepo, violationRepo, new(MockSubmissionRepository), new(MockNotificationRepository))

	violation := &entities.RuleViolation{ID: uuid.New(), TeamID: uuid.New(), RuleID: uuid.New()}
	rule := &entities.CompetitionRule{ID: violation.RuleID, Penalty: entities.PenaltyWarning}
	reviewerID := uuid.New()

	violationRepo.On("GetByID", context.Background(), violation.ID).Return(violation, nil).Once()
	violationRepo.On("UpdateStatus", context.Background(), violation.ID, entities.ViolationStatusConfirmed, reviewerID, "warned").Return(nil).Once()
	ruleRepo.On("GetByID", context.Background(), violation.RuleID).Return(rule, nil).Once()

	err := uc.ReviewViolation(context.Background(), violation.ID, reviewerID, true, "warned")
	require.NoError(t, err)
	teamRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
