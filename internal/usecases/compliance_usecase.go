package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"synnovator.backend/internal/domain/entities"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/pkg/logger"
	"synnovator.backend/pkg/utils"
)

// RuleCheckResult is the outcome of checking one rule against a team
type RuleCheckResult struct {
	RuleID    uuid.UUID         `json:"ruleId"`
	RuleType  entities.RuleType `json:"ruleType"`
	Title     string            `json:"title"`
	Compliant bool              `json:"compliant"`
	Message   string            `json:"message"`
}

// ComplianceUsecase checks teams against competition rules and records
// violations
type ComplianceUsecase struct {
	teamRepo         repositories.TeamRepository
	ruleRepo         repositories.RuleRepository
	violationRepo    repositories.ViolationRepository
	submissionRepo   repositories.SubmissionRepository
	notificationRepo repositories.NotificationRepository
}

// NewComplianceUsecase creates a new compliance usecase
func NewComplianceUsecase(
	teamRepo repositories.TeamRepository,
	ruleRepo repositories.RuleRepository,
	violationRepo repositories.ViolationRepository,
	submissionRepo repositories.SubmissionRepository,
	notificationRepo repositories.NotificationRepository,
) *ComplianceUsecase {
	return &ComplianceUsecase{
		teamRepo:         teamRepo,
		ruleRepo:         ruleRepo,
		violationRepo:    violationRepo,
		submissionRepo:   submissionRepo,
		notificationRepo: notificationRepo,
	}
}

// CheckTeam evaluates every rule of the team's hackathon against the team.
// Mandatory rule failures are recorded as violations (deduplicated against
// open ones) and the team leader is notified.
func (u *ComplianceUsecase) CheckTeam(ctx context.Context, teamID uuid.UUID) ([]RuleCheckResult, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	rules, err := u.ruleRepo.ListByHackathon(ctx, team.HackathonID)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return []RuleCheckResult{}, nil
	}

	view, err := u.complianceView(ctx, team)
	if err != nil {
		return nil, err
	}

	results := make([]RuleCheckResult, 0, len(rules))
	for _, rule := range rules {
		compliant, message := rule.CheckCompliance(view)
		results = append(results, RuleCheckResult{
			RuleID:    rule.ID,
			RuleType:  rule.RuleType,
			Title:     rule.Title,
			Compliant: compliant,
			Message:   message,
		})

		if compliant || !rule.IsMandatory {
			continue
		}
		if err := u.recordViolation(ctx, team, rule, message); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (u *ComplianceUsecase) complianceView(ctx context.Context, team *entities.Team) (entities.TeamComplianceView, error) {
	roles := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		roles = append(roles, string(m.Role))
	}

	hasQualifying, err := u.submissionRepo.HasQualifyingForTeam(ctx, team.ID)
	if err != nil {
		return entities.TeamComplianceView{}, err
	}

	return entities.TeamComplianceView{
		MemberCount:             len(team.Members),
		Roles:                   roles,
		HasQualifyingSubmission: hasQualifying,
	}, nil
}

func (u *ComplianceUsecase) recordViolation(ctx context.Context, team *entities.Team, rule *entities.CompetitionRule, message string) error {
	open, err := u.violationRepo.HasOpen(ctx, team.ID, rule.ID)
	if err != nil {
		return err
	}
	if open {
		return nil
	}

	violation := &entities.RuleViolation{
		ID:              utils.GenerateUUIDv7(),
		TeamID:          team.ID,
		RuleID:          rule.ID,
		DetectionMethod: entities.DetectionAutomated,
		Description:     message,
		Status:          entities.ViolationStatusPending,
	}
	if err := u.violationRepo.Create(ctx, violation); err != nil {
		return err
	}

	if leader := team.Leader(); leader != nil {
		notification := &entities.Notification{
			ID:          utils.GenerateUUIDv7(),
			RecipientID: leader.UserID,
			Type:        entities.NotificationRuleViolation,
			Title:       fmt.Sprintf("Rule violation: %s", rule.Title),
			Message:     message,
		}
		if err := u.notificationRepo.Create(ctx, notification); err != nil {
			logger.Warn(ctx, "violation notification failed",
				zap.String("team_id", team.ID.String()), zap.Error(err))
		}
	}
	return nil
}

// ListRules returns the competition rules of a hackathon
func (u *ComplianceUsecase) ListRules(ctx context.Context, hackathonID uuid.UUID) ([]*entities.CompetitionRule, error) {
	return u.ruleRepo.ListByHackathon(ctx, hackathonID)
}

// ListViolations returns violations matching the filter
func (u *ComplianceUsecase) ListViolations(ctx context.Context, filter repositories.ViolationFilter, limit, offset int) ([]*entities.RuleViolation, int64, error) {
	return u.violationRepo.List(ctx, filter, limit, offset)
}

// ReviewViolation confirms or dismisses a recorded violation. Confirming a
// violation whose rule carries a disqualification penalty disqualifies the
// team.
func (u *ComplianceUsecase) ReviewViolation(ctx context.Context, violationID, reviewerID uuid.UUID, confirm bool, actionTaken string) error {
	status := entities.ViolationStatusDismissed
	if confirm {
		status = entities.ViolationStatusConfirmed
	}

	violation, err := u.violationRepo.GetByID(ctx, violationID)
	if err != nil {
		return err
	}

	if err := u.violationRepo.UpdateStatus(ctx, violationID, status, reviewerID, actionTaken); err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	rule, err := u.ruleRepo.GetByID(ctx, violation.RuleID)
	if err != nil {
		return err
	}
	if rule.Penalty == entities.PenaltyDisqualification {
		reason := fmt.Sprintf("Confirmed violation of rule: %s", rule.Title)
		if err := u.teamRepo.UpdateStatus(ctx, violation.TeamID, entities.TeamStatusDisqualified, reason); err != nil {
			return err
		}
	}
	return nil
}
