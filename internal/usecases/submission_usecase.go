package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/pkg/logger"
	"synnovator.backend/pkg/utils"
)

// SubmissionUsecase handles submission lifecycle business logic
type SubmissionUsecase struct {
	submissionRepo   repositories.SubmissionRepository
	teamRepo         repositories.TeamRepository
	questRepo        repositories.QuestRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	eligibility      *EligibilityUsecase
	scoring          *ScoringUsecase
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(
	submissionRepo repositories.SubmissionRepository,
	teamRepo repositories.TeamRepository,
	questRepo repositories.QuestRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	eligibility *EligibilityUsecase,
	scoring *ScoringUsecase,
) *SubmissionUsecase {
	return &SubmissionUsecase{
		submissionRepo:   submissionRepo,
		teamRepo:         teamRepo,
		questRepo:        questRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		eligibility:      eligibility,
		scoring:          scoring,
	}
}

// Create creates a submission for the authenticated user. A team submission
// requires membership; a hackathon submission passes the eligibility chain
// first and is rejected with the chain's reason when not allowed.
func (u *SubmissionUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateSubmissionInput) (*entities.Submission, error) {
	submission := &entities.Submission{
		ID:            utils.GenerateUUIDv7(),
		QuestID:       input.QuestID,
		HackathonID:   input.HackathonID,
		Title:         input.Title,
		SubmissionURL: input.SubmissionURL,
		Description:   input.Description,
		Status:        entities.VerificationStatusDraft,
		AttemptNumber: 1,
	}

	if input.TeamID != nil {
		if err := u.requireMembership(ctx, *input.TeamID, userID); err != nil {
			return nil, err
		}
		submission.TeamID = input.TeamID
	} else {
		submission.UserID = &userID
	}

	if err := submission.Validate(); err != nil {
		return nil, err
	}

	if input.QuestID != nil {
		quest, err := u.questRepo.GetByID(ctx, *input.QuestID)
		if err != nil {
			return nil, err
		}
		if !quest.IsActive {
			return nil, domainerrors.ErrInvalidState
		}
		// Quest submissions start pending, skipping the draft stage.
		submission.Status = entities.VerificationStatusPending
	}

	if input.HackathonID != nil {
		decision, err := u.eligibility.CanSubmit(ctx, *input.HackathonID, submission.Submitter())
		if err != nil {
			return nil, err
		}
		if !decision.Allowed {
			return nil, domainerrors.NewError(decision.Message, domainerrors.ErrNotEligible)
		}
		if decision.Reason == entities.ReasonLateSubmission {
			logger.Info(ctx, "late submission accepted",
				zap.String("hackathon_id", input.HackathonID.String()))
		}
	}

	if err := u.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Get returns a submission by ID
func (u *SubmissionUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Submission, error) {
	return u.submissionRepo.GetByID(ctx, id)
}

// List returns submissions matching the filter
func (u *SubmissionUsecase) List(ctx context.Context, filter repositories.SubmissionFilter, limit, offset int) ([]*entities.Submission, int64, error) {
	return u.submissionRepo.List(ctx, filter, limit, offset)
}

// Submit moves a draft to submitted. Only the owner (or a member of the
// owning team) may submit.
func (u *SubmissionUsecase) Submit(ctx context.Context, id, userID uuid.UUID) (*entities.Submission, error) {
	submission, err := u.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.requireOwnership(ctx, submission, userID); err != nil {
		return nil, err
	}
	if !submission.CanTransitionTo(entities.VerificationStatusSubmitted) {
		return nil, domainerrors.ErrInvalidTransition
	}

	now := time.Now()
	submission.Status = entities.VerificationStatusSubmitted
	submission.SubmittedAt = &now
	if err := u.submissionRepo.Update(ctx, submission); err != nil {
		return nil, err
	}

	if submission.TeamID != nil {
		if err := u.teamRepo.UpdateStatus(ctx, *submission.TeamID, entities.TeamStatusSubmitted, ""); err != nil {
			logger.Warn(ctx, "team status update failed",
				zap.String("team_id", submission.TeamID.String()), zap.Error(err))
		}
	}
	return submission, nil
}

// Review applies a judge's review decision. Verification stamps the reviewer
// and time, awards quest XP, refreshes team scores, and notifies the
// submitter.
func (u *SubmissionUsecase) Review(ctx context.Context, id, reviewerID uuid.UUID, input *entities.ReviewSubmissionInput) (*entities.Submission, error) {
	submission, err := u.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !submission.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidTransition
	}

	submission.Status = input.Status
	submission.Feedback = input.Feedback
	if input.Score != nil {
		submission.Score = null.Float64From(*input.Score)
	}
	if input.Status == entities.VerificationStatusVerified {
		now := time.Now()
		submission.VerifiedAt = &now
		submission.VerifiedBy = &reviewerID
	}

	if err := u.submissionRepo.Update(ctx, submission); err != nil {
		return nil, err
	}

	if input.Status == entities.VerificationStatusVerified {
		u.onVerified(ctx, submission)
	}
	u.notifySubmitter(ctx, submission)
	return submission, nil
}

func (u *SubmissionUsecase) onVerified(ctx context.Context, submission *entities.Submission) {
	if submission.QuestID != nil && submission.UserID != nil {
		quest, err := u.questRepo.GetByID(ctx, *submission.QuestID)
		if err == nil && quest.XPReward > 0 {
			if err := u.userRepo.AddXP(ctx, *submission.UserID, quest.XPReward); err != nil {
				logger.Warn(ctx, "quest XP award failed",
					zap.String("user_id", submission.UserID.String()), zap.Error(err))
			}
		}
	}
	if submission.TeamID != nil {
		if err := u.teamRepo.UpdateStatus(ctx, *submission.TeamID, entities.TeamStatusVerified, ""); err != nil {
			logger.Warn(ctx, "team status update failed",
				zap.String("team_id", submission.TeamID.String()), zap.Error(err))
		}
		if err := u.scoring.RecomputeTeamScores(ctx, *submission.TeamID); err != nil {
			logger.Warn(ctx, "team score recompute failed",
				zap.String("team_id", submission.TeamID.String()), zap.Error(err))
		}
	}
}

func (u *SubmissionUsecase) notifySubmitter(ctx context.Context, submission *entities.Submission) {
	recipients := []uuid.UUID{}
	if submission.UserID != nil {
		recipients = append(recipients, *submission.UserID)
	} else if submission.TeamID != nil {
		team, err := u.teamRepo.GetByID(ctx, *submission.TeamID)
		if err == nil {
			if leader := team.Leader(); leader != nil {
				recipients = append(recipients, leader.UserID)
			}
		}
	}

	for _, recipient := range recipients {
		n := &entities.Notification{
			ID:          utils.GenerateUUIDv7(),
			RecipientID: recipient,
			Type:        entities.NotificationSubmissionReviewed,
			Title:       fmt.Sprintf("Submission %s", submission.Status),
			Message:     submission.Feedback,
		}
		if err := u.notificationRepo.Create(ctx, n); err != nil {
			logger.Warn(ctx, "review notification failed", zap.Error(err))
		}
	}
}

func (u *SubmissionUsecase) requireMembership(ctx context.Context, teamID, userID uuid.UUID) error {
	members, err := u.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.UserID == userID {
			return nil
		}
	}
	return domainerrors.ErrForbidden
}

func (u *SubmissionUsecase) requireOwnership(ctx context.Context, submission *entities.Submission, userID uuid.UUID) error {
	if submission.UserID != nil {
		if *submission.UserID == userID {
			return nil
		}
		return domainerrors.ErrForbidden
	}
	if submission.TeamID != nil {
		return u.requireMembership(ctx, *submission.TeamID, userID)
	}
	return domainerrors.ErrForbidden
}
