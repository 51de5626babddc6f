package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"synnovator.backend/internal/domain/entities"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/pkg/logger"
	"synnovator.backend/pkg/redis"
	"synnovator.backend/pkg/utils"
)

const leaderboardCacheTTL = 30 * time.Second

func leaderboardCacheKey(hackathonID uuid.UUID) string {
	return fmt.Sprintf("leaderboard:%s", hackathonID)
}

// ScoringUsecase handles judge scoring and team score aggregation
type ScoringUsecase struct {
	submissionRepo repositories.SubmissionRepository
	judgeScoreRepo repositories.JudgeScoreRepository
	teamRepo       repositories.TeamRepository
	cacheEnabled   bool
}

// NewScoringUsecase creates a new scoring usecase. cacheEnabled gates the
// Redis leaderboard cache so tests can run without a client.
func NewScoringUsecase(
	submissionRepo repositories.SubmissionRepository,
	judgeScoreRepo repositories.JudgeScoreRepository,
	teamRepo repositories.TeamRepository,
	cacheEnabled bool,
) *ScoringUsecase {
	return &ScoringUsecase{
		submissionRepo: submissionRepo,
		judgeScoreRepo: judgeScoreRepo,
		teamRepo:       teamRepo,
		cacheEnabled:   cacheEnabled,
	}
}

// UpsertJudgeScore records or replaces one judge's score for a submission,
// then refreshes the owning team's aggregate scores.
func (u *ScoringUsecase) UpsertJudgeScore(ctx context.Context, judgeID uuid.UUID, input *entities.UpsertJudgeScoreInput) (*entities.JudgeScore, error) {
	submission, err := u.submissionRepo.GetByID(ctx, input.SubmissionID)
	if err != nil {
		return nil, err
	}

	score := &entities.JudgeScore{
		ID:               utils.GenerateUUIDv7(),
		SubmissionID:     submission.ID,
		JudgeID:          judgeID,
		TechnicalScore:   input.TechnicalScore,
		CommercialScore:  input.CommercialScore,
		OperationalScore: input.OperationalScore,
		OverallScore:     input.OverallScore,
		Feedback:         input.Feedback,
	}
	score.DeriveOverall()

	if err := u.judgeScoreRepo.Upsert(ctx, score); err != nil {
		return nil, err
	}

	if submission.TeamID != nil {
		if err := u.RecomputeTeamScores(ctx, *submission.TeamID); err != nil {
			logger.Warn(ctx, "team score recompute failed",
				zap.String("team_id", submission.TeamID.String()), zap.Error(err))
		}
	}
	return score, nil
}

// RecomputeTeamScores rebuilds the team's dimension scores from its verified
// submissions. Submissions are walked in creation order and each one with at
// least one judge score overwrites the previous values, so the newest scored
// submission wins. A team with no scored verified submissions keeps its
// previous values; the row is saved either way.
func (u *ScoringUsecase) RecomputeTeamScores(ctx context.Context, teamID uuid.UUID) error {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}

	submissions, err := u.submissionRepo.ListVerifiedByTeam(ctx, teamID)
	if err != nil {
		return err
	}

	for _, submission := range submissions {
		scores, err := u.judgeScoreRepo.ListBySubmission(ctx, submission.ID)
		if err != nil {
			return err
		}
		avg, ok := entities.AverageJudgeScores(scores)
		if !ok {
			continue
		}
		team.TechnicalScore = avg.Technical
		team.CommercialScore = avg.Commercial
		team.OperationalScore = avg.Operational
		team.FinalScore = avg.Final()
	}

	if err := u.teamRepo.SaveScores(ctx, team); err != nil {
		return err
	}
	u.invalidateLeaderboard(ctx, team.HackathonID)
	return nil
}

// ListScores returns all judge scores for a submission
func (u *ScoringUsecase) ListScores(ctx context.Context, submissionID uuid.UUID) ([]*entities.JudgeScore, error) {
	if _, err := u.submissionRepo.GetByID(ctx, submissionID); err != nil {
		return nil, err
	}
	return u.judgeScoreRepo.ListBySubmission(ctx, submissionID)
}

// Leaderboard returns the ranked teams for a hackathon, served from the
// Redis cache when warm.
func (u *ScoringUsecase) Leaderboard(ctx context.Context, hackathonID uuid.UUID, limit int) ([]*entities.LeaderboardEntry, error) {
	key := leaderboardCacheKey(hackathonID)
	if u.cacheEnabled {
		var cached []*entities.LeaderboardEntry
		err := redis.GetJSON(ctx, key, &cached)
		if err == nil {
			if limit > 0 && len(cached) > limit {
				cached = cached[:limit]
			}
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logger.Warn(ctx, "leaderboard cache read failed", zap.Error(err))
		}
	}

	entries, err := u.teamRepo.Leaderboard(ctx, hackathonID, 0)
	if err != nil {
		return nil, err
	}

	if u.cacheEnabled {
		if err := redis.SetJSON(ctx, key, entries, leaderboardCacheTTL); err != nil {
			logger.Warn(ctx, "leaderboard cache write failed", zap.Error(err))
		}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (u *ScoringUsecase) invalidateLeaderboard(ctx context.Context, hackathonID uuid.UUID) {
	if !u.cacheEnabled {
		return
	}
	if err := redis.Del(ctx, leaderboardCacheKey(hackathonID)); err != nil {
		logger.Warn(ctx, "leaderboard cache invalidation failed", zap.Error(err))
	}
}
