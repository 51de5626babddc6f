package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/pkg/utils"
)

func TestJudgeScoreRepository_UpsertReplacesExistingScore(t *testing.T) {
	db := newTestDB(t)
	createSubmissionTables(t, db)
	repo := NewJudgeScoreRepository(db)
	ctx := context.Background()

	submissionID := uuid.New()
	judgeID := uuid.New()

	score := &entities.JudgeScore{
		ID:               utils.GenerateUUIDv7(),
		SubmissionID:     submissionID,
		JudgeID:          judgeID,
		TechnicalScore:   80,
		CommercialScore:  70,
		OperationalScore: 60,
		OverallScore:     70,
		Feedback:         "solid demo",
	}
	require.NoError(t, repo.Upsert(ctx, score))
	firstID := score.ID

	// Second upsert for the same (submission, judge) replaces, not duplicates
	revised := &entities.JudgeScore{
		ID:               utils.GenerateUUIDv7(),
		SubmissionID:     submissionID,
		JudgeID:          judgeID,
		TechnicalScore:   90,
		CommercialScore:  85,
		OperationalScore: 80,
		OverallScore:     85,
		Feedback:         "improved after resubmit",
	}
	require.NoError(t, repo.Upsert(ctx, revised))
	require.Equal(t, firstID, revised.ID)

	scores, err := repo.ListBySubmission(ctx, submissionID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, 90.0, scores[0].TechnicalScore)
	require.Equal(t, "improved after resubmit", scores[0].Feedback)
}

func TestJudgeScoreRepository_GetBySubmissionAndJudge(t *testing.T) {
	db := newTestDB(t)
	createSubmissionTables(t, db)
	repo := NewJudgeScoreRepository(db)
	ctx := context.Background()

	submissionID := uuid.New()
	judgeID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &entities.JudgeScore{
		ID:           utils.GenerateUUIDv7(),
		SubmissionID: submissionID,
		JudgeID:      judgeID,
		OverallScore: 75,
	}))

	got, err := repo.GetBySubmissionAndJudge(ctx, submissionID, judgeID)
	require.NoError(t, err)
	require.Equal(t, 75.0, got.OverallScore)

	_, err = repo.GetBySubmissionAndJudge(ctx, submissionID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestJudgeScoreRepository_ListOrdersByCreation(t *testing.T) {
	db := newTestDB(t)
	createSubmissionTables(t, db)
	repo := NewJudgeScoreRepository(db)
	ctx := context.Background()

	submissionID := uuid.New()
	for i, overall := range []float64{60, 70, 80} {
		require.NoError(t, repo.Upsert(ctx, &entities.JudgeScore{
			ID:           utils.GenerateUUIDv7(),
			SubmissionID: submissionID,
			JudgeID:      uuid.New(),
			OverallScore: overall,
		}), "score %d", i)
	}

	scores, err := repo.ListBySubmission(ctx, submissionID)
	require.NoError(t, err)
	require.Len(t, scores, 3)
}
