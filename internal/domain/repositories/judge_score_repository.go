package repositories

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
)

type JudgeScoreRepository interface {
	// Upsert creates or replaces the judge's score for a submission. A
	// concurrent duplicate insert surfaces as ErrConflict via the
	// (submission, judge) unique constraint.
	Upsert(ctx context.Context, score *entities.JudgeScore) error
	GetBySubmissionAndJudge(ctx context.Context, submissionID, judgeID uuid.UUID) (*entities.JudgeScore, error)
	ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]*entities.JudgeScore, error)
}
