package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/infrastructure/models"
)

// JudgeScoreRepository implements judge score data operations
type JudgeScoreRepository struct {
	db *gorm.DB
}

// NewJudgeScoreRepository creates a new judge score repository
func NewJudgeScoreRepository(db *gorm.DB) *JudgeScoreRepository {
	return &JudgeScoreRepository{db: db}
}

// Upsert creates or replaces the judge's score for a submission. The lookup
// and insert are not atomic; a concurrent duplicate surfaces via the
// (submission, judge) unique constraint as ErrConflict.
func (r *JudgeScoreRepository) Upsert(ctx context.Context, score *entities.JudgeScore) error {
	var existing models.JudgeScore
	err := r.db.WithContext(ctx).
		Where("submission_id = ? AND judge_id = ?", score.SubmissionID, score.JudgeID).
		First(&existing).Error
	switch {
	case err == nil:
		result := r.db.WithContext(ctx).
			Model(&models.JudgeScore{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"technical_score":   score.TechnicalScore,
				"commercial_score":  score.CommercialScore,
				"operational_score": score.OperationalScore,
				"overall_score":     score.OverallScore,
				"feedback":          score.Feedback,
				"updated_at":        time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		score.ID = existing.ID
		score.CreatedAt = existing.CreatedAt
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		m := &models.JudgeScore{
			ID:               score.ID,
			SubmissionID:     score.SubmissionID,
			JudgeID:          score.JudgeID,
			TechnicalScore:   score.TechnicalScore,
			CommercialScore:  score.CommercialScore,
			OperationalScore: score.OperationalScore,
			OverallScore:     score.OverallScore,
			Feedback:         score.Feedback,
		}
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrConflict
			}
			return err
		}
		score.ID = m.ID
		score.CreatedAt = m.CreatedAt
		score.UpdatedAt = m.UpdatedAt
		return nil

	default:
		return err
	}
}

// GetBySubmissionAndJudge gets the judge's score for a submission
func (r *JudgeScoreRepository) GetBySubmissionAndJudge(ctx context.Context, submissionID, judgeID uuid.UUID) (*entities.JudgeScore, error) {
	var m models.JudgeScore
	if err := r.db.WithContext(ctx).
		Where("submission_id = ? AND judge_id = ?", submissionID, judgeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListBySubmission returns all judge scores for a submission
func (r *JudgeScoreRepository) ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]*entities.JudgeScore, error) {
	var ms []models.JudgeScore
	if err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.JudgeScore, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *JudgeScoreRepository) toEntity(m *models.JudgeScore) *entities.JudgeScore {
	return &entities.JudgeScore{
		ID:               m.ID,
		SubmissionID:     m.SubmissionID,
		JudgeID:          m.JudgeID,
		TechnicalScore:   m.TechnicalScore,
		CommercialScore:  m.CommercialScore,
		OperationalScore: m.OperationalScore,
		OverallScore:     m.OverallScore,
		Feedback:         m.Feedback,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
