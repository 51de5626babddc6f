package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	drepos "synnovator.backend/internal/domain/repositories"
	"synnovator.backend/internal/infrastructure/models"
)

// SubmissionRepository implements submission data operations
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create creates a new submission
func (r *SubmissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	m := r.toModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	submission.ID = m.ID
	submission.AttemptNumber = m.AttemptNumber
	submission.CreatedAt = m.CreatedAt
	submission.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a submission by ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error) {
	var m models.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update persists review fields and content edits
func (r *SubmissionRepository) Update(ctx context.Context, submission *entities.Submission) error {
	updates := map[string]interface{}{
		"title":               submission.Title,
		"submission_url":      submission.SubmissionURL,
		"description":         submission.Description,
		"verification_status": string(submission.Status),
		"score":               submission.Score,
		"feedback":            submission.Feedback,
		"attempt_number":      submission.AttemptNumber,
		"submitted_at":        submission.SubmittedAt,
		"verified_at":         submission.VerifiedAt,
		"verified_by":         submission.VerifiedBy,
		"updated_at":          time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ?", submission.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns submissions matching the filter with pagination, newest first
func (r *SubmissionRepository) List(ctx context.Context, filter drepos.SubmissionFilter, limit, offset int) ([]*entities.Submission, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Submission{})
	if filter.HackathonID != nil {
		query = query.Where("hackathon_id = ?", *filter.HackathonID)
	}
	if filter.QuestID != nil {
		query = query.Where("quest_id = ?", *filter.QuestID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Status != "" {
		query = query.Where("verification_status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Submission
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Submission, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

// CountForParticipant counts the participant's submissions against the
// hackathon, for quota enforcement
func (r *SubmissionRepository) CountForParticipant(ctx context.Context, hackathonID uuid.UUID, p entities.Participant) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("hackathon_id = ?", hackathonID)
	switch p.Kind {
	case entities.ParticipantUser:
		query = query.Where("user_id = ?", p.ID)
	case entities.ParticipantTeam:
		query = query.Where("team_id = ?", p.ID)
	default:
		return 0, domainerrors.ErrInvalidInput
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListVerifiedByTeam returns the team's verified submissions ordered by
// creation time
func (r *SubmissionRepository) ListVerifiedByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Submission, error) {
	var ms []models.Submission
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND verification_status = ?", teamID, string(entities.VerificationStatusVerified)).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Submission, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// HasQualifyingForTeam reports whether the team has any verified or pending
// submission
func (r *SubmissionRepository) HasQualifyingForTeam(ctx context.Context, teamID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("team_id = ? AND verification_status IN ?", teamID,
			[]string{string(entities.VerificationStatusVerified), string(entities.VerificationStatusPending)}).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SubmissionRepository) toEntity(m *models.Submission) *entities.Submission {
	return &entities.Submission{
		ID:            m.ID,
		UserID:        m.UserID,
		TeamID:        m.TeamID,
		QuestID:       m.QuestID,
		HackathonID:   m.HackathonID,
		Title:         m.Title,
		SubmissionURL: m.SubmissionURL,
		Description:   m.Description,
		Status:        entities.VerificationStatus(m.Status),
		Score:         m.Score,
		Feedback:      m.Feedback,
		AttemptNumber: m.AttemptNumber,
		SubmittedAt:   m.SubmittedAt,
		VerifiedAt:    m.VerifiedAt,
		VerifiedBy:    m.VerifiedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *SubmissionRepository) toModel(e *entities.Submission) *models.Submission {
	m := &models.Submission{
		ID:            e.ID,
		UserID:        e.UserID,
		TeamID:        e.TeamID,
		QuestID:       e.QuestID,
		HackathonID:   e.HackathonID,
		Title:         e.Title,
		SubmissionURL: e.SubmissionURL,
		Description:   e.Description,
		Status:        string(e.Status),
		Score:         e.Score,
		Feedback:      e.Feedback,
		AttemptNumber: e.AttemptNumber,
		SubmittedAt:   e.SubmittedAt,
		VerifiedAt:    e.VerifiedAt,
		VerifiedBy:    e.VerifiedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if m.AttemptNumber == 0 {
		m.AttemptNumber = 1
	}
	return m
}
