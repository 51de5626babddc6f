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

// HackathonRepository implements hackathon data operations
type HackathonRepository struct {
	db *gorm.DB
}

// NewHackathonRepository creates a new hackathon repository
func NewHackathonRepository(db *gorm.DB) *HackathonRepository {
	return &HackathonRepository{db: db}
}

// Create creates a new hackathon
func (r *HackathonRepository) Create(ctx context.Context, hackathon *entities.Hackathon) error {
	m := r.toModel(hackathon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	hackathon.ID = m.ID
	hackathon.CreatedAt = m.CreatedAt
	hackathon.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a hackathon by ID
func (r *HackathonRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Hackathon, error) {
	var m models.Hackathon
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetBySlug gets a hackathon by slug
func (r *HackathonRepository) GetBySlug(ctx context.Context, slug string) (*entities.Hackathon, error) {
	var m models.Hackathon
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns hackathons matching the filter with pagination
func (r *HackathonRepository) List(ctx context.Context, filter drepos.HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Hackathon{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tag != "" {
		// Tags column holds a JSON array; substring match on the quoted tag.
		query = query.Where("tags LIKE ?", "%\""+filter.Tag+"\"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Hackathon
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Hackathon, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

// Update updates hackathon configuration fields
func (r *HackathonRepository) Update(ctx context.Context, hackathon *entities.Hackathon) error {
	updates := map[string]interface{}{
		"title":                           hackathon.Title,
		"description":                     hackathon.Description,
		"tags":                            models.StringSlice(hackathon.Tags),
		"min_team_size":                   hackathon.MinTeamSize,
		"max_team_size":                   hackathon.MaxTeamSize,
		"allow_solo":                      hackathon.AllowSolo,
		"required_roles":                  models.StringSlice(hackathon.RequiredRoles),
		"passing_score":                   hackathon.PassingScore,
		"submission_type":                 string(hackathon.SubmissionType),
		"max_submissions_per_participant": hackathon.MaxSubmissionsPerParticipant,
		"require_registration":            hackathon.RequireRegistration,
		"restrict_to_submission_phase":    hackathon.RestrictToSubmissionPhase,
		"allow_late_submission":           hackathon.AllowLateSubmission,
		"allow_edit_after_submit":         hackathon.AllowEditAfterSubmit,
		"updated_at":                      time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ?", hackathon.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus moves a hackathon to the given lifecycle status
func (r *HackathonRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.HackathonStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft-deletes a hackathon
func (r *HackathonRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Hackathon{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CreatePhase creates a phase for a hackathon
func (r *HackathonRepository) CreatePhase(ctx context.Context, phase *entities.Phase) error {
	m := &models.Phase{
		ID:          phase.ID,
		HackathonID: phase.HackathonID,
		Title:       phase.Title,
		Description: phase.Description,
		StartDate:   phase.StartDate,
		EndDate:     phase.EndDate,
		Order:       phase.Order,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	phase.ID = m.ID
	return nil
}

// ListPhases returns a hackathon's phases ordered by (order, start date)
func (r *HackathonRepository) ListPhases(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Phase, error) {
	var ms []models.Phase
	if err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("display_order ASC, start_date ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Phase, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.Phase{
			ID:          m.ID,
			HackathonID: m.HackathonID,
			Title:       m.Title,
			Description: m.Description,
			StartDate:   m.StartDate,
			EndDate:     m.EndDate,
			Order:       m.Order,
		})
	}
	return items, nil
}

// CreatePrize creates a prize for a hackathon
func (r *HackathonRepository) CreatePrize(ctx context.Context, prize *entities.Prize) error {
	m := &models.Prize{
		ID:            prize.ID,
		HackathonID:   prize.HackathonID,
		Title:         prize.Title,
		Description:   prize.Description,
		Rank:          prize.Rank,
		MonetaryValue: prize.MonetaryValue,
		Benefits:      models.StringSlice(prize.Benefits),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	prize.ID = m.ID
	return nil
}

// ListPrizes returns a hackathon's prizes ordered by rank
func (r *HackathonRepository) ListPrizes(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Prize, error) {
	var ms []models.Prize
	if err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("rank ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Prize, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.Prize{
			ID:            m.ID,
			HackathonID:   m.HackathonID,
			Title:         m.Title,
			Description:   m.Description,
			Rank:          m.Rank,
			MonetaryValue: m.MonetaryValue,
			Benefits:      []string(m.Benefits),
		})
	}
	return items, nil
}

func (r *HackathonRepository) toEntity(m *models.Hackathon) *entities.Hackathon {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Hackathon{
		ID:                           m.ID,
		Title:                        m.Title,
		Slug:                         m.Slug,
		Description:                  m.Description,
		Tags:                         []string(m.Tags),
		Status:                       entities.HackathonStatus(m.Status),
		MinTeamSize:                  m.MinTeamSize,
		MaxTeamSize:                  m.MaxTeamSize,
		AllowSolo:                    m.AllowSolo,
		RequiredRoles:                []string(m.RequiredRoles),
		PassingScore:                 m.PassingScore,
		SubmissionType:               entities.SubmissionType(m.SubmissionType),
		MaxSubmissionsPerParticipant: m.MaxSubmissionsPerParticipant,
		RequireRegistration:          m.RequireRegistration,
		RestrictToSubmissionPhase:    m.RestrictToSubmissionPhase,
		AllowLateSubmission:          m.AllowLateSubmission,
		AllowEditAfterSubmit:         m.AllowEditAfterSubmit,
		CreatedAt:                    m.CreatedAt,
		UpdatedAt:                    m.UpdatedAt,
		DeletedAt:                    deletedAt,
	}
}

func (r *HackathonRepository) toModel(e *entities.Hackathon) *models.Hackathon {
	return &models.Hackathon{
		ID:                           e.ID,
		Title:                        e.Title,
		Slug:                         e.Slug,
		Description:                  e.Description,
		Tags:                         models.StringSlice(e.Tags),
		Status:                       string(e.Status),
		MinTeamSize:                  e.MinTeamSize,
		MaxTeamSize:                  e.MaxTeamSize,
		AllowSolo:                    e.AllowSolo,
		RequiredRoles:                models.StringSlice(e.RequiredRoles),
		PassingScore:                 e.PassingScore,
		SubmissionType:               string(e.SubmissionType),
		MaxSubmissionsPerParticipant: e.MaxSubmissionsPerParticipant,
		RequireRegistration:          e.RequireRegistration,
		RestrictToSubmissionPhase:    e.RestrictToSubmissionPhase,
		AllowLateSubmission:          e.AllowLateSubmission,
		AllowEditAfterSubmit:         e.AllowEditAfterSubmit,
		CreatedAt:                    e.CreatedAt,
		UpdatedAt:                    e.UpdatedAt,
	}
}
