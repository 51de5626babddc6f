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

// RegistrationRepository implements team registration data operations
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create creates a registration; a second registration of the same team for
// the same hackathon surfaces as ErrAlreadyExists
func (r *RegistrationRepository) Create(ctx context.Context, reg *entities.TeamRegistration) error {
	m := r.toModel(reg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	reg.ID = m.ID
	reg.RegisteredAt = m.RegisteredAt
	return nil
}

// GetByID gets a registration by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamRegistration, error) {
	var m models.TeamRegistration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByTeamAndHackathon gets the registration linking a team to a hackathon
func (r *RegistrationRepository) GetByTeamAndHackathon(ctx context.Context, hackathonID, teamID uuid.UUID) (*entities.TeamRegistration, error) {
	var m models.TeamRegistration
	if err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND team_id = ?", hackathonID, teamID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByHackathon returns registrations for a hackathon, optionally narrowed
// to one status
func (r *RegistrationRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID, status entities.RegistrationStatus) ([]*entities.TeamRegistration, error) {
	query := r.db.WithContext(ctx).Where("hackathon_id = ?", hackathonID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var ms []models.TeamRegistration
	if err := query.Order("registered_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.TeamRegistration, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// UpdateStatus moves a registration to the given review status
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RegistrationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.TeamRegistration{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// HasApprovedTeam reports whether the team holds an approved registration for
// the hackathon
func (r *RegistrationRepository) HasApprovedTeam(ctx context.Context, hackathonID, teamID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TeamRegistration{}).
		Where("hackathon_id = ? AND team_id = ? AND status = ?",
			hackathonID, teamID, string(entities.RegistrationStatusApproved)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasApprovedUser reports whether any team the user belongs to holds an
// approved registration for the hackathon
func (r *RegistrationRepository) HasApprovedUser(ctx context.Context, hackathonID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TeamRegistration{}).
		Joins("JOIN team_members ON team_members.team_id = team_registrations.team_id").
		Where("team_registrations.hackathon_id = ? AND team_members.user_id = ? AND team_registrations.status = ?",
			hackathonID, userID, string(entities.RegistrationStatusApproved)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RegistrationRepository) toEntity(m *models.TeamRegistration) *entities.TeamRegistration {
	return &entities.TeamRegistration{
		ID:           m.ID,
		HackathonID:  m.HackathonID,
		TeamID:       m.TeamID,
		Status:       entities.RegistrationStatus(m.Status),
		Notes:        m.Notes,
		RegisteredAt: m.RegisteredAt,
	}
}

func (r *RegistrationRepository) toModel(e *entities.TeamRegistration) *models.TeamRegistration {
	m := &models.TeamRegistration{
		ID:           e.ID,
		HackathonID:  e.HackathonID,
		TeamID:       e.TeamID,
		Status:       string(e.Status),
		Notes:        e.Notes,
		RegisteredAt: e.RegisteredAt,
	}
	if m.RegisteredAt.IsZero() {
		m.RegisteredAt = time.Now()
	}
	return m
}
