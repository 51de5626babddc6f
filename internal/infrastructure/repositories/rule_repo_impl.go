package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	drepos "synnovator.backend/internal/domain/repositories"
	"synnovator.backend/internal/infrastructure/models"
)

// RuleRepository implements competition rule data operations
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create creates a competition rule
func (r *RuleRepository) Create(ctx context.Context, rule *entities.CompetitionRule) error {
	m, err := r.toModel(rule)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	rule.ID = m.ID
	return nil
}

// GetByID gets a rule by ID
func (r *RuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CompetitionRule, error) {
	var m models.CompetitionRule
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// ListByHackathon returns a hackathon's rules ordered by display order
func (r *RuleRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*entities.CompetitionRule, error) {
	var ms []models.CompetitionRule
	if err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("display_order ASC, created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

// ListMandatory returns mandatory rules for hackathons in the given statuses;
// the compliance sweep walks these
func (r *RuleRepository) ListMandatory(ctx context.Context, statuses []entities.HackathonStatus) ([]*entities.CompetitionRule, error) {
	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}

	var ms []models.CompetitionRule
	if err := r.db.WithContext(ctx).
		Joins("JOIN hackathons ON hackathons.id = competition_rules.hackathon_id").
		Where("competition_rules.is_mandatory = ? AND hackathons.status IN ?", true, raw).
		Order("competition_rules.hackathon_id, competition_rules.display_order ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

func (r *RuleRepository) toEntities(ms []models.CompetitionRule) ([]*entities.CompetitionRule, error) {
	items := make([]*entities.CompetitionRule, 0, len(ms))
	for i := range ms {
		e, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func (r *RuleRepository) toEntity(m *models.CompetitionRule) (*entities.CompetitionRule, error) {
	var def entities.RuleDefinition
	if m.Definition != "" {
		if err := json.Unmarshal([]byte(m.Definition), &def); err != nil {
			return nil, err
		}
	}
	return &entities.CompetitionRule{
		ID:          m.ID,
		HackathonID: m.HackathonID,
		RuleType:    entities.RuleType(m.RuleType),
		Title:       m.Title,
		Description: m.Description,
		Definition:  def,
		IsMandatory: m.IsMandatory,
		Penalty:     entities.RulePenalty(m.Penalty),
		Order:       m.Order,
	}, nil
}

func (r *RuleRepository) toModel(e *entities.CompetitionRule) (*models.CompetitionRule, error) {
	def, err := json.Marshal(e.Definition)
	if err != nil {
		return nil, err
	}
	return &models.CompetitionRule{
		ID:          e.ID,
		HackathonID: e.HackathonID,
		RuleType:    string(e.RuleType),
		Title:       e.Title,
		Description: e.Description,
		Definition:  string(def),
		IsMandatory: e.IsMandatory,
		Penalty:     string(e.Penalty),
		Order:       e.Order,
	}, nil
}

// ViolationRepository implements rule violation data operations
type ViolationRepository struct {
	db *gorm.DB
}

// NewViolationRepository creates a new violation repository
func NewViolationRepository(db *gorm.DB) *ViolationRepository {
	return &ViolationRepository{db: db}
}

// Create records a violation
func (r *ViolationRepository) Create(ctx context.Context, v *entities.RuleViolation) error {
	m := &models.RuleViolation{
		ID:              v.ID,
		TeamID:          v.TeamID,
		RuleID:          v.RuleID,
		DetectionMethod: string(v.DetectionMethod),
		Description:     v.Description,
		Status:          string(v.Status),
		DetectedAt:      v.DetectedAt,
	}
	if m.Status == "" {
		m.Status = string(entities.ViolationStatusPending)
	}
	if m.DetectedAt.IsZero() {
		m.DetectedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	v.ID = m.ID
	v.DetectedAt = m.DetectedAt
	return nil
}

// GetByID gets a violation by ID
func (r *ViolationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RuleViolation, error) {
	var m models.RuleViolation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.RuleViolation{
		ID:              m.ID,
		TeamID:          m.TeamID,
		RuleID:          m.RuleID,
		DetectionMethod: entities.ViolationDetection(m.DetectionMethod),
		Description:     m.Description,
		Status:          entities.ViolationStatus(m.Status),
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      m.ReviewedAt,
		ActionTaken:     m.ActionTaken,
		DetectedAt:      m.DetectedAt,
	}, nil
}

// List returns violations matching the filter with pagination, newest first
func (r *ViolationRepository) List(ctx context.Context, filter drepos.ViolationFilter, limit, offset int) ([]*entities.RuleViolation, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.RuleViolation{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.RuleViolation
	if err := query.
		Order("detected_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.RuleViolation, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.RuleViolation{
			ID:              m.ID,
			TeamID:          m.TeamID,
			RuleID:          m.RuleID,
			DetectionMethod: entities.ViolationDetection(m.DetectionMethod),
			Description:     m.Description,
			Status:          entities.ViolationStatus(m.Status),
			ReviewedBy:      m.ReviewedBy,
			ReviewedAt:      m.ReviewedAt,
			ActionTaken:     m.ActionTaken,
			DetectedAt:      m.DetectedAt,
		})
	}
	return items, total, nil
}

// HasOpen reports whether a pending or confirmed violation of the rule
// already exists for the team
func (r *ViolationRepository) HasOpen(ctx context.Context, teamID, ruleID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RuleViolation{}).
		Where("team_id = ? AND rule_id = ? AND status IN ?", teamID, ruleID,
			[]string{string(entities.ViolationStatusPending), string(entities.ViolationStatusConfirmed)}).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus resolves a violation review
func (r *ViolationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ViolationStatus, reviewedBy uuid.UUID, actionTaken string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.RuleViolation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       string(status),
			"reviewed_by":  reviewedBy,
			"reviewed_at":  now,
			"action_taken": actionTaken,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
