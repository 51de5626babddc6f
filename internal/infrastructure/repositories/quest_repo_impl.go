package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/infrastructure/models"
)

// QuestRepository implements quest data operations
type QuestRepository struct {
	db *gorm.DB
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db *gorm.DB) *QuestRepository {
	return &QuestRepository{db: db}
}

// Create creates a quest
func (r *QuestRepository) Create(ctx context.Context, quest *entities.Quest) error {
	m := r.toModel(quest)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	quest.ID = m.ID
	quest.CreatedAt = m.CreatedAt
	quest.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a quest by ID
func (r *QuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Quest, error) {
	var m models.Quest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetBySlug gets a quest by slug
func (r *QuestRepository) GetBySlug(ctx context.Context, slug string) (*entities.Quest, error) {
	var m models.Quest
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns active quests matching the filter with pagination
func (r *QuestRepository) List(ctx context.Context, filter entities.QuestFilter, limit, offset int) ([]*entities.Quest, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Quest{}).Where("is_active = ?", true)
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.QuestType != "" {
		query = query.Where("quest_type = ?", filter.QuestType)
	}
	if filter.Tag != "" {
		query = query.Where("tags LIKE ?", "%\""+filter.Tag+"\"%")
	}
	if filter.XPMin > 0 {
		query = query.Where("xp_reward >= ?", filter.XPMin)
	}
	if filter.XPMax > 0 {
		query = query.Where("xp_reward <= ?", filter.XPMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Quest
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Quest, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *QuestRepository) toEntity(m *models.Quest) *entities.Quest {
	return &entities.Quest{
		ID:                   m.ID,
		Title:                m.Title,
		Slug:                 m.Slug,
		Description:          m.Description,
		QuestType:            entities.QuestType(m.QuestType),
		Difficulty:           entities.QuestDifficulty(m.Difficulty),
		XPReward:             m.XPReward,
		EstimatedTimeMinutes: m.EstimatedTimeMinutes,
		HackathonID:          m.HackathonID,
		IsActive:             m.IsActive,
		Tags:                 []string(m.Tags),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func (r *QuestRepository) toModel(e *entities.Quest) *models.Quest {
	return &models.Quest{
		ID:                   e.ID,
		HackathonID:          e.HackathonID,
		Title:                e.Title,
		Slug:                 e.Slug,
		Description:          e.Description,
		QuestType:            string(e.QuestType),
		Difficulty:           string(e.Difficulty),
		XPReward:             e.XPReward,
		EstimatedTimeMinutes: e.EstimatedTimeMinutes,
		Tags:                 models.StringSlice(e.Tags),
		IsActive:             e.IsActive,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
