package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/infrastructure/models"
)

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a notification
func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	m := &models.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		IsRead:      n.IsRead,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

// ListByRecipient returns a user's notifications, newest first
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entities.Notification, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Notification
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Notification, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.Notification{
			ID:          m.ID,
			RecipientID: m.RecipientID,
			Type:        entities.NotificationType(m.Type),
			Title:       m.Title,
			Message:     m.Message,
			IsRead:      m.IsRead,
			CreatedAt:   m.CreatedAt,
		})
	}
	return items, total, nil
}

// MarkRead marks one of the recipient's notifications as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AdvancementRepository implements the advancement audit trail
type AdvancementRepository struct {
	db *gorm.DB
}

// NewAdvancementRepository creates a new advancement repository
func NewAdvancementRepository(db *gorm.DB) *AdvancementRepository {
	return &AdvancementRepository{db: db}
}

// Create records an advancement decision
func (r *AdvancementRepository) Create(ctx context.Context, log *entities.AdvancementLog) error {
	m := &models.AdvancementLog{
		ID:          log.ID,
		TeamID:      log.TeamID,
		FromPhaseID: log.FromPhaseID,
		ToPhaseID:   log.ToPhaseID,
		Decision:    string(log.Decision),
		DecidedBy:   log.DecidedBy,
		Notes:       log.Notes,
		DecidedAt:   log.DecidedAt,
	}
	if m.DecidedAt.IsZero() {
		m.DecidedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.ID = m.ID
	log.DecidedAt = m.DecidedAt
	return nil
}

// ListByTeam returns a team's advancement history, newest first
func (r *AdvancementRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.AdvancementLog, error) {
	var ms []models.AdvancementLog
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("decided_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.AdvancementLog, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.AdvancementLog{
			ID:          m.ID,
			TeamID:      m.TeamID,
			FromPhaseID: m.FromPhaseID,
			ToPhaseID:   m.ToPhaseID,
			Decision:    entities.AdvancementDecision(m.Decision),
			DecidedBy:   m.DecidedBy,
			Notes:       m.Notes,
			DecidedAt:   m.DecidedAt,
		})
	}
	return items, nil
}
