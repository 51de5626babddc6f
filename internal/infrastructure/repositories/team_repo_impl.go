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

// TeamRepository implements team and membership data operations
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a team by ID with its members loaded
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var m models.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	team := r.toEntity(&m)
	members, err := r.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}

// GetBySlug gets a team by its slug within one hackathon
func (r *TeamRepository) GetBySlug(ctx context.Context, hackathonID uuid.UUID, slug string) (*entities.Team, error) {
	var m models.Team
	if err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND slug = ?", hackathonID, slug).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	team := r.toEntity(&m)
	members, err := r.ListMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}

// ListByHackathon returns a hackathon's teams
func (r *TeamRepository) ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Team, error) {
	var ms []models.Team
	if err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// ListByUser returns the teams the user belongs to, optionally narrowed to
// one hackathon
func (r *TeamRepository) ListByUser(ctx context.Context, userID uuid.UUID, hackathonID *uuid.UUID) ([]*entities.Team, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID)
	if hackathonID != nil {
		query = query.Where("teams.hackathon_id = ?", *hackathonID)
	}

	var ms []models.Team
	if err := query.Order("teams.created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// UpdateStatus moves a team to the given status; reason is recorded for
// elimination and disqualification
func (r *TeamRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TeamStatus, reason string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if reason != "" {
		updates["elimination_reason"] = reason
	}

	result := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SaveScores persists the aggregate score fields
func (r *TeamRepository) SaveScores(ctx context.Context, team *entities.Team) error {
	result := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", team.ID).
		Updates(map[string]interface{}{
			"technical_score":   team.TechnicalScore,
			"commercial_score":  team.CommercialScore,
			"operational_score": team.OperationalScore,
			"final_score":       team.FinalScore,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// leaderboardStatuses are the team states that appear on a leaderboard.
var leaderboardStatuses = []string{
	string(entities.TeamStatusSubmitted),
	string(entities.TeamStatusVerified),
	string(entities.TeamStatusAdvanced),
}

// Leaderboard returns ranked teams for a hackathon ordered by final score
// descending
func (r *TeamRepository) Leaderboard(ctx context.Context, hackathonID uuid.UUID, limit int) ([]*entities.LeaderboardEntry, error) {
	var ms []models.Team
	query := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND status IN ?", hackathonID, leaderboardStatuses).
		Order("final_score DESC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	entries := make([]*entities.LeaderboardEntry, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		entries = append(entries, &entities.LeaderboardEntry{
			TeamID:     m.ID,
			TeamName:   m.Name,
			Status:     entities.TeamStatus(m.Status),
			FinalScore: m.FinalScore,
			Rank:       i + 1,
		})
	}
	return entries, nil
}

// AddMember adds a user to a team
func (r *TeamRepository) AddMember(ctx context.Context, member *entities.TeamMember) error {
	m := &models.TeamMember{
		ID:       member.ID,
		TeamID:   member.TeamID,
		UserID:   member.UserID,
		Role:     string(member.Role),
		IsLeader: member.IsLeader,
		JoinedAt: member.JoinedAt,
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	member.ID = m.ID
	member.JoinedAt = m.JoinedAt
	return nil
}

// RemoveMember removes a user from a team
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListMembers returns a team's memberships ordered by join time
func (r *TeamRepository) ListMembers(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("joined_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.TeamMember{
			ID:       m.ID,
			TeamID:   m.TeamID,
			UserID:   m.UserID,
			Role:     entities.MemberRole(m.Role),
			IsLeader: m.IsLeader,
			JoinedAt: m.JoinedAt,
		})
	}
	return items, nil
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	return &entities.Team{
		ID:                m.ID,
		HackathonID:       m.HackathonID,
		Name:              m.Name,
		Slug:              m.Slug,
		Tagline:           m.Tagline,
		InviteCode:        m.InviteCode,
		Status:            entities.TeamStatus(m.Status),
		TechnicalScore:    m.TechnicalScore,
		CommercialScore:   m.CommercialScore,
		OperationalScore:  m.OperationalScore,
		FinalScore:        m.FinalScore,
		IsSeekingMembers:  m.IsSeekingMembers,
		EliminationReason: m.EliminationReason,
		CurrentRound:      m.CurrentRound,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:                e.ID,
		HackathonID:       e.HackathonID,
		Name:              e.Name,
		Slug:              e.Slug,
		Tagline:           e.Tagline,
		InviteCode:        e.InviteCode,
		Status:            string(e.Status),
		TechnicalScore:    e.TechnicalScore,
		CommercialScore:   e.CommercialScore,
		OperationalScore:  e.OperationalScore,
		FinalScore:        e.FinalScore,
		IsSeekingMembers:  e.IsSeekingMembers,
		EliminationReason: e.EliminationReason,
		CurrentRound:      e.CurrentRound,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
