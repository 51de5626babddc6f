package usecases

import (
	"context"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/pkg/utils"
)

// QuestUsecase manages skill-verification quests
type QuestUsecase struct {
	questRepo     repositories.QuestRepository
	hackathonRepo repositories.HackathonRepository
}

// NewQuestUsecase creates a new quest usecase
func NewQuestUsecase(questRepo repositories.QuestRepository, hackathonRepo repositories.HackathonRepository) *QuestUsecase {
	return &QuestUsecase{questRepo: questRepo, hackathonRepo: hackathonRepo}
}

// Create creates an active quest
func (u *QuestUsecase) Create(ctx context.Context, input *entities.CreateQuestInput) (*entities.Quest, error) {
	switch input.QuestType {
	case entities.QuestTypeTechnical, entities.QuestTypeCommercial, entities.QuestTypeOperational, entities.QuestTypeMixed:
	default:
		return nil, domainerrors.NewError("invalid quest type", domainerrors.ErrInvalidInput)
	}
	switch input.Difficulty {
	case entities.DifficultyBeginner, entities.DifficultyIntermediate, entities.DifficultyAdvanced, entities.DifficultyExpert:
	default:
		return nil, domainerrors.NewError("invalid difficulty", domainerrors.ErrInvalidInput)
	}
	if input.XPReward < 0 {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.HackathonID != nil {
		if _, err := u.hackathonRepo.GetByID(ctx, *input.HackathonID); err != nil {
			return nil, err
		}
	}

	quest := &entities.Quest{
		ID:                   utils.GenerateUUIDv7(),
		Title:                input.Title,
		Slug:                 input.Slug,
		Description:          input.Description,
		QuestType:            input.QuestType,
		Difficulty:           input.Difficulty,
		XPReward:             input.XPReward,
		EstimatedTimeMinutes: input.EstimatedTimeMinutes,
		HackathonID:          input.HackathonID,
		IsActive:             true,
		Tags:                 input.Tags,
	}
	if err := u.questRepo.Create(ctx, quest); err != nil {
		return nil, err
	}
	return quest, nil
}

// Get returns a quest by ID
func (u *QuestUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Quest, error) {
	return u.questRepo.GetByID(ctx, id)
}

// GetBySlug returns a quest by slug
func (u *QuestUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Quest, error) {
	return u.questRepo.GetBySlug(ctx, slug)
}

// List returns active quests matching the filter
func (u *QuestUsecase) List(ctx context.Context, filter entities.QuestFilter, limit, offset int) ([]*entities.Quest, int64, error) {
	return u.questRepo.List(ctx, filter, limit, offset)
}
