package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
)

func TestQuestRepository_CreateAndFilters(t *testing.T) {
	db := newTestDB(t)
	createQuestTable(t, db)
	repo := NewQuestRepository(db)
	ctx := context.Background()

	q1 := &entities.Quest{
		ID:         uuid.New(),
		Title:      "Build a REST API",
		Slug:       "build-rest-api",
		QuestType:  entities.QuestTypeTechnical,
		Difficulty: entities.DifficultyIntermediate,
		XPReward:   100,
		Tags:       []string{"go", "api"},
		IsActive:   true,
	}
	q2 := &entities.Quest{
		ID:         uuid.New(),
		Title:      "Pitch deck basics",
		Slug:       "pitch-deck-basics",
		QuestType:  entities.QuestTypeCommercial,
		Difficulty: entities.DifficultyBeginner,
		XPReward:   50,
		IsActive:   true,
	}
	inactive := &entities.Quest{
		ID:         uuid.New(),
		Title:      "Retired quest",
		Slug:       "retired-quest",
		QuestType:  entities.QuestTypeMixed,
		Difficulty: entities.DifficultyExpert,
		IsActive:   false,
	}
	require.NoError(t, repo.Create(ctx, q1))
	require.NoError(t, repo.Create(ctx, q2))
	require.NoError(t, repo.Create(ctx, inactive))

	dup := &entities.Quest{ID: uuid.New(), Title: "Dup", Slug: "build-rest-api", IsActive: true}
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrAlreadyExists)

	got, err := repo.GetBySlug(ctx, "build-rest-api")
	require.NoError(t, err)
	require.Equal(t, q1.ID, got.ID)
	require.Equal(t, []string{"go", "api"}, got.Tags)

	items, total, err := repo.List(ctx, entities.QuestFilter{}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total, "inactive quests stay hidden")

	items, total, err = repo.List(ctx, entities.QuestFilter{QuestType: "technical"}, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, q1.ID, items[0].ID)

	items, _, err = repo.List(ctx, entities.QuestFilter{XPMin: 60}, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, q1.ID, items[0].ID)

	items, _, err = repo.List(ctx, entities.QuestFilter{Tag: "api"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
