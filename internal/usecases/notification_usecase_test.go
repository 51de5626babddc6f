package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/usecases"
)

func TestNotificationUsecase_List_PassesUnreadFilter(t *testing.T) {
	repo := new(MockNotificationRepository)
	uc := usecases.NewNotificationUsecase(repo)

	recipientID := uuid.New()
	items := []*entities.Notification{
		{ID: uuid.New(), RecipientID: recipientID, Type: entities.NotificationRuleViolation},
	}
	repo.On("ListByRecipient", context.Background(), recipientID, true, 10, 0).Return(items, int64(1), nil).Once()

	got, total, err := uc.List(context.Background(), recipientID, true, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, items, got)
	repo.AssertExpectations(t)
}

func TestNotificationUsecase_MarkRead_ScopedToRecipient(t *testing.T) {
	repo := new(MockNotificationRepository)
	uc := usecases.NewNotificationUsecase(repo)

	id := uuid.New()
	recipientID := uuid.New()
	repo.On("MarkRead", context.Background(), id, recipientID).Return(nil).Once()

	require.NoError(t, uc.MarkRead(context.Background(), id, recipientID))

	repo.On("MarkRead", context.Background(), id, mock.AnythingOfType("uuid.UUID")).Return(domainerrors.ErrNotFound)
	assert.ErrorIs(t, uc.MarkRead(context.Background(), id, uuid.New()), domainerrors.ErrNotFound)
	repo.AssertExpectations(t)
}
