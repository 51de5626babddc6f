package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/interfaces/http/middleware"
)

type notificationServiceStub struct {
	listFn     func(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entities.Notification, int64, error)
	markReadFn func(ctx context.Context, id, recipientID uuid.UUID) error
}

func (s notificationServiceStub) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entities.Notification, int64, error) {
	return s.listFn(ctx, recipientID, unreadOnly, limit, offset)
}
func (s notificationServiceStub) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return s.markReadFn(ctx, id, recipientID)
}

func TestNotificationHandler_SuccessAndErrorMappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	notificationID := uuid.New()

	service := notificationServiceStub{
		listFn: func(_ context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entities.Notification, int64, error) {
			if recipientID != userID {
				t.Fatalf("expected recipient %s, got %s", userID, recipientID)
			}
			if !unreadOnly {
				t.Fatalf("expected unreadOnly filter")
			}
			return []*entities.Notification{{ID: notificationID, RecipientID: recipientID, Type: entities.NotificationTeamAdvancement}}, 1, nil
		},
		markReadFn: func(_ context.Context, id, recipientID uuid.UUID) error {
			if id != notificationID {
				return domainerrors.ErrNotFound
			}
			return nil
		},
	}

	h := NewNotificationHandler(service)
	r := gin.New()
	withUser := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
	r.GET("/notifications", withUser, h.List)
	r.POST("/notifications/:id/read", withUser, h.MarkRead)

	// List unread
	req := httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Mark read
	w = postJSON(t, r, "/notifications/"+notificationID.String()+"/read", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Someone else's notification maps to 404
	w = postJSON(t, r, "/notifications/"+uuid.New().String()+"/read", `{}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}
