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
)

type questServiceStub struct {
	createFn    func(ctx context.Context, input *entities.CreateQuestInput) (*entities.Quest, error)
	getFn       func(ctx context.Context, id uuid.UUID) (*entities.Quest, error)
	getBySlugFn func(ctx context.Context, slug string) (*entities.Quest, error)
	listFn      func(ctx context.Context, filter entities.QuestFilter, limit, offset int) ([]*entities.Quest, int64, error)
}

func (s questServiceStub) Create(ctx context.Context, input *entities.CreateQuestInput) (*entities.Quest, error) {
	return s.createFn(ctx, input)
}
func (s questServiceStub) Get(ctx context.Context, id uuid.UUID) (*entities.Quest, error) {
	return s.getFn(ctx, id)
}
func (s questServiceStub) GetBySlug(ctx context.Context, slug string) (*entities.Quest, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s questServiceStub) List(ctx context.Context, filter entities.QuestFilter, limit, offset int) ([]*entities.Quest, int64, error) {
	return s.listFn(ctx, filter, limit, offset)
}

func TestQuestHandler_SuccessAndErrorMappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	questID := uuid.New()

	service := questServiceStub{
		createFn: func(_ context.Context, input *entities.CreateQuestInput) (*entities.Quest, error) {
			if input.QuestType == entities.QuestType("arcane") {
				return nil, domainerrors.NewError("unknown quest type: arcane", domainerrors.ErrInvalidInput)
			}
			return &entities.Quest{ID: questID, Title: input.Title, IsActive: true}, nil
		},
		getFn: func(_ context.Context, id uuid.UUID) (*entities.Quest, error) {
			if id == questID {
				return &entities.Quest{ID: id}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
		getBySlugFn: func(_ context.Context, slug string) (*entities.Quest, error) {
			if slug == "build-a-bot" {
				return &entities.Quest{ID: questID, Slug: slug}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
		listFn: func(_ context.Context, filter entities.QuestFilter, limit, offset int) ([]*entities.Quest, int64, error) {
			if filter.Difficulty != "beginner" {
				t.Fatalf("unexpected difficulty filter %q", filter.Difficulty)
			}
			return []*entities.Quest{{ID: questID}}, 1, nil
		},
	}

	h := NewQuestHandler(service)
	r := gin.New()
	r.POST("/quests", h.Create)
	r.GET("/quests", h.List)
	r.GET("/quests/:id", h.Get)

	// Create success
	w := postJSON(t, r, "/quests", `{"title":"Build a Bot","slug":"build-a-bot","questType":"technical","difficulty":"beginner","xpReward":100}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown quest type maps to 400
	w = postJSON(t, r, "/quests", `{"title":"Build a Bot","slug":"build-a-bot","questType":"arcane","difficulty":"beginner"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// Get by ID
	req := httptest.NewRequest(http.MethodGet, "/quests/"+questID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Slug fallback
	req = httptest.NewRequest(http.MethodGet, "/quests/build-a-bot", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// List with filter
	req = httptest.NewRequest(http.MethodGet, "/quests?difficulty=beginner", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}
