package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
)

type hackathonServiceStub struct {
	createFn     func(ctx context.Context, input *entities.CreateHackathonInput) (*entities.Hackathon, error)
	getFn        func(ctx context.Context, id uuid.UUID) (*entities.Hackathon, error)
	getBySlugFn  func(ctx context.Context, slug string) (*entities.Hackathon, error)
	listFn       func(ctx context.Context, filter repositories.HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error)
	updateFn     func(ctx context.Context, id uuid.UUID, input *entities.CreateHackathonInput) (*entities.Hackathon, error)
	transitionFn func(ctx context.Context, id uuid.UUID, next entities.HackathonStatus) (*entities.Hackathon, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	addPhaseFn   func(ctx context.Context, hackathonID uuid.UUID, phase *entities.Phase) (*entities.Phase, error)
	listPhasesFn func(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Phase, error)
	addPrizeFn   func(ctx context.Context, hackathonID uuid.UUID, prize *entities.Prize) (*entities.Prize, error)
	listPrizesFn func(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Prize, error)
}

func (s hackathonServiceStub) Create(ctx context.Context, input *entities.CreateHackathonInput) (*entities.Hackathon, error) {
	return s.createFn(ctx, input)
}
func (s hackathonServiceStub) Get(ctx context.Context, id uuid.UUID) (*entities.Hackathon, error) {
	return s.getFn(ctx, id)
}
func (s hackathonServiceStub) GetBySlug(ctx context.Context, slug string) (*entities.Hackathon, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s hackathonServiceStub) List(ctx context.Context, filter repositories.HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error) {
	return s.listFn(ctx, filter, limit, offset)
}
func (s hackathonServiceStub) Update(ctx context.Context, id uuid.UUID, input *entities.CreateHackathonInput) (*entities.Hackathon, error) {
	return s.updateFn(ctx, id, input)
}
func (s hackathonServiceStub) Transition(ctx context.Context, id uuid.UUID, next entities.HackathonStatus) (*entities.Hackathon, error) {
	return s.transitionFn(ctx, id, next)
}
func (s hackathonServiceStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s hackathonServiceStub) AddPhase(ctx context.Context, hackathonID uuid.UUID, phase *entities.Phase) (*entities.Phase, error) {
	return s.addPhaseFn(ctx, hackathonID, phase)
}
func (s hackathonServiceStub) ListPhases(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Phase, error) {
	return s.listPhasesFn(ctx, hackathonID)
}
func (s hackathonServiceStub) AddPrize(ctx context.Context, hackathonID uuid.UUID, prize *entities.Prize) (*entities.Prize, error) {
	return s.addPrizeFn(ctx, hackathonID, prize)
}
func (s hackathonServiceStub) ListPrizes(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Prize, error) {
	return s.listPrizesFn(ctx, hackathonID)
}

func TestHackathonHandler_SuccessAndErrorMappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hackathonID := uuid.New()

	service := hackathonServiceStub{
		createFn: func(_ context.Context, input *entities.CreateHackathonInput) (*entities.Hackathon, error) {
			if input.MinTeamSize > input.MaxTeamSize && input.MaxTeamSize > 0 {
				return nil, domainerrors.NewError("minimum team size cannot exceed maximum", domainerrors.ErrInvalidInput)
			}
			return &entities.Hackathon{ID: hackathonID, Title: input.Title, Slug: input.Slug}, nil
		},
		getFn: func(_ context.Context, id uuid.UUID) (*entities.Hackathon, error) {
			if id == hackathonID {
				return &entities.Hackathon{ID: id, Title: "Spring Hack"}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
		getBySlugFn: func(_ context.Context, slug string) (*entities.Hackathon, error) {
			if slug == "spring-hack" {
				return &entities.Hackathon{ID: hackathonID, Slug: slug}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
		listFn: func(_ context.Context, filter repositories.HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error) {
			if filter.Status != string(entities.HackathonStatusInProgress) {
				t.Fatalf("unexpected status filter %q", filter.Status)
			}
			return []*entities.Hackathon{{ID: hackathonID}}, 1, nil
		},
		transitionFn: func(_ context.Context, id uuid.UUID, next entities.HackathonStatus) (*entities.Hackathon, error) {
			if next == entities.HackathonStatusCompleted {
				return nil, domainerrors.ErrInvalidTransition
			}
			return &entities.Hackathon{ID: id, Status: next}, nil
		},
		addPhaseFn: func(_ context.Context, id uuid.UUID, phase *entities.Phase) (*entities.Phase, error) {
			phase.ID = uuid.New()
			phase.HackathonID = id
			return phase, nil
		},
		listPhasesFn: func(_ context.Context, id uuid.UUID) ([]*entities.Phase, error) {
			return []*entities.Phase{{ID: uuid.New(), HackathonID: id, Title: "Hacking"}}, nil
		},
		addPrizeFn: func(_ context.Context, id uuid.UUID, prize *entities.Prize) (*entities.Prize, error) {
			prize.ID = uuid.New()
			prize.HackathonID = id
			return prize, nil
		},
		listPrizesFn: func(_ context.Context, id uuid.UUID) ([]*entities.Prize, error) {
			return []*entities.Prize{{ID: uuid.New(), HackathonID: id, Rank: 1}}, nil
		},
	}

	h := NewHackathonHandler(service)
	r := gin.New()
	r.POST("/hackathons", h.Create)
	r.GET("/hackathons", h.List)
	r.GET("/hackathons/:id", h.Get)
	r.POST("/hackathons/:id/transition", h.Transition)
	r.POST("/hackathons/:id/phases", h.AddPhase)
	r.GET("/hackathons/:id/phases", h.ListPhases)
	r.POST("/hackathons/:id/prizes", h.AddPrize)
	r.GET("/hackathons/:id/prizes", h.ListPrizes)

	// Create success
	w := postJSON(t, r, "/hackathons", `{"title":"Spring Hack","slug":"spring-hack","minTeamSize":2,"maxTeamSize":5}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	// Invalid team sizes map to 400
	w = postJSON(t, r, "/hackathons", `{"title":"Spring Hack","slug":"spring-hack","minTeamSize":5,"maxTeamSize":2}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// Get by ID
	req := httptest.NewRequest(http.MethodGet, "/hackathons/"+hackathonID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Non-UUID path falls back to slug lookup
	req = httptest.NewRequest(http.MethodGet, "/hackathons/spring-hack", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown slug maps to 404
	req = httptest.NewRequest(http.MethodGet, "/hackathons/nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	// List with status filter
	req = httptest.NewRequest(http.MethodGet, "/hackathons?status=in_progress", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var listBody struct {
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("unmarshal list response: %v", err)
	}
	if listBody.Pagination.Total != 1 {
		t.Fatalf("expected total 1, got %d", listBody.Pagination.Total)
	}

	// Transition success
	w = postJSON(t, r, "/hackathons/"+hackathonID.String()+"/transition", `{"status":"registration_open"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Invalid transition maps to 422
	w = postJSON(t, r, "/hackathons/"+hackathonID.String()+"/transition", `{"status":"completed"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", w.Code, w.Body.String())
	}

	// Add phase
	start := time.Now().Format(time.RFC3339)
	end := time.Now().Add(time.Hour).Format(time.RFC3339)
	w = postJSON(t, r, "/hackathons/"+hackathonID.String()+"/phases", `{"title":"Hacking","startDate":"`+start+`","endDate":"`+end+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	// List phases
	req = httptest.NewRequest(http.MethodGet, "/hackathons/"+hackathonID.String()+"/phases", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Add prize
	w = postJSON(t, r, "/hackathons/"+hackathonID.String()+"/prizes", `{"title":"Grand Prize","rank":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	// List prizes
	req = httptest.NewRequest(http.MethodGet, "/hackathons/"+hackathonID.String()+"/prizes", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Bad hackathon ID on nested route
	w = postJSON(t, r, "/hackathons/not-a-uuid/transition", `{"status":"registration_open"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}
