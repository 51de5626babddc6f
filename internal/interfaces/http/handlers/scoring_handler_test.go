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

type scoringServiceStub struct {
	upsertFn      func(ctx context.Context, judgeID uuid.UUID, input *entities.UpsertJudgeScoreInput) (*entities.JudgeScore, error)
	listScoresFn  func(ctx context.Context, submissionID uuid.UUID) ([]*entities.JudgeScore, error)
	leaderboardFn func(ctx context.Context, hackathonID uuid.UUID, limit int) ([]*entities.LeaderboardEntry, error)
}

func (s scoringServiceStub) UpsertJudgeScore(ctx context.Context, judgeID uuid.UUID, input *entities.UpsertJudgeScoreInput) (*entities.JudgeScore, error) {
	return s.upsertFn(ctx, judgeID, input)
}
func (s scoringServiceStub) ListScores(ctx context.Context, submissionID uuid.UUID) ([]*entities.JudgeScore, error) {
	return s.listScoresFn(ctx, submissionID)
}
func (s scoringServiceStub) Leaderboard(ctx context.Context, hackathonID uuid.UUID, limit int) ([]*entities.LeaderboardEntry, error) {
	return s.leaderboardFn(ctx, hackathonID, limit)
}

func TestScoringHandler_SuccessAndErrorMappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	judgeID := uuid.New()
	submissionID := uuid.New()
	hackathonID := uuid.New()

	service := scoringServiceStub{
		upsertFn: func(_ context.Context, gotJudgeID uuid.UUID, input *entities.UpsertJudgeScoreInput) (*entities.JudgeScore, error) {
			if gotJudgeID != judgeID {
				t.Fatalf("expected judge %s, got %s", judgeID, gotJudgeID)
			}
			if input.Feedback == "conflict" {
				return nil, domainerrors.ErrConflict
			}
			return &entities.JudgeScore{ID: uuid.New(), SubmissionID: input.SubmissionID, JudgeID: gotJudgeID}, nil
		},
		listScoresFn: func(_ context.Context, id uuid.UUID) ([]*entities.JudgeScore, error) {
			if id != submissionID {
				return nil, domainerrors.ErrNotFound
			}
			return []*entities.JudgeScore{{ID: uuid.New(), SubmissionID: id}}, nil
		},
		leaderboardFn: func(_ context.Context, id uuid.UUID, limit int) ([]*entities.LeaderboardEntry, error) {
			if limit != 10 {
				t.Fatalf("expected limit 10, got %d", limit)
			}
			return []*entities.LeaderboardEntry{{TeamID: uuid.New(), Rank: 1, FinalScore: 87.5}}, nil
		},
	}

	h := NewScoringHandler(service)
	r := gin.New()
	withJudge := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, judgeID)
		c.Next()
	}
	r.PUT("/scores", withJudge, h.UpsertScore)
	r.GET("/submissions/:id/scores", h.ListScores)
	r.GET("/hackathons/:id/leaderboard", h.Leaderboard)

	// Upsert success
	req := httptest.NewRequest(http.MethodPut, "/scores", jsonBody(`{"submissionId":"`+submissionID.String()+`","technicalScore":80,"commercialScore":70,"operationalScore":60}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Concurrent upsert conflict maps to 409
	req = httptest.NewRequest(http.MethodPut, "/scores", jsonBody(`{"submissionId":"`+submissionID.String()+`","feedback":"conflict"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}

	// Score out of range maps to 400
	req = httptest.NewRequest(http.MethodPut, "/scores", jsonBody(`{"submissionId":"`+submissionID.String()+`","technicalScore":150}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// List scores
	req = httptest.NewRequest(http.MethodGet, "/submissions/"+submissionID.String()+"/scores", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// Unknown submission maps to 404
	req = httptest.NewRequest(http.MethodGet, "/submissions/"+uuid.New().String()+"/scores", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	// Leaderboard with limit
	req = httptest.NewRequest(http.MethodGet, "/hackathons/"+hackathonID.String()+"/leaderboard?limit=10", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}
