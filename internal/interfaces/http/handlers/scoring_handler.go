package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/interfaces/http/middleware"
	"synnovator.backend/internal/interfaces/http/response"
)

type ScoringService interface {
	UpsertJudgeScore(ctx context.Context, judgeID uuid.UUID, input *entities.UpsertJudgeScoreInput) (*entities.JudgeScore, error)
	ListScores(ctx context.Context, submissionID uuid.UUID) ([]*entities.JudgeScore, error)
	Leaderboard(ctx context.Context, hackathonID uuid.UUID, limit int) ([]*entities.LeaderboardEntry, error)
}

// ScoringHandler handles judge scoring and leaderboard endpoints
type ScoringHandler struct {
	scoringUsecase ScoringService
}

// NewScoringHandler creates a new scoring handler
func NewScoringHandler(scoringUsecase ScoringService) *ScoringHandler {
	return &ScoringHandler{scoringUsecase: scoringUsecase}
}

// UpsertScore records or updates the caller's score for a submission
// PUT /api/v1/scores
func (h *ScoringHandler) UpsertScore(c *gin.Context) {
	judgeID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.UpsertJudgeScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	score, err := h.scoringUsecase.UpsertJudgeScore(c.Request.Context(), judgeID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"score": score})
}

// ListScores lists all judge scores for a submission
// GET /api/v1/submissions/:id/scores
func (h *ScoringHandler) ListScores(c *gin.Context) {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid submission ID"))
		return
	}

	scores, err := h.scoringUsecase.ListScores(c.Request.Context(), submissionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"scores": scores})
}

// Leaderboard returns ranked teams for a hackathon
// GET /api/v1/hackathons/:id/leaderboard
func (h *ScoringHandler) Leaderboard(c *gin.Context) {
	hackathonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit < 0 || limit > 100 {
		limit = 0
	}

	entries, err := h.scoringUsecase.Leaderboard(c.Request.Context(), hackathonID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaderboard": entries})
}
