package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/interfaces/http/middleware"
	"synnovator.backend/internal/interfaces/http/response"
)

type AdvancementService interface {
	Advance(ctx context.Context, teamID, judgeID uuid.UUID, input *entities.AdvanceTeamInput) (*entities.Team, error)
	Eliminate(ctx context.Context, teamID, judgeID uuid.UUID, input *entities.EliminateTeamInput) (*entities.Team, error)
	History(ctx context.Context, teamID uuid.UUID) ([]*entities.AdvancementLog, error)
}

// AdvancementHandler handles advancement and elimination endpoints
type AdvancementHandler struct {
	advancementUsecase AdvancementService
}

// NewAdvancementHandler creates a new advancement handler
func NewAdvancementHandler(advancementUsecase AdvancementService) *AdvancementHandler {
	return &AdvancementHandler{advancementUsecase: advancementUsecase}
}

// Advance advances a team to the next round
// POST /api/v1/teams/:id/advance
func (h *AdvancementHandler) Advance(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	judgeID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.AdvanceTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.advancementUsecase.Advance(c.Request.Context(), teamID, judgeID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// Eliminate eliminates a team from the competition
// POST /api/v1/teams/:id/eliminate
func (h *AdvancementHandler) Eliminate(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	judgeID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.EliminateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.advancementUsecase.Eliminate(c.Request.Context(), teamID, judgeID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// History lists a team's advancement decisions
// GET /api/v1/teams/:id/advancements
func (h *AdvancementHandler) History(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	logs, err := h.advancementUsecase.History(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"advancements": logs})
}
