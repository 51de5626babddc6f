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

type TeamService interface {
	Create(ctx context.Context, leaderID uuid.UUID, input *entities.CreateTeamInput) (*entities.Team, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Team, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error)
	Join(ctx context.Context, teamID, userID uuid.UUID, role entities.MemberRole, inviteCode string) (*entities.Team, error)
	RemoveMember(ctx context.Context, teamID, callerID, memberID uuid.UUID) error
	MarkReady(ctx context.Context, teamID, callerID uuid.UUID) (*entities.Team, error)
}

// TeamHandler handles team endpoints
type TeamHandler struct {
	teamUsecase TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamUsecase TeamService) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// Create creates a new team with the caller as leader
// POST /api/v1/teams
func (h *TeamHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"team": team})
}

// Get gets a team by ID
// GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	team, err := h.teamUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// List lists teams, filtered by hackathon or scoped to the caller
// GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	if hackathonIDStr := c.Query("hackathonId"); hackathonIDStr != "" {
		hackathonID, err := uuid.Parse(hackathonIDStr)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
			return
		}

		teams, err := h.teamUsecase.ListByHackathon(c.Request.Context(), hackathonID)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"teams": teams})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	teams, err := h.teamUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"teams": teams})
}

// Join adds the caller to a team using its invite code
// POST /api/v1/teams/:id/join
func (h *TeamHandler) Join(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input struct {
		Role       entities.MemberRole `json:"role" binding:"required"`
		InviteCode string              `json:"inviteCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.Join(c.Request.Context(), id, userID, input.Role, input.InviteCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// RemoveMember removes a member from a team
// DELETE /api/v1/teams/:id/members/:memberId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid member ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.teamUsecase.RemoveMember(c.Request.Context(), id, userID, memberID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Member removed"})
}

// MarkReady declares the caller's team ready to compete
// POST /api/v1/teams/:id/ready
func (h *TeamHandler) MarkReady(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	team, err := h.teamUsecase.MarkReady(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}
