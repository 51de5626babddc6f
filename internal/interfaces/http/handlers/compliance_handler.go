package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/internal/interfaces/http/middleware"
	"synnovator.backend/internal/interfaces/http/response"
	"synnovator.backend/internal/usecases"
)

type ComplianceService interface {
	CheckTeam(ctx context.Context, teamID uuid.UUID) ([]usecases.RuleCheckResult, error)
	ListRules(ctx context.Context, hackathonID uuid.UUID) ([]*entities.CompetitionRule, error)
	ListViolations(ctx context.Context, filter repositories.ViolationFilter, limit, offset int) ([]*entities.RuleViolation, int64, error)
	ReviewViolation(ctx context.Context, violationID, reviewerID uuid.UUID, confirm bool, actionTaken string) error
}

// ComplianceHandler handles rule compliance and violation endpoints
type ComplianceHandler struct {
	complianceUsecase ComplianceService
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(complianceUsecase ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceUsecase: complianceUsecase}
}

// CheckTeam evaluates every mandatory rule against a team
// POST /api/v1/teams/:id/compliance-check
func (h *ComplianceHandler) CheckTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid team ID"))
		return
	}

	results, err := h.complianceUsecase.CheckTeam(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ListRules lists the competition rules of a hackathon
// GET /api/v1/hackathons/:id/rules
func (h *ComplianceHandler) ListRules(c *gin.Context) {
	hackathonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	rules, err := h.complianceUsecase.ListRules(c.Request.Context(), hackathonID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rules": rules})
}

// ListViolations lists recorded rule violations
// GET /api/v1/violations
func (h *ComplianceHandler) ListViolations(c *gin.Context) {
	page, limit := pageParams(c)

	filter := repositories.ViolationFilter{
		Status: entities.ViolationStatus(c.Query("status")),
	}
	if v := c.Query("teamId"); v != "" {
		teamID, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid team ID"))
			return
		}
		filter.TeamID = &teamID
	}

	violations, total, err := h.complianceUsecase.ListViolations(c.Request.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "violations", violations, page, limit, total)
}

// ReviewViolation confirms or dismisses a pending violation
// POST /api/v1/violations/:id/review
func (h *ComplianceHandler) ReviewViolation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid violation ID"))
		return
	}

	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input struct {
		Confirm     *bool  `json:"confirm" binding:"required"`
		ActionTaken string `json:"actionTaken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.complianceUsecase.ReviewViolation(c.Request.Context(), id, reviewerID, *input.Confirm, input.ActionTaken); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Violation reviewed"})
}
