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

type SubmissionService interface {
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateSubmissionInput) (*entities.Submission, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Submission, error)
	List(ctx context.Context, filter repositories.SubmissionFilter, limit, offset int) ([]*entities.Submission, int64, error)
	Submit(ctx context.Context, id, userID uuid.UUID) (*entities.Submission, error)
	Review(ctx context.Context, id, reviewerID uuid.UUID, input *entities.ReviewSubmissionInput) (*entities.Submission, error)
}

type EligibilityService interface {
	CanSubmit(ctx context.Context, hackathonID uuid.UUID, p entities.Participant) (*usecases.EligibilityDecision, error)
}

// SubmissionHandler handles submission endpoints
type SubmissionHandler struct {
	submissionUsecase  SubmissionService
	eligibilityUsecase EligibilityService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionUsecase SubmissionService, eligibilityUsecase EligibilityService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUsecase:  submissionUsecase,
		eligibilityUsecase: eligibilityUsecase,
	}
}

// Create creates a new draft submission
// POST /api/v1/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	submission, err := h.submissionUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": submission})
}

// Get gets a submission by ID
// GET /api/v1/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid submission ID"))
		return
	}

	submission, err := h.submissionUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// List lists submissions with optional filters
// GET /api/v1/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	filter := repositories.SubmissionFilter{
		Status: entities.VerificationStatus(c.Query("status")),
	}
	if v := c.Query("hackathonId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
			return
		}
		filter.HackathonID = &id
	}
	if v := c.Query("questId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid quest ID"))
			return
		}
		filter.QuestID = &id
	}
	if v := c.Query("teamId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid team ID"))
			return
		}
		filter.TeamID = &id
	}
	if v := c.Query("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid user ID"))
			return
		}
		filter.UserID = &id
	}

	submissions, total, err := h.submissionUsecase.List(c.Request.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "submissions", submissions, page, limit, total)
}

// Submit finalizes a draft submission
// POST /api/v1/submissions/:id/submit
func (h *SubmissionHandler) Submit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid submission ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	submission, err := h.submissionUsecase.Submit(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// Review records a judge's verification decision
// POST /api/v1/submissions/:id/review
func (h *SubmissionHandler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid submission ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.ReviewSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	submission, err := h.submissionUsecase.Review(c.Request.Context(), id, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// CheckEligibility answers whether the caller (or their team) may submit
// GET /api/v1/hackathons/:id/eligibility
func (h *SubmissionHandler) CheckEligibility(c *gin.Context) {
	hackathonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	participant := entities.UserParticipant(userID)
	if v := c.Query("teamId"); v != "" {
		teamID, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid team ID"))
			return
		}
		participant = entities.TeamParticipant(teamID)
	}

	decision, err := h.eligibilityUsecase.CanSubmit(c.Request.Context(), hackathonID, participant)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"eligibility": decision})
}
