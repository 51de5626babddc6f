package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/internal/interfaces/http/response"
	"synnovator.backend/pkg/utils"
)

type HackathonService interface {
	Create(ctx context.Context, input *entities.CreateHackathonInput) (*entities.Hackathon, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Hackathon, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Hackathon, error)
	List(ctx context.Context, filter repositories.HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.CreateHackathonInput) (*entities.Hackathon, error)
	Transition(ctx context.Context, id uuid.UUID, next entities.HackathonStatus) (*entities.Hackathon, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddPhase(ctx context.Context, hackathonID uuid.UUID, phase *entities.Phase) (*entities.Phase, error)
	ListPhases(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Phase, error)
	AddPrize(ctx context.Context, hackathonID uuid.UUID, prize *entities.Prize) (*entities.Prize, error)
	ListPrizes(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Prize, error)
}

// HackathonHandler handles hackathon endpoints
type HackathonHandler struct {
	hackathonUsecase HackathonService
}

// NewHackathonHandler creates a new hackathon handler
func NewHackathonHandler(hackathonUsecase HackathonService) *HackathonHandler {
	return &HackathonHandler{hackathonUsecase: hackathonUsecase}
}

// Create creates a new hackathon
// POST /api/v1/hackathons
func (h *HackathonHandler) Create(c *gin.Context) {
	var input entities.CreateHackathonInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	hackathon, err := h.hackathonUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hackathon": hackathon})
}

// Get gets a hackathon by ID or slug
// GET /api/v1/hackathons/:id
func (h *HackathonHandler) Get(c *gin.Context) {
	idStr := c.Param("id")

	var hackathon *entities.Hackathon
	var err error
	if id, parseErr := uuid.Parse(idStr); parseErr == nil {
		hackathon, err = h.hackathonUsecase.Get(c.Request.Context(), id)
	} else {
		hackathon, err = h.hackathonUsecase.GetBySlug(c.Request.Context(), idStr)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hackathon": hackathon})
}

// List lists hackathons with optional status and tag filters
// GET /api/v1/hackathons
func (h *HackathonHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	filter := repositories.HackathonFilter{
		Status: c.Query("status"),
		Tag:    c.Query("tag"),
	}

	hackathons, total, err := h.hackathonUsecase.List(c.Request.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "hackathons", hackathons, page, limit, total)
}

// Update updates a hackathon's settings
// PUT /api/v1/hackathons/:id
func (h *HackathonHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	var input entities.CreateHackathonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	hackathon, err := h.hackathonUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hackathon": hackathon})
}

// Transition moves a hackathon to the next lifecycle status
// POST /api/v1/hackathons/:id/transition
func (h *HackathonHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	hackathon, err := h.hackathonUsecase.Transition(c.Request.Context(), id, entities.HackathonStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hackathon": hackathon})
}

// Delete removes a hackathon
// DELETE /api/v1/hackathons/:id
func (h *HackathonHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	if err := h.hackathonUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Hackathon deleted"})
}

// AddPhase adds a timed phase to a hackathon
// POST /api/v1/hackathons/:id/phases
func (h *HackathonHandler) AddPhase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	var phase entities.Phase
	if err := c.ShouldBindJSON(&phase); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	created, err := h.hackathonUsecase.AddPhase(c.Request.Context(), id, &phase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"phase": created})
}

// ListPhases lists a hackathon's phases
// GET /api/v1/hackathons/:id/phases
func (h *HackathonHandler) ListPhases(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	phases, err := h.hackathonUsecase.ListPhases(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"phases": phases})
}

// AddPrize adds a prize to a hackathon
// POST /api/v1/hackathons/:id/prizes
func (h *HackathonHandler) AddPrize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	var prize entities.Prize
	if err := c.ShouldBindJSON(&prize); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	created, err := h.hackathonUsecase.AddPrize(c.Request.Context(), id, &prize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"prize": created})
}

// ListPrizes lists a hackathon's prizes
// GET /api/v1/hackathons/:id/prizes
func (h *HackathonHandler) ListPrizes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	prizes, err := h.hackathonUsecase.ListPrizes(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"prizes": prizes})
}

// pageParams reads and clamps page/limit query parameters
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	params := utils.GetPaginationParams(page, limit)
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}
	return params.Page, params.Limit
}
