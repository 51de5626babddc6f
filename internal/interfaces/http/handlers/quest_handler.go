package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	domainerrors "synnovator.backend/internal/domain/errors"
	"synnovator.backend/internal/interfaces/http/response"
)

type QuestService interface {
	Create(ctx context.Context, input *entities.CreateQuestInput) (*entities.Quest, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Quest, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Quest, error)
	List(ctx context.Context, filter entities.QuestFilter, limit, offset int) ([]*entities.Quest, int64, error)
}

// QuestHandler handles quest endpoints
type QuestHandler struct {
	questUsecase QuestService
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(questUsecase QuestService) *QuestHandler {
	return &QuestHandler{questUsecase: questUsecase}
}

// Create creates a new quest
// POST /api/v1/quests
func (h *QuestHandler) Create(c *gin.Context) {
	var input entities.CreateQuestInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	quest, err := h.questUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quest": quest})
}

// Get gets a quest by ID or slug
// GET /api/v1/quests/:id
func (h *QuestHandler) Get(c *gin.Context) {
	idStr := c.Param("id")

	var quest *entities.Quest
	var err error
	if id, parseErr := uuid.Parse(idStr); parseErr == nil {
		quest, err = h.questUsecase.Get(c.Request.Context(), id)
	} else {
		quest, err = h.questUsecase.GetBySlug(c.Request.Context(), idStr)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quest": quest})
}

// List lists quests with optional filters
// GET /api/v1/quests
func (h *QuestHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	var filter entities.QuestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	quests, total, err := h.questUsecase.List(c.Request.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, "quests", quests, page, limit, total)
}
