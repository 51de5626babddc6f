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

type RegistrationService interface {
	Register(ctx context.Context, hackathonID, callerID uuid.UUID, input *entities.RegisterTeamInput) (*entities.TeamRegistration, error)
	Review(ctx context.Context, registrationID uuid.UUID, approve bool) (*entities.TeamRegistration, error)
	Withdraw(ctx context.Context, registrationID, callerID uuid.UUID) error
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID, status entities.RegistrationStatus) ([]*entities.TeamRegistration, error)
}

// RegistrationHandler handles team registration endpoints
type RegistrationHandler struct {
	registrationUsecase RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationUsecase RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationUsecase: registrationUsecase}
}

// Register registers a team for a hackathon
// POST /api/v1/hackathons/:id/registrations
func (h *RegistrationHandler) Register(c *gin.Context) {
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

	var input entities.RegisterTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	registration, err := h.registrationUsecase.Register(c.Request.Context(), hackathonID, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"registration": registration})
}

// List lists a hackathon's registrations, optionally filtered by status
// GET /api/v1/hackathons/:id/registrations
func (h *RegistrationHandler) List(c *gin.Context) {
	hackathonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid hackathon ID"))
		return
	}

	status := entities.RegistrationStatus(c.Query("status"))

	registrations, err := h.registrationUsecase.ListByHackathon(c.Request.Context(), hackathonID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"registrations": registrations})
}

// Review approves or rejects a registration
// POST /api/v1/registrations/:id/review
func (h *RegistrationHandler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid registration ID"))
		return
	}

	var input struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	registration, err := h.registrationUsecase.Review(c.Request.Context(), id, *input.Approve)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"registration": registration})
}

// Withdraw withdraws a team's registration
// DELETE /api/v1/registrations/:id
func (h *RegistrationHandler) Withdraw(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid registration ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.registrationUsecase.Withdraw(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Registration withdrawn"})
}
