package entities

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus represents a registration's review state
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusApproved  RegistrationStatus = "approved"
	RegistrationStatusRejected  RegistrationStatus = "rejected"
	RegistrationStatusWithdrawn RegistrationStatus = "withdrawn"
)

// TeamRegistration links a team to a hackathon it registered for.
// Unique per (hackathon, team).
type TeamRegistration struct {
	ID           uuid.UUID          `json:"id"`
	HackathonID  uuid.UUID          `json:"hackathonId"`
	TeamID       uuid.UUID          `json:"teamId"`
	Status       RegistrationStatus `json:"status"`
	Notes        string             `json:"notes"`
	RegisteredAt time.Time          `json:"registeredAt"`
}

// RegisterTeamInput represents input for registering a team
type RegisterTeamInput struct {
	TeamID uuid.UUID `json:"teamId" binding:"required"`
	Notes  string    `json:"notes"`
}
