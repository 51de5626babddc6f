package entities

import (
	"time"

	"github.com/google/uuid"
)

// AdvancementDecision records whether a team moved on or was cut
type AdvancementDecision string

const (
	DecisionAdvanced   AdvancementDecision = "advanced"
	DecisionEliminated AdvancementDecision = "eliminated"
)

// AdvancementLog is the audit trail for judging decisions on a team
type AdvancementLog struct {
	ID          uuid.UUID           `json:"id"`
	TeamID      uuid.UUID           `json:"teamId"`
	FromPhaseID *uuid.UUID          `json:"fromPhaseId,omitempty"`
	ToPhaseID   *uuid.UUID          `json:"toPhaseId,omitempty"`
	Decision    AdvancementDecision `json:"decision"`
	DecidedBy   *uuid.UUID          `json:"decidedBy,omitempty"`
	Notes       string              `json:"notes"`
	DecidedAt   time.Time           `json:"decidedAt"`
}

// AdvanceTeamInput represents an advancement decision request
type AdvanceTeamInput struct {
	ToPhaseID *uuid.UUID `json:"toPhaseId"`
	Notes     string     `json:"notes"`
}

// EliminateTeamInput represents an elimination decision request
type EliminateTeamInput struct {
	Reason string `json:"reason" binding:"required"`
}
