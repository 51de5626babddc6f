package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// HackathonStatus represents the lifecycle status of a hackathon
type HackathonStatus string

const (
	HackathonStatusDraft            HackathonStatus = "draft"
	HackathonStatusUpcoming         HackathonStatus = "upcoming"
	HackathonStatusRegistrationOpen HackathonStatus = "registration_open"
	HackathonStatusInProgress       HackathonStatus = "in_progress"
	HackathonStatusJudging          HackathonStatus = "judging"
	HackathonStatusCompleted        HackathonStatus = "completed"
	HackathonStatusArchived         HackathonStatus = "archived"
)

// SubmissionType controls who may submit to a hackathon
type SubmissionType string

const (
	SubmissionTypeIndividual SubmissionType = "individual"
	SubmissionTypeTeam       SubmissionType = "team"
	SubmissionTypeBoth       SubmissionType = "both"
)

// Hackathon represents a time-boxed competition event
type Hackathon struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Status      HackathonStatus `json:"status"`

	// Team configuration
	MinTeamSize   int      `json:"minTeamSize"`
	MaxTeamSize   int      `json:"maxTeamSize"`
	AllowSolo     bool     `json:"allowSolo"`
	RequiredRoles []string `json:"requiredRoles"`

	// Scoring configuration
	PassingScore float64 `json:"passingScore"`

	// Submission settings
	SubmissionType               SubmissionType `json:"submissionType"`
	MaxSubmissionsPerParticipant int            `json:"maxSubmissionsPerParticipant"`
	RequireRegistration          bool           `json:"requireRegistration"`
	RestrictToSubmissionPhase    bool           `json:"restrictToSubmissionPhase"`
	AllowLateSubmission          bool           `json:"allowLateSubmission"`
	AllowEditAfterSubmit         bool           `json:"allowEditAfterSubmit"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsRegistrationOpen reports whether the hackathon accepts team registrations.
func (h *Hackathon) IsRegistrationOpen() bool {
	return h.Status == HackathonStatusUpcoming || h.Status == HackathonStatusRegistrationOpen
}

// validStatusTransitions lists the allowed manual status moves for organizers.
var validStatusTransitions = map[HackathonStatus][]HackathonStatus{
	HackathonStatusDraft:            {HackathonStatusUpcoming, HackathonStatusArchived},
	HackathonStatusUpcoming:         {HackathonStatusRegistrationOpen, HackathonStatusArchived},
	HackathonStatusRegistrationOpen: {HackathonStatusInProgress, HackathonStatusArchived},
	HackathonStatusInProgress:       {HackathonStatusJudging, HackathonStatusArchived},
	HackathonStatusJudging:          {HackathonStatusCompleted, HackathonStatusArchived},
	HackathonStatusCompleted:        {HackathonStatusArchived},
}

// CanTransitionTo reports whether a status move is allowed.
func (h *Hackathon) CanTransitionTo(next HackathonStatus) bool {
	for _, s := range validStatusTransitions[h.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// Phase represents a named time window within a hackathon.
// Phases are ordered by (order, start date); the current phase is the first
// one whose interval contains now.
type Phase struct {
	ID          uuid.UUID `json:"id"`
	HackathonID uuid.UUID `json:"hackathonId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Order       int       `json:"order"`
}

// IsActive reports whether the phase interval contains the given instant.
func (p *Phase) IsActive(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// CurrentPhase returns the first active phase from a (order, start date)
// ordered slice, or nil when none is active. Overlapping phases are not
// disambiguated beyond first-match.
func CurrentPhase(phases []*Phase, now time.Time) *Phase {
	for _, p := range phases {
		if p.IsActive(now) {
			return p
		}
	}
	return nil
}

// Prize represents an award for hackathon winners
type Prize struct {
	ID            uuid.UUID    `json:"id"`
	HackathonID   uuid.UUID    `json:"hackathonId"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Rank          int          `json:"rank"`
	MonetaryValue null.Float64 `json:"monetaryValue,omitempty"`
	Benefits      []string     `json:"benefits"`
}

// CreateHackathonInput represents input for creating a hackathon
type CreateHackathonInput struct {
	Title                        string         `json:"title" binding:"required,min=3,max=200"`
	Slug                         string         `json:"slug" binding:"required"`
	Description                  string         `json:"description"`
	Tags                         []string       `json:"tags"`
	MinTeamSize                  int            `json:"minTeamSize"`
	MaxTeamSize                  int            `json:"maxTeamSize"`
	AllowSolo                    bool           `json:"allowSolo"`
	RequiredRoles                []string       `json:"requiredRoles"`
	PassingScore                 float64        `json:"passingScore"`
	SubmissionType               SubmissionType `json:"submissionType"`
	MaxSubmissionsPerParticipant int            `json:"maxSubmissionsPerParticipant"`
	RequireRegistration          *bool          `json:"requireRegistration"`
	RestrictToSubmissionPhase    *bool          `json:"restrictToSubmissionPhase"`
	AllowLateSubmission          bool           `json:"allowLateSubmission"`
	AllowEditAfterSubmit         *bool          `json:"allowEditAfterSubmit"`
}
