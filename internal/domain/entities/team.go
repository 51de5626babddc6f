package entities

import (
	"time"

	"github.com/google/uuid"
)

// TeamStatus represents a team's lifecycle within a hackathon
type TeamStatus string

const (
	TeamStatusForming      TeamStatus = "forming"
	TeamStatusReady        TeamStatus = "ready"
	TeamStatusSubmitted    TeamStatus = "submitted"
	TeamStatusVerified     TeamStatus = "verified"
	TeamStatusAdvanced     TeamStatus = "advanced"
	TeamStatusEliminated   TeamStatus = "eliminated"
	TeamStatusDisqualified TeamStatus = "disqualified"
)

// MemberRole represents a team member's role tag
type MemberRole string

const (
	MemberRoleHacker  MemberRole = "hacker"
	MemberRoleHipster MemberRole = "hipster"
	MemberRoleHustler MemberRole = "hustler"
	MemberRoleMentor  MemberRole = "mentor"
)

// ValidMemberRole reports whether the given role tag is recognised.
func ValidMemberRole(role MemberRole) bool {
	switch role {
	case MemberRoleHacker, MemberRoleHipster, MemberRoleHustler, MemberRoleMentor:
		return true
	}
	return false
}

// Team represents a competing group of users within one hackathon
type Team struct {
	ID          uuid.UUID  `json:"id"`
	HackathonID uuid.UUID  `json:"hackathonId"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Tagline     string     `json:"tagline"`
	InviteCode  string     `json:"-"`
	Status      TeamStatus `json:"status"`

	// Aggregate scores maintained by the scoring usecase
	TechnicalScore   float64 `json:"technicalScore"`
	CommercialScore  float64 `json:"commercialScore"`
	OperationalScore float64 `json:"operationalScore"`
	FinalScore       float64 `json:"finalScore"`

	IsSeekingMembers  bool   `json:"isSeekingMembers"`
	EliminationReason string `json:"eliminationReason,omitempty"`
	CurrentRound      int    `json:"currentRound"`

	Members []*TeamMember `json:"members,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMember is the (team, user) membership with role and leadership
type TeamMember struct {
	ID       uuid.UUID  `json:"id"`
	TeamID   uuid.UUID  `json:"teamId"`
	UserID   uuid.UUID  `json:"userId"`
	Role     MemberRole `json:"role"`
	IsLeader bool       `json:"isLeader"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// Leader returns the team leader membership, or nil if none is set.
func (t *Team) Leader() *TeamMember {
	for _, m := range t.Members {
		if m.IsLeader {
			return m
		}
	}
	return nil
}

// RoleSet returns the set of roles currently present on the team.
func (t *Team) RoleSet() map[MemberRole]struct{} {
	roles := make(map[MemberRole]struct{}, len(t.Members))
	for _, m := range t.Members {
		roles[m.Role] = struct{}{}
	}
	return roles
}

// HasRequiredRoles reports whether every required role tag is present.
func (t *Team) HasRequiredRoles(required []string) bool {
	present := t.RoleSet()
	for _, r := range required {
		if _, ok := present[MemberRole(r)]; !ok {
			return false
		}
	}
	return true
}

// CanAddMember reports whether the team accepts new members under the
// hackathon's size cap. Only forming teams accept members.
func (t *Team) CanAddMember(maxTeamSize int) bool {
	return len(t.Members) < maxTeamSize && t.Status == TeamStatusForming
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	HackathonID uuid.UUID  `json:"hackathonId" binding:"required"`
	Name        string     `json:"name" binding:"required,min=2,max=200"`
	Slug        string     `json:"slug" binding:"required"`
	Tagline     string     `json:"tagline"`
	LeaderRole  MemberRole `json:"leaderRole"`
}

// AddMemberInput represents input for adding a team member
type AddMemberInput struct {
	UserID     uuid.UUID  `json:"userId" binding:"required"`
	Role       MemberRole `json:"role" binding:"required"`
	IsLeader   bool       `json:"isLeader"`
	InviteCode string     `json:"inviteCode"`
}
