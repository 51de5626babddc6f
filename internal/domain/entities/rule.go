package entities

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RuleType categorises a competition rule. Only the first three types are
// automatically enforceable; the rest require manual verification.
type RuleType string

const (
	RuleTypeTeamSize         RuleType = "team_size"
	RuleTypeTeamComposition  RuleType = "team_composition"
	RuleTypeSubmissionFormat RuleType = "submission_format"
	RuleTypeEligibility      RuleType = "eligibility"
	RuleTypeConduct          RuleType = "conduct"
	RuleTypeDeadline         RuleType = "deadline"
	RuleTypeOther            RuleType = "other"
)

// RulePenalty is the consequence of violating a rule
type RulePenalty string

const (
	PenaltyWarning          RulePenalty = "warning"
	PenaltyPointDeduction   RulePenalty = "point_deduction"
	PenaltyDisqualification RulePenalty = "disqualification"
)

// RuleDefinition is the typed payload of a rule. Which fields apply depends
// on the rule type: team_size reads the member bounds, team_composition
// reads the required roles. Unset bounds default to 0/999.
type RuleDefinition struct {
	MinMembers    *int     `json:"min_members,omitempty"`
	MaxMembers    *int     `json:"max_members,omitempty"`
	RequiredRoles []string `json:"required_roles,omitempty"`
}

const defaultMaxMembers = 999

// Bounds returns the effective team-size bounds.
func (d RuleDefinition) Bounds() (min, max int) {
	min, max = 0, defaultMaxMembers
	if d.MinMembers != nil {
		min = *d.MinMembers
	}
	if d.MaxMembers != nil {
		max = *d.MaxMembers
	}
	return min, max
}

// CompetitionRule is an organizer-defined constraint a team must satisfy
type CompetitionRule struct {
	ID          uuid.UUID      `json:"id"`
	HackathonID uuid.UUID      `json:"hackathonId"`
	RuleType    RuleType       `json:"ruleType"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Definition  RuleDefinition `json:"definition"`
	IsMandatory bool           `json:"isMandatory"`
	Penalty     RulePenalty    `json:"penalty,omitempty"`
	Order       int            `json:"order"`
}

// TeamComplianceView is the team state a compliance check reads: current
// member count, present role tags, and whether any submission with a
// qualifying status exists.
type TeamComplianceView struct {
	MemberCount             int
	Roles                   []string
	HasQualifyingSubmission bool
}

// CheckCompliance decides whether a team complies with this rule.
// Pure pass/fail with a human-readable message; recording violations is the
// caller's job.
func (r *CompetitionRule) CheckCompliance(team TeamComplianceView) (bool, string) {
	switch r.RuleType {
	case RuleTypeTeamSize:
		min, max := r.Definition.Bounds()
		if team.MemberCount < min {
			return false, fmt.Sprintf("Team has %d members, minimum is %d", team.MemberCount, min)
		}
		if team.MemberCount > max {
			return false, fmt.Sprintf("Team has %d members, maximum is %d", team.MemberCount, max)
		}
		return true, "Team size compliant"

	case RuleTypeTeamComposition:
		present := make(map[string]struct{}, len(team.Roles))
		for _, role := range team.Roles {
			present[role] = struct{}{}
		}
		var missing []string
		for _, required := range r.Definition.RequiredRoles {
			if _, ok := present[required]; !ok {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return false, fmt.Sprintf("Missing required roles: %s", strings.Join(missing, ", "))
		}
		return true, "Team composition compliant"

	case RuleTypeSubmissionFormat:
		if !team.HasQualifyingSubmission {
			return false, "No valid submission found"
		}
		return true, "Submission format compliant"
	}

	return true, "Manual verification required"
}

// ViolationDetection indicates how a violation was found
type ViolationDetection string

const (
	DetectionAutomated ViolationDetection = "automated"
	DetectionManual    ViolationDetection = "manual"
)

// ViolationStatus is the review state of a recorded violation
type ViolationStatus string

const (
	ViolationStatusPending   ViolationStatus = "pending"
	ViolationStatusConfirmed ViolationStatus = "confirmed"
	ViolationStatusDismissed ViolationStatus = "dismissed"
)

// RuleViolation records a rule breach by a team
type RuleViolation struct {
	ID              uuid.UUID          `json:"id"`
	TeamID          uuid.UUID          `json:"teamId"`
	RuleID          uuid.UUID          `json:"ruleId"`
	DetectionMethod ViolationDetection `json:"detectionMethod"`
	Description     string             `json:"description"`
	Status          ViolationStatus    `json:"status"`
	ReviewedBy      *uuid.UUID         `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time         `json:"reviewedAt,omitempty"`
	ActionTaken     string             `json:"actionTaken,omitempty"`
	DetectedAt      time.Time          `json:"detectedAt"`
}
