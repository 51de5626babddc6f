package entities

import "strings"

// Reason is a stable eligibility reason code. User-facing text comes from
// Message so callers can map codes to translated strings.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonIndividualOnly    Reason = "individual_only"
	ReasonTeamOnly          Reason = "team_only"
	ReasonNotRegistered     Reason = "not_registered"
	ReasonQuotaReached      Reason = "quota_reached"
	ReasonLateSubmission    Reason = "late_submission"
	ReasonSubmissionsClosed Reason = "submissions_closed"
)

var reasonMessages = map[Reason]string{
	ReasonIndividualOnly:    "This hackathon only accepts individual submissions",
	ReasonTeamOnly:          "This hackathon only accepts team submissions",
	ReasonNotRegistered:     "You must register before submitting",
	ReasonQuotaReached:      "Maximum submissions reached",
	ReasonLateSubmission:    "Late submission",
	ReasonSubmissionsClosed: "Submissions are closed",
}

// Message returns the user-facing text for a reason code.
func (r Reason) Message() string {
	return reasonMessages[r]
}

// EligibilityFacts is the participant state the evaluator reads, loaded by
// the caller: registration standing, existing submission count, and the
// hackathon's phase situation.
type EligibilityFacts struct {
	Registered      bool
	SubmissionCount int64
	HasPhases       bool
	CurrentPhase    *Phase
}

// submissionPhaseKeywords marks phase titles during which submissions are
// open. Substring match, case-insensitive.
var submissionPhaseKeywords = []string{"submission", "hacking", "development", "building"}

// SubmissionOpen reports whether submissions are currently open: with no
// phases defined the hackathon status decides, otherwise the current phase
// title must contain a submission keyword.
func SubmissionOpen(h *Hackathon, facts EligibilityFacts) bool {
	if !facts.HasPhases {
		return h.Status == HackathonStatusInProgress
	}
	if facts.CurrentPhase == nil {
		return false
	}
	title := strings.ToLower(facts.CurrentPhase.Title)
	for _, kw := range submissionPhaseKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// eligibilityCheck is one step of the evaluation chain. A nil result means
// the check passed and evaluation continues.
type eligibilityCheck func(h *Hackathon, p Participant, facts EligibilityFacts) *eligibilityResult

type eligibilityResult struct {
	allowed bool
	reason  Reason
}

// eligibilityChain is the ordered list of checks; the first decisive check
// wins and no failures are aggregated.
var eligibilityChain = []eligibilityCheck{
	checkSubmissionType,
	checkRegistration,
	checkQuota,
	checkPhase,
}

// EvaluateEligibility decides whether the participant may submit to the
// hackathon right now. Rejections are advisory, never errors.
func EvaluateEligibility(h *Hackathon, p Participant, facts EligibilityFacts) (bool, Reason) {
	for _, check := range eligibilityChain {
		if res := check(h, p, facts); res != nil {
			return res.allowed, res.reason
		}
	}
	return true, ReasonNone
}

func checkSubmissionType(h *Hackathon, p Participant, _ EligibilityFacts) *eligibilityResult {
	if h.SubmissionType == SubmissionTypeIndividual && p.Kind == ParticipantTeam {
		return &eligibilityResult{allowed: false, reason: ReasonIndividualOnly}
	}
	if h.SubmissionType == SubmissionTypeTeam && p.Kind == ParticipantUser {
		return &eligibilityResult{allowed: false, reason: ReasonTeamOnly}
	}
	return nil
}

func checkRegistration(h *Hackathon, _ Participant, facts EligibilityFacts) *eligibilityResult {
	if h.RequireRegistration && !facts.Registered {
		return &eligibilityResult{allowed: false, reason: ReasonNotRegistered}
	}
	return nil
}

func checkQuota(h *Hackathon, _ Participant, facts EligibilityFacts) *eligibilityResult {
	// 0 means unlimited.
	if h.MaxSubmissionsPerParticipant > 0 && facts.SubmissionCount >= int64(h.MaxSubmissionsPerParticipant) {
		return &eligibilityResult{allowed: false, reason: ReasonQuotaReached}
	}
	return nil
}

func checkPhase(h *Hackathon, _ Participant, facts EligibilityFacts) *eligibilityResult {
	if !h.RestrictToSubmissionPhase {
		return nil
	}
	if SubmissionOpen(h, facts) {
		return nil
	}
	if h.AllowLateSubmission {
		return &eligibilityResult{allowed: true, reason: ReasonLateSubmission}
	}
	return &eligibilityResult{allowed: false, reason: ReasonSubmissionsClosed}
}
