package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	domainerrors "synnovator.backend/internal/domain/errors"
)

// VerificationStatus is the submission review state machine:
// draft -> submitted -> under_review -> {verified|rejected|needs_revision}.
// "pending" is the legacy initial state for quest submissions.
type VerificationStatus string

const (
	VerificationStatusDraft         VerificationStatus = "draft"
	VerificationStatusPending       VerificationStatus = "pending"
	VerificationStatusSubmitted     VerificationStatus = "submitted"
	VerificationStatusUnderReview   VerificationStatus = "under_review"
	VerificationStatusVerified      VerificationStatus = "verified"
	VerificationStatusRejected      VerificationStatus = "rejected"
	VerificationStatusNeedsRevision VerificationStatus = "needs_revision"
)

// ParticipantKind tags who a submission belongs to
type ParticipantKind string

const (
	ParticipantUser ParticipantKind = "user"
	ParticipantTeam ParticipantKind = "team"
)

// Participant is the tagged union identifying one submitter: a user or a
// team, never both.
type Participant struct {
	Kind ParticipantKind
	ID   uuid.UUID
}

// UserParticipant builds an individual participant
func UserParticipant(userID uuid.UUID) Participant {
	return Participant{Kind: ParticipantUser, ID: userID}
}

// TeamParticipant builds a team participant
func TeamParticipant(teamID uuid.UUID) Participant {
	return Participant{Kind: ParticipantTeam, ID: teamID}
}

// Valid reports whether the participant identifies someone.
func (p Participant) Valid() bool {
	return (p.Kind == ParticipantUser || p.Kind == ParticipantTeam) && p.ID != uuid.Nil
}

// TargetKind tags what a submission was made against
type TargetKind string

const (
	TargetQuest     TargetKind = "quest"
	TargetHackathon TargetKind = "hackathon"
)

// Submission is a piece of work submitted by a user or team against a quest
// or a hackathon
type Submission struct {
	ID uuid.UUID `json:"id"`

	// Exactly one of UserID/TeamID and one of QuestID/HackathonID is set.
	UserID      *uuid.UUID `json:"userId,omitempty"`
	TeamID      *uuid.UUID `json:"teamId,omitempty"`
	QuestID     *uuid.UUID `json:"questId,omitempty"`
	HackathonID *uuid.UUID `json:"hackathonId,omitempty"`

	Title         string             `json:"title"`
	SubmissionURL string             `json:"submissionUrl"`
	Description   string             `json:"description"`
	Status        VerificationStatus `json:"status"`

	Score    null.Float64 `json:"score,omitempty"`
	Feedback string       `json:"feedback,omitempty"`

	AttemptNumber int        `json:"attemptNumber"`
	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
	VerifiedBy    *uuid.UUID `json:"verifiedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Submitter returns the participant union for this submission.
func (s *Submission) Submitter() Participant {
	if s.TeamID != nil {
		return TeamParticipant(*s.TeamID)
	}
	if s.UserID != nil {
		return UserParticipant(*s.UserID)
	}
	return Participant{}
}

// Validate enforces the exactly-one-of invariants: one submitter (user XOR
// team) and one target (quest XOR hackathon). Callers must invoke this
// before persisting; the database mirrors it with CHECK constraints.
func (s *Submission) Validate() error {
	if (s.UserID == nil) == (s.TeamID == nil) {
		return domainerrors.ErrInvalidState
	}
	if (s.QuestID == nil) == (s.HackathonID == nil) {
		return domainerrors.ErrInvalidState
	}
	if s.SubmissionURL == "" {
		return domainerrors.ErrInvalidInput
	}
	return nil
}

// reviewTransitions lists the allowed review moves for a submission.
var reviewTransitions = map[VerificationStatus][]VerificationStatus{
	VerificationStatusDraft:         {VerificationStatusSubmitted},
	VerificationStatusPending:       {VerificationStatusUnderReview, VerificationStatusVerified, VerificationStatusRejected},
	VerificationStatusSubmitted:     {VerificationStatusUnderReview, VerificationStatusVerified, VerificationStatusRejected, VerificationStatusNeedsRevision},
	VerificationStatusUnderReview:   {VerificationStatusVerified, VerificationStatusRejected, VerificationStatusNeedsRevision},
	VerificationStatusNeedsRevision: {VerificationStatusSubmitted},
}

// CanTransitionTo reports whether a review move is allowed.
func (s *Submission) CanTransitionTo(next VerificationStatus) bool {
	for _, v := range reviewTransitions[s.Status] {
		if v == next {
			return true
		}
	}
	return false
}

// CreateSubmissionInput represents input for creating a submission
type CreateSubmissionInput struct {
	TeamID        *uuid.UUID `json:"teamId"`
	QuestID       *uuid.UUID `json:"questId"`
	HackathonID   *uuid.UUID `json:"hackathonId"`
	Title         string     `json:"title" binding:"required,min=2,max=200"`
	SubmissionURL string     `json:"submissionUrl" binding:"required,url"`
	Description   string     `json:"description"`
}

// ReviewSubmissionInput represents a judge's review decision
type ReviewSubmissionInput struct {
	Status   VerificationStatus `json:"status" binding:"required"`
	Score    *float64           `json:"score"`
	Feedback string             `json:"feedback"`
}
