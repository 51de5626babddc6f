package entities

import (
	"time"

	"github.com/google/uuid"
)

// JudgeScore is one judge's multi-dimensional rating for a submission.
// Unique per (submission, judge).
type JudgeScore struct {
	ID           uuid.UUID `json:"id"`
	SubmissionID uuid.UUID `json:"submissionId"`
	JudgeID      uuid.UUID `json:"judgeId"`

	TechnicalScore   float64 `json:"technicalScore"`
	CommercialScore  float64 `json:"commercialScore"`
	OperationalScore float64 `json:"operationalScore"`
	OverallScore     float64 `json:"overallScore"`

	Feedback string `json:"feedback"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeriveOverall fills in the overall score as the unweighted mean of the
// three dimensions when it was left at zero. A non-zero overall supplied by
// the judge is trusted as-is.
func (j *JudgeScore) DeriveOverall() {
	if j.OverallScore == 0 {
		j.OverallScore = (j.TechnicalScore + j.CommercialScore + j.OperationalScore) / 3
	}
}

// DimensionScores is a (technical, commercial, operational) triple
type DimensionScores struct {
	Technical   float64
	Commercial  float64
	Operational float64
}

// Final returns the simple mean of the three dimensions.
func (d DimensionScores) Final() float64 {
	return (d.Technical + d.Commercial + d.Operational) / 3
}

// AverageJudgeScores returns the column-wise mean of the given judge scores.
// The second result is false when there is nothing to average.
func AverageJudgeScores(scores []*JudgeScore) (DimensionScores, bool) {
	if len(scores) == 0 {
		return DimensionScores{}, false
	}
	var sum DimensionScores
	for _, s := range scores {
		sum.Technical += s.TechnicalScore
		sum.Commercial += s.CommercialScore
		sum.Operational += s.OperationalScore
	}
	n := float64(len(scores))
	return DimensionScores{
		Technical:   sum.Technical / n,
		Commercial:  sum.Commercial / n,
		Operational: sum.Operational / n,
	}, true
}

// UpsertJudgeScoreInput represents a judge's score submission
type UpsertJudgeScoreInput struct {
	SubmissionID     uuid.UUID `json:"submissionId" binding:"required"`
	TechnicalScore   float64   `json:"technicalScore" binding:"min=0,max=100"`
	CommercialScore  float64   `json:"commercialScore" binding:"min=0,max=100"`
	OperationalScore float64   `json:"operationalScore" binding:"min=0,max=100"`
	OverallScore     float64   `json:"overallScore" binding:"min=0,max=100"`
	Feedback         string    `json:"feedback"`
}

// LeaderboardEntry is one ranked row of a hackathon leaderboard
type LeaderboardEntry struct {
	TeamID     uuid.UUID  `json:"teamId"`
	TeamName   string     `json:"teamName"`
	Status     TeamStatus `json:"status"`
	FinalScore float64    `json:"finalScore"`
	Rank       int        `json:"rank"`
}
