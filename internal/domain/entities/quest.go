package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuestType matches the three scoring dimensions plus mixed
type QuestType string

const (
	QuestTypeTechnical   QuestType = "technical"
	QuestTypeCommercial  QuestType = "commercial"
	QuestTypeOperational QuestType = "operational"
	QuestTypeMixed       QuestType = "mixed"
)

// QuestDifficulty grades a quest
type QuestDifficulty string

const (
	DifficultyBeginner     QuestDifficulty = "beginner"
	DifficultyIntermediate QuestDifficulty = "intermediate"
	DifficultyAdvanced     QuestDifficulty = "advanced"
	DifficultyExpert       QuestDifficulty = "expert"
)

// Quest is a standalone skill-verification challenge awarding XP.
// Optionally bound to one hackathon.
type Quest struct {
	ID                   uuid.UUID       `json:"id"`
	Title                string          `json:"title"`
	Slug                 string          `json:"slug"`
	Description          string          `json:"description"`
	QuestType            QuestType       `json:"questType"`
	Difficulty           QuestDifficulty `json:"difficulty"`
	XPReward             int             `json:"xpReward"`
	EstimatedTimeMinutes int             `json:"estimatedTimeMinutes"`
	HackathonID          *uuid.UUID      `json:"hackathonId,omitempty"`
	IsActive             bool            `json:"isActive"`
	Tags                 []string        `json:"tags"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// CreateQuestInput represents a quest creation request
type CreateQuestInput struct {
	Title                string          `json:"title" binding:"required"`
	Slug                 string          `json:"slug" binding:"required"`
	Description          string          `json:"description"`
	QuestType            QuestType       `json:"questType" binding:"required"`
	Difficulty           QuestDifficulty `json:"difficulty" binding:"required"`
	XPReward             int             `json:"xpReward"`
	EstimatedTimeMinutes int             `json:"estimatedTimeMinutes"`
	HackathonID          *uuid.UUID      `json:"hackathonId"`
	Tags                 []string        `json:"tags"`
}

// QuestFilter narrows quest listings
type QuestFilter struct {
	Difficulty string `form:"difficulty"`
	QuestType  string `form:"type"`
	Tag        string `form:"tag"`
	XPMin      int    `form:"xpMin"`
	XPMax      int    `form:"xpMax"`
}
