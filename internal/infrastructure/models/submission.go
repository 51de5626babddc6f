package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Submission struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`

	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	TeamID      *uuid.UUID `gorm:"type:uuid;index"`
	QuestID     *uuid.UUID `gorm:"type:uuid;index"`
	HackathonID *uuid.UUID `gorm:"type:uuid;index"`

	Title         string `gorm:"type:varchar(200);not null"`
	SubmissionURL string `gorm:"type:varchar(500);not null"`
	Description   string `gorm:"type:text"`
	Status        string `gorm:"column:verification_status;type:varchar(20);not null;default:'draft';index"`

	Score    null.Float64 `gorm:"type:decimal(6,2)"`
	Feedback string       `gorm:"type:text"`

	AttemptNumber int        `gorm:"not null;default:1"`
	SubmittedAt   *time.Time
	VerifiedAt    *time.Time
	VerifiedBy    *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type JudgeScore struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_submission_judge"`
	JudgeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_submission_judge"`

	TechnicalScore   float64 `gorm:"type:decimal(6,2);not null;default:0"`
	CommercialScore  float64 `gorm:"type:decimal(6,2);not null;default:0"`
	OperationalScore float64 `gorm:"type:decimal(6,2);not null;default:0"`
	OverallScore     float64 `gorm:"type:decimal(6,2);not null;default:0"`

	Feedback string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
