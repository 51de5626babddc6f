package models

import (
	"time"

	"github.com/google/uuid"
)

type CompetitionRule struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	HackathonID uuid.UUID `gorm:"type:uuid;not null;index"`
	RuleType    string    `gorm:"type:varchar(50);not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	// Serialized entities.RuleDefinition.
	Definition  string `gorm:"type:text;not null;default:'{}'"`
	IsMandatory bool   `gorm:"not null"`
	Penalty     string `gorm:"type:varchar(50)"`
	Order       int    `gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RuleViolation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_violation_team"`
	RuleID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DetectionMethod string     `gorm:"type:varchar(20);not null"`
	Description     string     `gorm:"type:text;not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	ActionTaken     string    `gorm:"type:text"`
	DetectedAt      time.Time `gorm:"autoCreateTime;index:idx_violation_team,sort:desc"`
}
