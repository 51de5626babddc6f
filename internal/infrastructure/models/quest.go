package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	HackathonID *uuid.UUID `gorm:"type:uuid;index"`

	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	QuestType   string `gorm:"type:varchar(20);not null;default:'mixed';index"`
	Difficulty  string `gorm:"type:varchar(20);not null;default:'intermediate'"`

	XPReward             int         `gorm:"not null;default:0"`
	EstimatedTimeMinutes int         `gorm:"not null;default:0"`
	Tags                 StringSlice `gorm:"type:text"`
	IsActive             bool        `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
