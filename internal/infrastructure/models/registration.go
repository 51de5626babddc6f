package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamRegistration struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	HackathonID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_hackathon_team"`
	TeamID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_hackathon_team"`
	Status       string    `gorm:"type:varchar(20);not null;default:'approved';index"`
	Notes        string    `gorm:"type:text"`
	RegisteredAt time.Time `gorm:"autoCreateTime"`
}
