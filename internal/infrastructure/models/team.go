package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	HackathonID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_hackathon_slug"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(200);not null;uniqueIndex:uniq_hackathon_slug"`
	Tagline     string    `gorm:"type:varchar(500)"`
	InviteCode  string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'forming';index"`

	TechnicalScore   float64 `gorm:"type:decimal(6,2);not null;default:0"`
	CommercialScore  float64 `gorm:"type:decimal(6,2);not null;default:0"`
	OperationalScore float64 `gorm:"type:decimal(6,2);not null;default:0"`
	FinalScore       float64 `gorm:"type:decimal(6,2);not null;default:0;index"`

	IsSeekingMembers  bool   `gorm:"not null;default:true"`
	EliminationReason string `gorm:"type:text"`
	CurrentRound      int    `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_team_user"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_team_user"`
	Role     string    `gorm:"type:varchar(50);not null"`
	IsLeader bool      `gorm:"not null;default:false"`
	JoinedAt time.Time
}
