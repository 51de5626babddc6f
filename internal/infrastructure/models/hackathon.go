package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type Hackathon struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Title       string      `gorm:"type:varchar(200);not null"`
	Slug        string      `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description string      `gorm:"type:text"`
	Tags        StringSlice `gorm:"type:text"`
	Status      string      `gorm:"type:varchar(20);not null;default:'draft';index"`

	MinTeamSize   int         `gorm:"not null;default:2"`
	MaxTeamSize   int         `gorm:"not null;default:5"`
	AllowSolo     bool        `gorm:"not null"`
	RequiredRoles StringSlice `gorm:"type:text"`

	PassingScore float64 `gorm:"not null;default:80"`

	SubmissionType               string `gorm:"type:varchar(20);not null;default:'both'"`
	MaxSubmissionsPerParticipant int    `gorm:"not null;default:0"`
	// No column defaults on the flags: gorm skips zero-valued fields on
	// insert, so a default of true would overwrite an explicit false.
	RequireRegistration          bool   `gorm:"not null"`
	RestrictToSubmissionPhase    bool   `gorm:"not null"`
	AllowLateSubmission          bool   `gorm:"not null"`
	AllowEditAfterSubmit         bool   `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Phase struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	HackathonID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Order       int       `gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Prize struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	HackathonID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title         string       `gorm:"type:varchar(200);not null"`
	Description   string       `gorm:"type:text"`
	Rank          int          `gorm:"not null;default:1"`
	MonetaryValue null.Float64 `gorm:"type:decimal(10,2)"`
	Benefits      StringSlice  `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
