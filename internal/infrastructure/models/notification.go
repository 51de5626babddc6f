package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(40);not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Message     string    `gorm:"type:text"`
	IsRead      bool      `gorm:"not null;default:false;index"`

	CreatedAt time.Time
}

type AdvancementLog struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID uuid.UUID `gorm:"type:uuid;not null;index"`

	FromPhaseID *uuid.UUID `gorm:"type:uuid"`
	ToPhaseID   *uuid.UUID `gorm:"type:uuid"`
	Decision    string     `gorm:"type:varchar(20);not null"`
	DecidedBy   *uuid.UUID `gorm:"type:uuid"`
	Notes       string     `gorm:"type:text"`

	DecidedAt time.Time `gorm:"not null"`
}
