package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin       UserRole = "ADMIN"
	UserRoleJudge       UserRole = "JUDGE"
	UserRoleOrganizer   UserRole = "ORGANIZER"
	UserRoleParticipant UserRole = "PARTICIPANT"
)

// User represents a platform user
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Skills       []string   `json:"skills"`
	XP           int        `json:"xp"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Email    string   `json:"email" binding:"required,email"`
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Password string   `json:"password" binding:"required,min=8"`
	Skills   []string `json:"skills"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         *User  `json:"user"`
}
