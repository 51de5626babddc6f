package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType labels what triggered a notification
type NotificationType string

const (
	NotificationRuleViolation      NotificationType = "rule_violation"
	NotificationRegistrationStatus NotificationType = "registration_status"
	NotificationSubmissionReviewed NotificationType = "submission_reviewed"
	NotificationTeamAdvancement    NotificationType = "team_advancement"
)

// Notification is an in-app message for one recipient
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID uuid.UUID        `json:"recipientId"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	IsRead      bool             `json:"isRead"`
	CreatedAt   time.Time        `json:"createdAt"`
}
