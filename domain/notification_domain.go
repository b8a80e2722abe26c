package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotification = "notification schedule retrieved successfully"

	MessageFailedGetNotification = "failed to retrieve notification schedule"

	ErrNotificationNotFound = errors.New("notification schedule not found")
)

type NotificationResponse struct {
	FoodID              string     `json:"food_id"`
	ScheduledReminderAt *time.Time `json:"scheduled_reminder_at,omitempty"`
	ScheduledExpiryAt   *time.Time `json:"scheduled_expiry_at,omitempty"`
	ReminderSent        bool       `json:"reminder_sent"`
	ExpirySent          bool       `json:"expiry_sent"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
