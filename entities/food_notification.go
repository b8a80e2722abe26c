package entities

import (
	"time"

	"github.com/google/uuid"
)

// FoodNotification keeps the computed schedule for a single food item.
// The unique index on FoodID enforces at most one record per item.
type FoodNotification struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID              uuid.UUID  `gorm:"uniqueIndex" json:"food_id"`
	ScheduledReminderAt *time.Time `json:"scheduled_reminder_at,omitempty"`
	ScheduledExpiryAt   *time.Time `json:"scheduled_expiry_at,omitempty"`
	ReminderSent        bool       `json:"reminder_sent"`
	ExpirySent          bool       `json:"expiry_sent"`
	CreatedAt           time.Time  `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"type:timestamp" json:"updated_at"`

	Food *FoodItem `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
}
