package entities

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken is an FCM registration token for one of the user's devices.
type DeviceToken struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"index" json:"user_id"`
	Token      string    `gorm:"uniqueIndex" json:"-"`
	DeviceInfo string    `json:"device_info,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID"`
}
