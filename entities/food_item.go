package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Name         string     `json:"name"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	RemindBefore *int       `json:"remind_before,omitempty"` // lead time in calendar days, 0 = same day
	NotifyTime   *int       `json:"notify_time,omitempty"`   // encoded hour*100+minute, nil = 08:00
	GroupID      *uuid.UUID `json:"group_id,omitempty"`
	Note         string     `json:"note,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`

	User  *User      `gorm:"foreignKey:UserID"`
	Group *FoodGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Timestamp
}
