package entities

import (
	"github.com/google/uuid"
)

type FoodGroup struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Icon   string    `json:"icon,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
