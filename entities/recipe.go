package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CookingTime string    `json:"cooking_time"`
	Ingredients string    `json:"ingredients" gorm:"type:text"` // JSON array of ingredient lines
	Steps       string    `json:"steps" gorm:"type:text"`       // JSON array of instruction lines
	IsGenerated bool      `json:"is_generated"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
