package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodGroup    = "food group added successfully"
	MessageSuccessUpdateFoodGroup = "food group updated successfully"
	MessageSuccessDeleteFoodGroup = "food group deleted successfully"
	MessageSuccessGetFoodGroups   = "food groups retrieved successfully"

	MessageFailedAddFoodGroup    = "failed to add food group"
	MessageFailedUpdateFoodGroup = "failed to update food group"
	MessageFailedDeleteFoodGroup = "failed to delete food group"
	MessageFailedGetFoodGroups   = "failed to retrieve food groups"

	ErrFoodGroupNotFound = errors.New("food group not found")
)

type (
	AddFoodGroupRequest struct {
		Name string `json:"name" validate:"required"`
		Icon string `json:"icon" validate:"omitempty"`
	}

	UpdateFoodGroupRequest struct {
		Name string `json:"name" validate:"omitempty"`
		Icon string `json:"icon" validate:"omitempty"`
	}

	FoodGroupResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Icon      string    `json:"icon,omitempty"`
		ItemCount int64     `json:"item_count"`
		CreatedAt time.Time `json:"created_at"`
	}
)
