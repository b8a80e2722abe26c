package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem     = "food item added successfully"
	MessageSuccessUpdateFoodItem  = "food item updated successfully"
	MessageSuccessDeleteFoodItem  = "food item deleted successfully"
	MessageSuccessGetFoodItems    = "food items retrieved successfully"
	MessageSuccessGetFoodItem     = "food item retrieved successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"
	MessageSuccessGetExpiring     = "expiring food items retrieved successfully"
	MessageSuccessGetDashboard    = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem     = "failed to add food item"
	MessageFailedUpdateFoodItem  = "failed to update food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedGetFoodItem     = "failed to retrieve food item"
	MessageFailedUploadFoodImage = "failed to upload food image"
	MessageFailedGetExpiring     = "failed to retrieve expiring food items"
	MessageFailedGetDashboard    = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidRemindDays  = errors.New("remind before must be zero or positive")
	ErrInvalidNotifyTime  = errors.New("notify time must encode a valid hour and minute")
	ErrGroupNotFound      = errors.New("food group not found")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name         string `json:"name" validate:"required"`
		ExpiryDate   string `json:"expiry_date" validate:"omitempty"`
		RemindBefore *int   `json:"remind_before" validate:"omitempty,min=0"`
		NotifyTime   *int   `json:"notify_time" validate:"omitempty,min=0,max=2359"`
		GroupID      string `json:"group_id" validate:"omitempty,uuid"`
		Note         string `json:"note" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name         string `json:"name" validate:"omitempty"`
		ExpiryDate   string `json:"expiry_date" validate:"omitempty"`
		RemindBefore *int   `json:"remind_before" validate:"omitempty,min=0"`
		NotifyTime   *int   `json:"notify_time" validate:"omitempty,min=0,max=2359"`
		GroupID      string `json:"group_id" validate:"omitempty,uuid"`
		Note         string `json:"note" validate:"omitempty"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DashboardStatsResponse struct {
		TotalItems    int64 `json:"total_items"`
		ExpiringItems int64 `json:"expiring_items"`
		ExpiredItems  int64 `json:"expired_items"`
	}

	FoodItemResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		RemindBefore *int       `json:"remind_before,omitempty"`
		NotifyTime   *int       `json:"notify_time,omitempty"`
		GroupID      string     `json:"group_id,omitempty"`
		Note         string     `json:"note,omitempty"`
		ImageURL     string     `json:"image_url,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}
)
