package food

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodkeeper-backend/domain"
	"foodkeeper-backend/entities"
	"foodkeeper-backend/internal/utils/storage"
	"foodkeeper-backend/pkg/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, groupID string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		GetExpiringFoodItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error)
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
	}

	foodService struct {
		foodRepository FoodRepository
		scheduler      notification.SchedulerService
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, scheduler notification.SchedulerService, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		scheduler:      scheduler,
		s3:             s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.Local)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	if req.NotifyTime != nil && !validNotifyTime(*req.NotifyTime) {
		return domain.FoodItemResponse{}, domain.ErrInvalidNotifyTime
	}

	var groupID *uuid.UUID
	if req.GroupID != "" {
		parsed, err := uuid.Parse(req.GroupID)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrParseUUID
		}
		groupID = &parsed
	}

	foodItem := &entities.FoodItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		ExpiryDate:   expiryDate,
		RemindBefore: req.RemindBefore,
		NotifyTime:   req.NotifyTime,
		GroupID:      groupID,
		Note:         req.Note,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	if err := s.scheduler.ScheduleFood(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.Local)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = &expiryDate
	}

	if req.RemindBefore != nil {
		foodItem.RemindBefore = req.RemindBefore
	}

	if req.NotifyTime != nil {
		if !validNotifyTime(*req.NotifyTime) {
			return domain.ErrInvalidNotifyTime
		}
		foodItem.NotifyTime = req.NotifyTime
	}

	if req.GroupID != "" {
		groupID, err := uuid.Parse(req.GroupID)
		if err != nil {
			return domain.ErrParseUUID
		}
		foodItem.GroupID = &groupID
	}

	if req.Note != "" {
		foodItem.Note = req.Note
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return err
	}

	return s.scheduler.ScheduleFood(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	// Alarms and the notification record go first so nothing fires for a
	// soft-deleted item.
	if err := s.scheduler.CancelFood(ctx, foodItem.ID); err != nil {
		return err
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, groupID string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, userID, groupID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.FoodItemResponse
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if foodItem.UserID.String() != userID {
		return domain.FoodItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) GetExpiringFoodItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error) {
	now := time.Now()
	threshold := now.AddDate(0, 0, days)

	foodItems, err := s.foodRepository.GetFoodItemsByExpiryRange(ctx, userID, now, threshold)
	if err != nil {
		return nil, err
	}

	var response []domain.FoodItemResponse
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, nil
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	stats, err := s.foodRepository.GetDashboardStats(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalItems:    stats["total_items"],
		ExpiringItems: stats["expiring_items"],
		ExpiredItems:  stats["expired_items"],
	}, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	groupID := ""
	if item.GroupID != nil {
		groupID = item.GroupID.String()
	}

	return domain.FoodItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		ExpiryDate:   item.ExpiryDate,
		RemindBefore: item.RemindBefore,
		NotifyTime:   item.NotifyTime,
		GroupID:      groupID,
		Note:         item.Note,
		ImageURL:     item.ImageURL,
		CreatedAt:    item.CreatedAt,
	}
}

func validNotifyTime(hhmm int) bool {
	hour := hhmm / 100
	minute := hhmm % 100
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}
