package notification

import (
	"context"
	"errors"

	"foodkeeper-backend/domain"

	"gorm.io/gorm"
)

type (
	// QueryService exposes an item's persisted notification schedule.
	QueryService interface {
		GetSchedule(ctx context.Context, foodID string, userID string) (domain.NotificationResponse, error)
	}

	queryService struct {
		notificationRepository NotificationRepository
		foodSource             FoodSource
	}
)

func NewQueryService(notificationRepository NotificationRepository, foodSource FoodSource) QueryService {
	return &queryService{
		notificationRepository: notificationRepository,
		foodSource:             foodSource,
	}
}

func (s *queryService) GetSchedule(ctx context.Context, foodID string, userID string) (domain.NotificationResponse, error) {
	food, err := s.foodSource.GetFoodItemByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.NotificationResponse{}, err
	}

	if food.UserID.String() != userID {
		return domain.NotificationResponse{}, domain.ErrUserNotAllowed
	}

	record, err := s.notificationRepository.GetByFoodID(ctx, food.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrNotificationNotFound
		}
		return domain.NotificationResponse{}, err
	}

	return domain.NotificationResponse{
		FoodID:              record.FoodID.String(),
		ScheduledReminderAt: record.ScheduledReminderAt,
		ScheduledExpiryAt:   record.ScheduledExpiryAt,
		ReminderSent:        record.ReminderSent,
		ExpirySent:          record.ExpirySent,
		UpdatedAt:           record.UpdatedAt,
	}, nil
}
