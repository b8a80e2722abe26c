package notification

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
)

type (
	// DeliveryService reacts to a fired alarm: it re-validates the item
	// against the store, renders the notification, and records the send.
	DeliveryService interface {
		HandleFired(ctx context.Context, key AlarmKey) error
	}

	deliveryService struct {
		foodSource             FoodSource
		notificationRepository NotificationRepository
		notifier               Notifier
	}
)

func NewDeliveryService(
	foodSource FoodSource,
	notificationRepository NotificationRepository,
	notifier Notifier,
) DeliveryService {
	return &deliveryService{
		foodSource:             foodSource,
		notificationRepository: notificationRepository,
		notifier:               notifier,
	}
}

func (s *deliveryService) HandleFired(ctx context.Context, key AlarmKey) error {
	food, err := s.foodSource.GetFoodItemByID(ctx, key.FoodID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The item was deleted after the alarm was armed. An expected
			// race, not an error.
			log.Printf("food %s gone before %s alarm delivery, skipping", key.FoodID, key.Kind)
			return nil
		}
		return err
	}

	alert := Alert{
		FoodID:   food.ID,
		UserID:   food.UserID,
		FoodName: food.Name,
		Expired:  key.Kind == KindExpiry,
		Note:     food.Note,
	}

	if err := s.notifier.Notify(ctx, alert); err != nil {
		log.Printf("failed to render %s notification for %s: %v", key.Kind, food.Name, err)
		return nil
	}

	if key.Kind == KindExpiry {
		return s.notificationRepository.MarkExpirySent(ctx, food.ID)
	}
	return s.notificationRepository.MarkReminderSent(ctx, food.ID)
}
