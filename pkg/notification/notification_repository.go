package notification

import (
	"context"
	"time"

	"foodkeeper-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetByFoodID(ctx context.Context, foodID uuid.UUID) (*entities.FoodNotification, error)
		Insert(ctx context.Context, notification *entities.FoodNotification) error
		Update(ctx context.Context, notification *entities.FoodNotification) error
		DeleteByFoodID(ctx context.Context, foodID uuid.UUID) error
		MarkReminderSent(ctx context.Context, foodID uuid.UUID) error
		MarkExpirySent(ctx context.Context, foodID uuid.UUID) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetByFoodID(ctx context.Context, foodID uuid.UUID) (*entities.FoodNotification, error) {
	var notification entities.FoodNotification
	if err := r.db.WithContext(ctx).Where("food_id = ?", foodID).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) Insert(ctx context.Context, notification *entities.FoodNotification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) Update(ctx context.Context, notification *entities.FoodNotification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) DeleteByFoodID(ctx context.Context, foodID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("food_id = ?", foodID).
		Delete(&entities.FoodNotification{}).Error
}

// MarkReminderSent flips the reminder flag for the item's record. A missing
// record is a no-op, not an error: the alarm may have fired for an item whose
// schedule was removed in the meantime.
func (r *notificationRepository) MarkReminderSent(ctx context.Context, foodID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entities.FoodNotification{}).
		Where("food_id = ?", foodID).
		Updates(map[string]interface{}{"reminder_sent": true, "updated_at": time.Now()}).Error
}

func (r *notificationRepository) MarkExpirySent(ctx context.Context, foodID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entities.FoodNotification{}).
		Where("food_id = ?", foodID).
		Updates(map[string]interface{}{"expiry_sent": true, "updated_at": time.Now()}).Error
}
