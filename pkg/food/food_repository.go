package food

import (
	"context"
	"time"

	"foodkeeper-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, userID string, groupID string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error)
		GetFoodItemsWithExpiry(ctx context.Context) ([]*entities.FoodItem, error)
		GetDashboardStats(ctx context.Context, userID string) (map[string]int64, error)
		DetachGroup(ctx context.Context, groupID string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, groupID string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if groupID != "" {
		query = query.Where("group_id = ?", groupID)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc nulls last").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetFoodItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

// GetFoodItemsWithExpiry returns every live item that has a deadline, across
// all users. The boot reconciler walks this list at startup.
func (r *foodRepository) GetFoodItemsWithExpiry(ctx context.Context) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetDashboardStats(ctx context.Context, userID string) (map[string]int64, error) {
	var totalItems, expiringItems, expiredItems int64
	now := time.Now()
	threshold := now.AddDate(0, 0, 7)

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ?", userID).
		Count(&totalItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, now, threshold).
		Count(&expiringItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND expiry_date < ?", userID, now).
		Count(&expiredItems).Error; err != nil {
		return nil, err
	}

	return map[string]int64{
		"total_items":    totalItems,
		"expiring_items": expiringItems,
		"expired_items":  expiredItems,
	}, nil
}

// DetachGroup clears the group reference on every item pointing at a removed
// group. The reference is weak, items survive their group.
func (r *foodRepository) DetachGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("group_id = ?", groupID).
		Updates(map[string]interface{}{"group_id": nil}).Error
}
