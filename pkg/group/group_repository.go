package group

import (
	"context"

	"foodkeeper-backend/entities"

	"gorm.io/gorm"
)

type (
	GroupRepository interface {
		AddFoodGroup(ctx context.Context, foodGroup *entities.FoodGroup) error
		GetFoodGroupByID(ctx context.Context, id string) (*entities.FoodGroup, error)
		UpdateFoodGroup(ctx context.Context, foodGroup *entities.FoodGroup) error
		DeleteFoodGroup(ctx context.Context, id string) error
		GetFoodGroups(ctx context.Context, userID string) ([]*entities.FoodGroup, error)
		CountItemsInGroup(ctx context.Context, groupID string) (int64, error)
	}

	groupRepository struct {
		db *gorm.DB
	}
)

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) AddFoodGroup(ctx context.Context, foodGroup *entities.FoodGroup) error {
	return r.db.WithContext(ctx).Create(foodGroup).Error
}

func (r *groupRepository) GetFoodGroupByID(ctx context.Context, id string) (*entities.FoodGroup, error) {
	var foodGroup entities.FoodGroup
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodGroup).Error; err != nil {
		return nil, err
	}
	return &foodGroup, nil
}

func (r *groupRepository) UpdateFoodGroup(ctx context.Context, foodGroup *entities.FoodGroup) error {
	return r.db.WithContext(ctx).Save(foodGroup).Error
}

func (r *groupRepository) DeleteFoodGroup(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodGroup{}).Error
}

func (r *groupRepository) GetFoodGroups(ctx context.Context, userID string) ([]*entities.FoodGroup, error) {
	var foodGroups []*entities.FoodGroup
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&foodGroups).Error; err != nil {
		return nil, err
	}
	return foodGroups, nil
}

func (r *groupRepository) CountItemsInGroup(ctx context.Context, groupID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
