package group

import (
	"context"
	"errors"

	"foodkeeper-backend/domain"
	"foodkeeper-backend/entities"
	"foodkeeper-backend/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroupService interface {
		AddFoodGroup(ctx context.Context, req domain.AddFoodGroupRequest, userID string) (domain.FoodGroupResponse, error)
		UpdateFoodGroup(ctx context.Context, id string, req domain.UpdateFoodGroupRequest, userID string) error
		DeleteFoodGroup(ctx context.Context, id string, userID string) error
		GetFoodGroups(ctx context.Context, userID string) ([]domain.FoodGroupResponse, error)
	}

	groupService struct {
		groupRepository GroupRepository
		foodRepository  food.FoodRepository
	}
)

func NewGroupService(groupRepository GroupRepository, foodRepository food.FoodRepository) GroupService {
	return &groupService{
		groupRepository: groupRepository,
		foodRepository:  foodRepository,
	}
}

func (s *groupService) AddFoodGroup(ctx context.Context, req domain.AddFoodGroupRequest, userID string) (domain.FoodGroupResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodGroupResponse{}, domain.ErrParseUUID
	}

	foodGroup := &entities.FoodGroup{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
		Icon:   req.Icon,
	}

	if err := s.groupRepository.AddFoodGroup(ctx, foodGroup); err != nil {
		return domain.FoodGroupResponse{}, err
	}

	return domain.FoodGroupResponse{
		ID:        foodGroup.ID.String(),
		Name:      foodGroup.Name,
		Icon:      foodGroup.Icon,
		CreatedAt: foodGroup.CreatedAt,
	}, nil
}

func (s *groupService) UpdateFoodGroup(ctx context.Context, id string, req domain.UpdateFoodGroupRequest, userID string) error {
	foodGroup, err := s.groupRepository.GetFoodGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodGroupNotFound
		}
		return err
	}

	if foodGroup.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		foodGroup.Name = req.Name
	}

	if req.Icon != "" {
		foodGroup.Icon = req.Icon
	}

	return s.groupRepository.UpdateFoodGroup(ctx, foodGroup)
}

func (s *groupService) DeleteFoodGroup(ctx context.Context, id string, userID string) error {
	foodGroup, err := s.groupRepository.GetFoodGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodGroupNotFound
		}
		return err
	}

	if foodGroup.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	// Items keep living without their group, the reference is weak.
	if err := s.foodRepository.DetachGroup(ctx, id); err != nil {
		return err
	}

	return s.groupRepository.DeleteFoodGroup(ctx, id)
}

func (s *groupService) GetFoodGroups(ctx context.Context, userID string) ([]domain.FoodGroupResponse, error) {
	foodGroups, err := s.groupRepository.GetFoodGroups(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.FoodGroupResponse
	for _, foodGroup := range foodGroups {
		itemCount, err := s.groupRepository.CountItemsInGroup(ctx, foodGroup.ID.String())
		if err != nil {
			itemCount = 0
		}

		response = append(response, domain.FoodGroupResponse{
			ID:        foodGroup.ID.String(),
			Name:      foodGroup.Name,
			Icon:      foodGroup.Icon,
			ItemCount: itemCount,
			CreatedAt: foodGroup.CreatedAt,
		})
	}

	return response, nil
}
