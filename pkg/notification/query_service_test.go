package notification

import (
	"context"
	"testing"
	"time"

	"foodkeeper-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScheduleReturnsRecord(t *testing.T) {
	food := futureFood("Milk", time.Now().AddDate(0, 0, 3), 1, nil)
	repo := newFakeNotificationRepository()
	require.NoError(t, repo.Insert(context.Background(), notificationRecordFor(food)))

	service := NewQueryService(repo, newFakeFoodSource(food))

	resp, err := service.GetSchedule(context.Background(), food.ID.String(), food.UserID.String())
	require.NoError(t, err)
	assert.Equal(t, food.ID.String(), resp.FoodID)
	assert.False(t, resp.ReminderSent)
	assert.False(t, resp.ExpirySent)
}

func TestGetScheduleEnforcesOwnership(t *testing.T) {
	food := futureFood("Milk", time.Now().AddDate(0, 0, 3), 1, nil)
	repo := newFakeNotificationRepository()
	require.NoError(t, repo.Insert(context.Background(), notificationRecordFor(food)))

	service := NewQueryService(repo, newFakeFoodSource(food))

	_, err := service.GetSchedule(context.Background(), food.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestGetScheduleMissingFood(t *testing.T) {
	service := NewQueryService(newFakeNotificationRepository(), newFakeFoodSource())

	_, err := service.GetSchedule(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestGetScheduleMissingRecord(t *testing.T) {
	food := futureFood("Milk", time.Now().AddDate(0, 0, 3), 1, nil)
	service := NewQueryService(newFakeNotificationRepository(), newFakeFoodSource(food))

	_, err := service.GetSchedule(context.Background(), food.ID.String(), food.UserID.String())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
