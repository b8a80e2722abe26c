package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"foodkeeper-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationRecordFor(food *entities.FoodItem) *entities.FoodNotification {
	return &entities.FoodNotification{
		ID:                uuid.New(),
		FoodID:            food.ID,
		ScheduledExpiryAt: food.ExpiryDate,
	}
}

type fakeNotifier struct {
	mu     sync.Mutex
	alerts []Alert
	fail   error
}

func (n *fakeNotifier) Notify(_ context.Context, alert Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return n.fail
	}
	n.alerts = append(n.alerts, alert)
	return nil
}

func TestHandleFiredExpiryNotifiesAndMarksSent(t *testing.T) {
	food := futureFood("Milk", time.Now().AddDate(0, 0, 1), 1, nil)
	repo := newFakeNotificationRepository()
	require.NoError(t, repo.Insert(context.Background(), notificationRecordFor(food)))
	notifier := &fakeNotifier{}

	delivery := NewDeliveryService(newFakeFoodSource(food), repo, notifier)
	key := AlarmKey{Kind: KindExpiry, FoodID: food.ID}

	require.NoError(t, delivery.HandleFired(context.Background(), key))

	require.Len(t, notifier.alerts, 1)
	alert := notifier.alerts[0]
	assert.Equal(t, food.ID, alert.FoodID)
	assert.Equal(t, food.UserID, alert.UserID)
	assert.Equal(t, "Milk", alert.FoodName)
	assert.True(t, alert.Expired)

	record := repo.record(food.ID)
	assert.True(t, record.ExpirySent)
	assert.False(t, record.ReminderSent)
}

func TestHandleFiredReminderMarksReminderFlag(t *testing.T) {
	food := futureFood("Cheese", time.Now().AddDate(0, 0, 3), 1, nil)
	repo := newFakeNotificationRepository()
	require.NoError(t, repo.Insert(context.Background(), notificationRecordFor(food)))
	notifier := &fakeNotifier{}

	delivery := NewDeliveryService(newFakeFoodSource(food), repo, notifier)
	key := AlarmKey{Kind: KindReminder, FoodID: food.ID}

	require.NoError(t, delivery.HandleFired(context.Background(), key))

	require.Len(t, notifier.alerts, 1)
	assert.False(t, notifier.alerts[0].Expired)

	record := repo.record(food.ID)
	assert.True(t, record.ReminderSent)
	assert.False(t, record.ExpirySent)
}

func TestHandleFiredDeletedFoodIsSilent(t *testing.T) {
	repo := newFakeNotificationRepository()
	notifier := &fakeNotifier{}
	delivery := NewDeliveryService(newFakeFoodSource(), repo, notifier)

	key := AlarmKey{Kind: KindExpiry, FoodID: uuid.New()}
	require.NoError(t, delivery.HandleFired(context.Background(), key))

	assert.Empty(t, notifier.alerts)
}

func TestHandleFiredNotifyFailureDoesNotMarkSent(t *testing.T) {
	food := futureFood("Bread", time.Now().AddDate(0, 0, 2), 1, nil)
	repo := newFakeNotificationRepository()
	require.NoError(t, repo.Insert(context.Background(), notificationRecordFor(food)))
	notifier := &fakeNotifier{fail: errors.New("channel down")}

	delivery := NewDeliveryService(newFakeFoodSource(food), repo, notifier)
	key := AlarmKey{Kind: KindExpiry, FoodID: food.ID}

	require.NoError(t, delivery.HandleFired(context.Background(), key))

	record := repo.record(food.ID)
	assert.False(t, record.ExpirySent)
}

func TestAlertText(t *testing.T) {
	expired := Alert{FoodName: "Milk", Expired: true}
	assert.Equal(t, "Expired food!", AlertTitle(expired))
	assert.Equal(t, "Milk Expired!", AlertBody(expired))

	nearing := Alert{FoodName: "Milk"}
	assert.Equal(t, "Food nearing expiration date!", AlertTitle(nearing))
	assert.Equal(t, "Milk food nearing expiration date. Please check!", AlertBody(nearing))

	noted := Alert{FoodName: "Milk", Expired: true, Note: "back shelf"}
	assert.Equal(t, "Milk Expired! Note: back shelf", AlertBody(noted))
}
