package food

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"foodkeeper-backend/domain"
	"foodkeeper-backend/entities"
	"foodkeeper-backend/pkg/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	mu    sync.Mutex
	foods map[uuid.UUID]*entities.FoodItem
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: map[uuid.UUID]*entities.FoodItem{}}
}

func (r *fakeFoodRepository) AddFoodItem(_ context.Context, foodItem *entities.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *foodItem
	r.foods[foodItem.ID] = &clone
	return nil
}

func (r *fakeFoodRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	food, ok := r.foods[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *food
	return &clone, nil
}

func (r *fakeFoodRepository) UpdateFoodItem(_ context.Context, foodItem *entities.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *foodItem
	r.foods[foodItem.ID] = &clone
	return nil
}

func (r *fakeFoodRepository) DeleteFoodItem(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(r.foods, parsed)
	return nil
}

func (r *fakeFoodRepository) GetFoodItems(_ context.Context, userID string, groupID string, page, limit int) ([]*entities.FoodItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.FoodItem
	for _, f := range r.foods {
		if f.UserID.String() != userID {
			continue
		}
		if groupID != "" && (f.GroupID == nil || f.GroupID.String() != groupID) {
			continue
		}
		out = append(out, f)
	}
	return out, int64(len(out)), nil
}

func (r *fakeFoodRepository) GetFoodItemsByExpiryRange(_ context.Context, userID string, startDate, endDate time.Time) ([]*entities.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.FoodItem
	for _, f := range r.foods {
		if f.UserID.String() != userID || f.ExpiryDate == nil {
			continue
		}
		if f.ExpiryDate.After(startDate) && f.ExpiryDate.Before(endDate) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFoodRepository) GetFoodItemsWithExpiry(_ context.Context) ([]*entities.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.FoodItem
	for _, f := range r.foods {
		if f.ExpiryDate != nil {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFoodRepository) GetDashboardStats(_ context.Context, userID string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	threshold := now.AddDate(0, 0, 7)
	stats := map[string]int64{"total_items": 0, "expiring_items": 0, "expired_items": 0}
	for _, f := range r.foods {
		if f.UserID.String() != userID {
			continue
		}
		stats["total_items"]++
		if f.ExpiryDate == nil {
			continue
		}
		if f.ExpiryDate.Before(now) {
			stats["expired_items"]++
		} else if f.ExpiryDate.Before(threshold) {
			stats["expiring_items"]++
		}
	}
	return stats, nil
}

func (r *fakeFoodRepository) DetachGroup(_ context.Context, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.foods {
		if f.GroupID != nil && f.GroupID.String() == groupID {
			f.GroupID = nil
		}
	}
	return nil
}

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []uuid.UUID
	canceled  []uuid.UUID
}

func (s *fakeScheduler) ScheduleFood(_ context.Context, food *entities.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, food.ID)
	return nil
}

func (s *fakeScheduler) CancelFood(_ context.Context, foodID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canceled = append(s.canceled, foodID)
	return nil
}

func (s *fakeScheduler) MarkSent(context.Context, uuid.UUID, notification.AlarmKind) error {
	return nil
}

func (s *fakeScheduler) RescheduleAll(context.Context) error { return nil }

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(string) error { return nil }

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example.com/" + objectKey
}

func (fakeS3) GetObjectKeyFromLink(link string) string { return "" }

func newTestFoodService() (FoodService, *fakeFoodRepository, *fakeScheduler) {
	repo := newFakeFoodRepository()
	scheduler := &fakeScheduler{}
	return NewFoodService(repo, scheduler, fakeS3{}), repo, scheduler
}

func TestAddFoodItemSchedulesNotifications(t *testing.T) {
	service, repo, scheduler := newTestFoodService()
	userID := uuid.New().String()

	remindBefore := 3
	notifyTime := 900
	resp, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:         "Milk",
		ExpiryDate:   "2026-09-15",
		RemindBefore: &remindBefore,
		NotifyTime:   &notifyTime,
	}, userID)
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, repo.foods[id])
	assert.Equal(t, []uuid.UUID{id}, scheduler.scheduled)
}

func TestAddFoodItemRejectsBadInput(t *testing.T) {
	service, _, scheduler := newTestFoodService()
	userID := uuid.New().String()

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Milk",
		ExpiryDate: "15-09-2026",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	badTime := 2510
	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Milk",
		NotifyTime: &badTime,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidNotifyTime)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{Name: "Milk"}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	assert.Empty(t, scheduler.scheduled)
}

func TestUpdateFoodItemReschedules(t *testing.T) {
	service, repo, scheduler := newTestFoodService()
	userID := uuid.New()

	existing := &entities.FoodItem{ID: uuid.New(), UserID: userID, Name: "Cheese"}
	require.NoError(t, repo.AddFoodItem(context.Background(), existing))

	err := service.UpdateFoodItem(context.Background(), existing.ID.String(), domain.UpdateFoodItemRequest{
		ExpiryDate: "2026-10-01",
	}, userID.String())
	require.NoError(t, err)

	updated := repo.foods[existing.ID]
	require.NotNil(t, updated.ExpiryDate)
	assert.Equal(t, []uuid.UUID{existing.ID}, scheduler.scheduled)
}

func TestUpdateFoodItemEnforcesOwnership(t *testing.T) {
	service, repo, scheduler := newTestFoodService()

	existing := &entities.FoodItem{ID: uuid.New(), UserID: uuid.New(), Name: "Cheese"}
	require.NoError(t, repo.AddFoodItem(context.Background(), existing))

	err := service.UpdateFoodItem(context.Background(), existing.ID.String(), domain.UpdateFoodItemRequest{
		Name: "Stolen cheese",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	assert.Empty(t, scheduler.scheduled)
}

func TestDeleteFoodItemCancelsBeforeDelete(t *testing.T) {
	service, repo, scheduler := newTestFoodService()
	userID := uuid.New()

	existing := &entities.FoodItem{ID: uuid.New(), UserID: userID, Name: "Juice"}
	require.NoError(t, repo.AddFoodItem(context.Background(), existing))

	require.NoError(t, service.DeleteFoodItem(context.Background(), existing.ID.String(), userID.String()))

	assert.Equal(t, []uuid.UUID{existing.ID}, scheduler.canceled)
	assert.Nil(t, repo.foods[existing.ID])
}

func TestDeleteFoodItemMissingItem(t *testing.T) {
	service, _, _ := newTestFoodService()

	err := service.DeleteFoodItem(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestGetExpiringFoodItems(t *testing.T) {
	service, repo, _ := newTestFoodService()
	userID := uuid.New()

	soon := time.Now().AddDate(0, 0, 2)
	far := time.Now().AddDate(0, 0, 30)
	require.NoError(t, repo.AddFoodItem(context.Background(), &entities.FoodItem{
		ID: uuid.New(), UserID: userID, Name: "Soon", ExpiryDate: &soon,
	}))
	require.NoError(t, repo.AddFoodItem(context.Background(), &entities.FoodItem{
		ID: uuid.New(), UserID: userID, Name: "Far", ExpiryDate: &far,
	}))

	items, err := service.GetExpiringFoodItems(context.Background(), userID.String(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Soon", items[0].Name)
}

func TestGetDashboardStats(t *testing.T) {
	service, repo, _ := newTestFoodService()
	userID := uuid.New()

	expired := time.Now().AddDate(0, 0, -1)
	soon := time.Now().AddDate(0, 0, 3)
	far := time.Now().AddDate(0, 0, 60)
	for _, expiry := range []*time.Time{&expired, &soon, &far, nil} {
		require.NoError(t, repo.AddFoodItem(context.Background(), &entities.FoodItem{
			ID: uuid.New(), UserID: userID, Name: "Item", ExpiryDate: expiry,
		}))
	}

	stats, err := service.GetDashboardStats(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalItems)
	assert.Equal(t, int64(1), stats.ExpiringItems)
	assert.Equal(t, int64(1), stats.ExpiredItems)
}

func TestValidNotifyTime(t *testing.T) {
	assert.True(t, validNotifyTime(0))
	assert.True(t, validNotifyTime(800))
	assert.True(t, validNotifyTime(2359))
	assert.False(t, validNotifyTime(2360))
	assert.False(t, validNotifyTime(2400))
	assert.False(t, validNotifyTime(975))
}
