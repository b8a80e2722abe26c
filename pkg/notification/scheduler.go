package notification

import (
	"context"
	"errors"
	"log"
	"time"

	"foodkeeper-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultNotifyHour   = 8
	defaultNotifyMinute = 0
)

type (
	// SchedulerService computes reminder and expiry instants for a food item,
	// keeps the FoodNotification record in sync, and arms the platform alarms.
	SchedulerService interface {
		ScheduleFood(ctx context.Context, food *entities.FoodItem) error
		CancelFood(ctx context.Context, foodID uuid.UUID) error
		MarkSent(ctx context.Context, foodID uuid.UUID, kind AlarmKind) error
		RescheduleAll(ctx context.Context) error
	}

	// FoodSource is the slice of the food repository the scheduler needs.
	// food.FoodRepository satisfies it.
	FoodSource interface {
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItemsWithExpiry(ctx context.Context) ([]*entities.FoodItem, error)
	}

	schedulerService struct {
		notificationRepository NotificationRepository
		foodSource             FoodSource
		alarms                 AlarmPort
	}
)

func NewSchedulerService(
	notificationRepository NotificationRepository,
	foodSource FoodSource,
	alarms AlarmPort,
) SchedulerService {
	return &schedulerService{
		notificationRepository: notificationRepository,
		foodSource:             foodSource,
		alarms:                 alarms,
	}
}

func (s *schedulerService) ScheduleFood(ctx context.Context, food *entities.FoodItem) error {
	if food.ExpiryDate == nil {
		// An item without a deadline has nothing to schedule.
		return nil
	}

	remindBefore := 0
	if food.RemindBefore != nil {
		remindBefore = *food.RemindBefore
	}

	expiryAt := notifyTimeOn(*food.ExpiryDate, 0, food.NotifyTime)
	var reminderAt *time.Time
	if remindBefore > 0 {
		t := notifyTimeOn(*food.ExpiryDate, remindBefore, food.NotifyTime)
		reminderAt = &t
	}

	existing, err := s.notificationRepository.GetByFoodID(ctx, food.ID)
	switch {
	case err == nil:
		// Cancel live alarms before the record changes under them.
		s.alarms.Cancel(AlarmKey{Kind: KindReminder, FoodID: food.ID})
		s.alarms.Cancel(AlarmKey{Kind: KindExpiry, FoodID: food.ID})

		// A changed instant is a new notification obligation; an unchanged
		// one keeps its sent flag so the user is not notified twice.
		if !equalInstants(existing.ScheduledReminderAt, reminderAt) {
			existing.ReminderSent = false
		}
		if !equalInstants(existing.ScheduledExpiryAt, &expiryAt) {
			existing.ExpirySent = false
		}
		existing.ScheduledReminderAt = reminderAt
		existing.ScheduledExpiryAt = &expiryAt

		if err := s.notificationRepository.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := &entities.FoodNotification{
			ID:                  uuid.New(),
			FoodID:              food.ID,
			ScheduledReminderAt: reminderAt,
			ScheduledExpiryAt:   &expiryAt,
		}
		if err := s.notificationRepository.Insert(ctx, record); err != nil {
			return err
		}
	default:
		return err
	}

	s.armAlarms(food.ID, food.Name, reminderAt, expiryAt)
	return nil
}

// armAlarms programs alarms for instants that are still in the future. A past
// instant stays on the record but never wakes anything. Arm failures are
// logged and swallowed: the record already holds the intended schedule, so a
// later re-schedule can arm it retroactively.
func (s *schedulerService) armAlarms(foodID uuid.UUID, name string, reminderAt *time.Time, expiryAt time.Time) {
	now := time.Now()

	if reminderAt != nil && reminderAt.After(now) {
		if err := s.alarms.Arm(AlarmKey{Kind: KindReminder, FoodID: foodID}, *reminderAt); err != nil {
			log.Printf("failed to arm reminder alarm for %s: %v", name, err)
		}
	}
	if expiryAt.After(now) {
		if err := s.alarms.Arm(AlarmKey{Kind: KindExpiry, FoodID: foodID}, expiryAt); err != nil {
			log.Printf("failed to arm expiry alarm for %s: %v", name, err)
		}
	}
}

func (s *schedulerService) CancelFood(ctx context.Context, foodID uuid.UUID) error {
	s.alarms.Cancel(AlarmKey{Kind: KindReminder, FoodID: foodID})
	s.alarms.Cancel(AlarmKey{Kind: KindExpiry, FoodID: foodID})

	return s.notificationRepository.DeleteByFoodID(ctx, foodID)
}

func (s *schedulerService) MarkSent(ctx context.Context, foodID uuid.UUID, kind AlarmKind) error {
	if kind == KindExpiry {
		return s.notificationRepository.MarkExpirySent(ctx, foodID)
	}
	return s.notificationRepository.MarkReminderSent(ctx, foodID)
}

// RescheduleAll re-derives every future-facing alarm from the persisted food
// items. In-process timers are lost on restart, so this runs once at startup.
// A failure for one item never blocks the rest.
func (s *schedulerService) RescheduleAll(ctx context.Context) error {
	foods, err := s.foodSource.GetFoodItemsWithExpiry(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	rescheduled := 0
	for _, food := range foods {
		if food.ExpiryDate == nil || !food.ExpiryDate.After(now) {
			continue
		}
		if err := s.ScheduleFood(ctx, food); err != nil {
			log.Printf("failed to reschedule notifications for %s: %v", food.Name, err)
			continue
		}
		rescheduled++
	}

	log.Printf("rescheduled notifications for %d food items", rescheduled)
	return nil
}

// notifyTimeOn walks daysBefore calendar days back from the expiry date and
// pins the clock to the encoded hour*100+minute time of day (08:00 when
// unset), zeroing seconds. AddDate keeps the arithmetic in calendar days so
// daylight-saving transitions do not shift the target day.
func notifyTimeOn(expiry time.Time, daysBefore int, hhmm *int) time.Time {
	day := expiry.AddDate(0, 0, -daysBefore)

	hour, minute := defaultNotifyHour, defaultNotifyMinute
	if hhmm != nil {
		hour = *hhmm / 100
		minute = *hhmm % 100
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// equalInstants compares two optional instants by exact equality. Even a
// time-of-day-only change counts as a new schedule and re-arms the flag.
func equalInstants(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
