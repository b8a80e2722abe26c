package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type AlarmKind int

const (
	KindReminder AlarmKind = iota
	KindExpiry
)

func (k AlarmKind) String() string {
	if k == KindExpiry {
		return "expiry"
	}
	return "reminder"
}

// AlarmKey identifies one wake-up per (kind, food) pair, so re-arming the
// same key replaces the previous alarm instead of duplicating it.
type AlarmKey struct {
	Kind   AlarmKind
	FoodID uuid.UUID
}

type (
	// AlarmPort arms and cancels exact one-shot wake-ups at absolute instants.
	AlarmPort interface {
		Arm(key AlarmKey, at time.Time) error
		Cancel(key AlarmKey)
	}

	// FiredFunc receives the key of an alarm whose instant has arrived.
	FiredFunc func(key AlarmKey)

	timerAlarmPort struct {
		mu      sync.Mutex
		timers  map[AlarmKey]*time.Timer
		onFired FiredFunc
	}
)

// NewTimerAlarmPort returns an in-process AlarmPort backed by time.AfterFunc.
// Timers do not survive a process restart; RescheduleAll re-derives them from
// the persisted food items at startup.
func NewTimerAlarmPort(onFired FiredFunc) AlarmPort {
	return &timerAlarmPort{
		timers:  make(map[AlarmKey]*time.Timer),
		onFired: onFired,
	}
}

func (p *timerAlarmPort) Arm(key AlarmKey, at time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.timers[key]; ok {
		existing.Stop()
	}

	p.timers[key] = time.AfterFunc(time.Until(at), func() {
		p.fire(key)
	})
	return nil
}

func (p *timerAlarmPort) Cancel(key AlarmKey) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.timers[key]; ok {
		existing.Stop()
		delete(p.timers, key)
	}
}

func (p *timerAlarmPort) fire(key AlarmKey) {
	p.mu.Lock()
	delete(p.timers, key)
	p.mu.Unlock()

	p.onFired(key)
}
