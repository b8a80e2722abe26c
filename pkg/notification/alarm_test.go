package notification

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlarmKindString(t *testing.T) {
	assert.Equal(t, "reminder", KindReminder.String())
	assert.Equal(t, "expiry", KindExpiry.String())
}

func TestTimerAlarmPortFires(t *testing.T) {
	fired := make(chan AlarmKey, 1)
	port := NewTimerAlarmPort(func(key AlarmKey) {
		fired <- key
	})

	key := AlarmKey{Kind: KindExpiry, FoodID: uuid.New()}
	require.NoError(t, port.Arm(key, time.Now().Add(10*time.Millisecond)))

	select {
	case got := <-fired:
		assert.Equal(t, key, got)
	case <-time.After(time.Second):
		t.Fatal("alarm did not fire")
	}
}

func TestTimerAlarmPortCancelStopsFiring(t *testing.T) {
	fired := make(chan AlarmKey, 1)
	port := NewTimerAlarmPort(func(key AlarmKey) {
		fired <- key
	})

	key := AlarmKey{Kind: KindReminder, FoodID: uuid.New()}
	require.NoError(t, port.Arm(key, time.Now().Add(30*time.Millisecond)))
	port.Cancel(key)

	select {
	case <-fired:
		t.Fatal("canceled alarm fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimerAlarmPortRearmReplaces(t *testing.T) {
	var mu sync.Mutex
	count := 0
	fired := make(chan struct{}, 2)
	port := NewTimerAlarmPort(func(AlarmKey) {
		mu.Lock()
		count++
		mu.Unlock()
		fired <- struct{}{}
	})

	key := AlarmKey{Kind: KindExpiry, FoodID: uuid.New()}
	require.NoError(t, port.Arm(key, time.Now().Add(time.Hour)))
	require.NoError(t, port.Arm(key, time.Now().Add(10*time.Millisecond)))

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("replacement alarm did not fire")
	}

	// Give the replaced timer a chance to misfire.
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestTimerAlarmPortKeysAreIndependent(t *testing.T) {
	fired := make(chan AlarmKey, 2)
	port := NewTimerAlarmPort(func(key AlarmKey) {
		fired <- key
	})

	foodID := uuid.New()
	reminder := AlarmKey{Kind: KindReminder, FoodID: foodID}
	expiry := AlarmKey{Kind: KindExpiry, FoodID: foodID}

	require.NoError(t, port.Arm(reminder, time.Now().Add(10*time.Millisecond)))
	require.NoError(t, port.Arm(expiry, time.Now().Add(20*time.Millisecond)))

	got := map[AlarmKey]bool{}
	for i := 0; i < 2; i++ {
		select {
		case key := <-fired:
			got[key] = true
		case <-time.After(time.Second):
			t.Fatal("expected both alarms to fire")
		}
	}
	assert.True(t, got[reminder])
	assert.True(t, got[expiry])
}
