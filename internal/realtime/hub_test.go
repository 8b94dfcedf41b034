//go:build unit

package realtime_test

import (
	"testing"

	"expertbook/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== TestHub =====

func TestHub(t *testing.T) {
	expertA := "11111111-1111-1111-1111-111111111111"
	expertB := "22222222-2222-2222-2222-222222222222"

	t.Run("fans out to every watcher of the expert", func(t *testing.T) {
		hub := realtime.NewHub()
		sub1 := hub.Subscribe(expertA)
		sub2 := hub.Subscribe(expertA)
		other := hub.Subscribe(expertB)

		ev := realtime.SlotBooked(expertA, "2026-09-07", "10:00")
		hub.Publish(ev)

		assert.Equal(t, ev, <-sub1.C)
		assert.Equal(t, ev, <-sub2.C)
		assert.Empty(t, other.C)
	})

	t.Run("publish never blocks on a slow watcher", func(t *testing.T) {
		hub := realtime.NewHub()
		slow := hub.Subscribe(expertA)
		healthy := hub.Subscribe(expertA)

		// Overrun the slow watcher's buffer; the loop must still finish and
		// the healthy watcher must still see everything it has room for.
		for i := 0; i < 40; i++ {
			hub.Publish(realtime.SlotBooked(expertA, "2026-09-07", "10:00"))
		}

		assert.Equal(t, cap(slow.C), len(slow.C))
		assert.Equal(t, cap(healthy.C), len(healthy.C))
	})

	t.Run("unsubscribe closes the channel and drops the watcher", func(t *testing.T) {
		hub := realtime.NewHub()
		sub := hub.Subscribe(expertA)
		require.Equal(t, 1, hub.SubscriberCount(expertA))

		hub.Unsubscribe(sub)
		assert.Equal(t, 0, hub.SubscriberCount(expertA))

		_, open := <-sub.C
		assert.False(t, open)

		// Publishing after unsubscribe is a no-op, not a panic.
		hub.Publish(realtime.SlotBooked(expertA, "2026-09-07", "10:00"))
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		hub := realtime.NewHub()
		sub := hub.Subscribe(expertA)
		hub.Unsubscribe(sub)
		hub.Unsubscribe(sub)
	})

	t.Run("events are scoped per expert", func(t *testing.T) {
		hub := realtime.NewHub()
		subA := hub.Subscribe(expertA)
		subB := hub.Subscribe(expertB)

		hub.Publish(realtime.SlotFreed(expertB, "2026-09-07", "15:00"))

		assert.Empty(t, subA.C)
		got := <-subB.C
		assert.Equal(t, realtime.EventSlotFreed, got.Type)
		assert.Equal(t, expertB, got.ExpertID)
	})
}

// ===== TestEvent =====

func TestEvent(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ev := realtime.SlotBooked("abc", "2026-09-07", "10:00")
		got, err := realtime.UnmarshalEvent(ev.Marshal())
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	})

	t.Run("wire field names", func(t *testing.T) {
		raw := string(realtime.SlotFreed("abc", "2026-09-07", "10:00").Marshal())
		assert.Contains(t, raw, `"type":"slot_freed"`)
		assert.Contains(t, raw, `"expert_id":"abc"`)
		assert.Contains(t, raw, `"date":"2026-09-07"`)
		assert.Contains(t, raw, `"time_slot":"10:00"`)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := realtime.UnmarshalEvent([]byte("{"))
		assert.Error(t, err)
	})
}
