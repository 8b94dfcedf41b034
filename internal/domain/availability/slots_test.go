//go:build unit

package availability_test

import (
	"testing"
	"time"

	"expertbook/internal/domain/availability"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func labels(slots []availability.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

// ===== TestGenerateSlots =====

func TestGenerateSlots(t *testing.T) {
	week := availability.DefaultWeek()

	t.Run("same zone weekday", func(t *testing.T) {
		utc := time.UTC
		from := time.Date(2026, 9, 7, 0, 0, 0, 0, utc) // Monday

		got := availability.GenerateSlots(week, utc, utc, from, 1, time.Hour)

		require.Contains(t, got, "2026-09-07")
		want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
		if diff := cmp.Diff(want, labels(got["2026-09-07"])); diff != "" {
			t.Errorf("slot labels mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("closed day is absent from the result", func(t *testing.T) {
		utc := time.UTC
		from := time.Date(2026, 9, 5, 0, 0, 0, 0, utc) // Saturday

		got := availability.GenerateSlots(week, utc, utc, from, 1, time.Hour)
		assert.Empty(t, got)
	})

	t.Run("viewer ahead of expert sees evening slots", func(t *testing.T) {
		// Expert works 09:00-17:00 in New York (EDT, UTC-4 in September);
		// a viewer in Kolkata (UTC+5:30) is 9h30m ahead, so the window
		// lands on 18:30-02:30 viewer time. Only the part before viewer
		// midnight belongs to the requested Monday.
		newYork := mustLoad(t, "America/New_York")
		kolkata := mustLoad(t, "Asia/Kolkata")
		from := time.Date(2026, 9, 7, 0, 0, 0, 0, kolkata) // Monday

		got := availability.GenerateSlots(week, newYork, kolkata, from, 1, 30*time.Minute)

		require.Contains(t, got, "2026-09-07")
		slots := got["2026-09-07"]
		require.Len(t, slots, 11)
		assert.Equal(t, "18:30", slots[0].Label)
		assert.Equal(t, "23:30", slots[len(slots)-1].Label)

		// Every slot maps back to the expert's open window.
		for _, s := range slots {
			expertLocal := s.Start.In(newYork).Format("15:04")
			assert.GreaterOrEqual(t, expertLocal, "09:00", s.Label)
			assert.Less(t, expertLocal, "17:00", s.Label)
		}
	})

	t.Run("offset tracks the DST transition", func(t *testing.T) {
		// New York falls back on 2026-11-01. The same 09:00 expert start is
		// 13:00 UTC on the Friday before and 14:00 UTC on the Monday after.
		newYork := mustLoad(t, "America/New_York")
		utc := time.UTC

		before := availability.GenerateSlots(week, newYork, utc,
			time.Date(2026, 10, 30, 0, 0, 0, 0, utc), 1, time.Hour)
		require.Contains(t, before, "2026-10-30")
		assert.Equal(t, "13:00", before["2026-10-30"][0].Label)

		after := availability.GenerateSlots(week, newYork, utc,
			time.Date(2026, 11, 2, 0, 0, 0, 0, utc), 1, time.Hour)
		require.Contains(t, after, "2026-11-02")
		assert.Equal(t, "14:00", after["2026-11-02"][0].Label)
	})

	t.Run("slot qualifies on its start even if it overruns the window", func(t *testing.T) {
		utc := time.UTC
		monday, err := availability.NewRule(time.Monday, true,
			availability.MustClockTime("09:00"), availability.MustClockTime("10:00"))
		require.NoError(t, err)
		narrow, err := availability.NewWeekSchedule([]availability.Rule{monday})
		require.NoError(t, err)

		from := time.Date(2026, 9, 7, 0, 0, 0, 0, utc)
		got := availability.GenerateSlots(narrow, utc, utc, from, 1, 45*time.Minute)

		// 09:45 starts inside the window even though it ends at 10:30.
		want := []string{"09:00", "09:45"}
		if diff := cmp.Diff(want, labels(got["2026-09-07"])); diff != "" {
			t.Errorf("slot labels mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("multiple days keyed by date", func(t *testing.T) {
		utc := time.UTC
		from := time.Date(2026, 9, 4, 0, 0, 0, 0, utc) // Friday

		got := availability.GenerateSlots(week, utc, utc, from, 4, time.Hour)

		// Friday and Monday are open; the weekend is not.
		assert.Contains(t, got, "2026-09-04")
		assert.Contains(t, got, "2026-09-07")
		assert.NotContains(t, got, "2026-09-05")
		assert.NotContains(t, got, "2026-09-06")
	})

	t.Run("degenerate inputs yield nothing", func(t *testing.T) {
		utc := time.UTC
		from := time.Date(2026, 9, 7, 0, 0, 0, 0, utc)

		assert.Empty(t, availability.GenerateSlots(week, utc, utc, from, 0, time.Hour))
		assert.Empty(t, availability.GenerateSlots(week, utc, utc, from, 1, 0))
	})
}
