package availability

import "time"

const (
	// DateLayout is the calendar-date key used everywhere a booking date is a
	// string: slot maps, booking tuples, wire payloads.
	DateLayout = "2006-01-02"
	// SlotLayout is the wall-clock label for a slot start.
	SlotLayout = "15:04"
)

// Slot is one bookable start-time candidate. Label and Date are viewer-local
// strings (the booking tuple is keyed on them); Start is the underlying
// instant, kept so callers can apply instant-based filters such as buffer
// lead time.
type Slot struct {
	Date  string
	Label string
	Start time.Time
}

// GenerateSlots expands the weekly template into concrete bookable slots for
// `days` consecutive viewer-local calendar dates starting at `from`
// (interpreted in viewerLoc).
//
// For each date the walk starts at viewer-local midnight and advances in
// fixed `duration` steps until the next midnight, so slot boundaries are
// stable across event types sharing a day. Each candidate instant is
// converted to the expert's zone at that instant, never via a cached offset,
// which keeps the mapping correct across DST transitions. A candidate is kept
// when the expert-local weekday's rule is open and the expert-local
// wall-clock time falls in [start, end).
//
// The result maps date strings to slots ordered by start time; dates with no
// qualifying slot are absent.
func GenerateSlots(week WeekSchedule, expertLoc, viewerLoc *time.Location, from time.Time, days int, duration time.Duration) map[string][]Slot {
	out := make(map[string][]Slot)
	if duration <= 0 || days <= 0 {
		return out
	}

	local := from.In(viewerLoc)
	year, month, day := local.Date()

	for d := 0; d < days; d++ {
		// time.Date normalizes day overflow and lands on the true local
		// midnight even when the date spans a DST change (23h/25h days).
		dayStart := time.Date(year, month, day+d, 0, 0, 0, 0, viewerLoc)
		nextMidnight := time.Date(year, month, day+d+1, 0, 0, 0, 0, viewerLoc)
		dateKey := dayStart.Format(DateLayout)

		for t := dayStart; t.Before(nextMidnight); t = t.Add(duration) {
			expertLocal := t.In(expertLoc)
			rule := week.Rule(expertLocal.Weekday())
			wallClock := ClockTime{value: expertLocal.Format(SlotLayout)}
			if !rule.Contains(wallClock) {
				continue
			}
			out[dateKey] = append(out[dateKey], Slot{
				Date:  dateKey,
				Label: t.In(viewerLoc).Format(SlotLayout),
				Start: t,
			})
		}
	}
	return out
}
