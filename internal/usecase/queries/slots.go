package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"expertbook/internal/domain/availability"
	"expertbook/internal/pkg/clock"
	"expertbook/internal/pkg/config"
	"expertbook/internal/pkg/errs"
)

var (
	ErrInvalidViewerZone = errs.New("invalid viewer timezone")
	ErrInvalidDateRange  = errs.New("invalid date range")
	ErrBadAvailability   = errs.New("stored availability rules are invalid")
)

const DefaultSlotMinutes = 30

type SlotsRequest struct {
	ExpertID      uuid.UUID
	ViewerZone    string // IANA name; empty means UTC
	From          string // YYYY-MM-DD in viewer zone; empty means today
	Days          int    // 0 means the configured default
	EventTypeSlug string // optional; picks the duration
}

// SlotsResult maps viewer-local dates to ordered bookable start labels.
type SlotsResult struct {
	ExpertID        uuid.UUID           `json:"expert_id"`
	Timezone        string              `json:"timezone"`
	DurationMinutes int                 `json:"duration_minutes"`
	Days            map[string][]string `json:"days"`
}

type SlotQueries interface {
	ListSlots(ctx context.Context, req SlotsRequest) (*SlotsResult, error)
}

type slotQueriesImpl struct {
	experts    ExpertReadStore
	eventTypes EventTypeReadStore
	bookings   BookingReadStore
	clock      clock.Clock
	cfg        config.BookingConfig
}

func NewSlotQueries(
	experts ExpertReadStore,
	eventTypes EventTypeReadStore,
	bookings BookingReadStore,
	clk clock.Clock,
	cfg config.BookingConfig,
) SlotQueries {
	return &slotQueriesImpl{
		experts:    experts,
		eventTypes: eventTypes,
		bookings:   bookings,
		clock:      clk,
		cfg:        cfg,
	}
}

// ListSlots runs the full pipeline: expand the weekly template into candidate
// slots for the viewer's date range, then subtract already-taken tuples and
// anything inside the expert's buffer window around an active booking.
func (q *slotQueriesImpl) ListSlots(ctx context.Context, req SlotsRequest) (*SlotsResult, error) {
	expertView, err := q.experts.FindByID(ctx, req.ExpertID)
	if err != nil {
		return nil, ErrExpertNotFound
	}

	expertLoc, err := time.LoadLocation(expertView.Timezone)
	if err != nil {
		return nil, errs.Wrap(err, "expert has an unloadable timezone")
	}

	viewerLoc := time.UTC
	if req.ViewerZone != "" {
		viewerLoc, err = time.LoadLocation(req.ViewerZone)
		if err != nil {
			return nil, ErrInvalidViewerZone
		}
	}

	days := req.Days
	if days <= 0 {
		days = q.cfg.DefaultRangeDays
	}
	if days > q.cfg.MaxRangeDays {
		return nil, ErrInvalidDateRange
	}

	from := q.clock.Now().In(viewerLoc)
	if req.From != "" {
		from, err = time.ParseInLocation(availability.DateLayout, req.From, viewerLoc)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
	}

	duration, err := q.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	week, err := q.loadWeek(ctx, req.ExpertID)
	if err != nil {
		return nil, err
	}

	slots := availability.GenerateSlots(week, expertLoc, viewerLoc, from, days, duration)

	toDate := from.AddDate(0, 0, days-1).Format(availability.DateLayout)
	active, err := q.bookings.ActiveSlots(ctx, req.ExpertID, from.Format(availability.DateLayout), toDate)
	if err != nil {
		return nil, err
	}

	filtered := filterSlots(slots, active, viewerLoc, time.Duration(expertView.BufferMinutes)*time.Minute)

	return &SlotsResult{
		ExpertID:        req.ExpertID,
		Timezone:        expertView.Timezone,
		DurationMinutes: int(duration / time.Minute),
		Days:            filtered,
	}, nil
}

func (q *slotQueriesImpl) resolveDuration(ctx context.Context, req SlotsRequest) (time.Duration, error) {
	if req.EventTypeSlug == "" {
		return DefaultSlotMinutes * time.Minute, nil
	}
	et, err := q.eventTypes.FindBySlug(ctx, req.ExpertID, req.EventTypeSlug)
	if err != nil {
		return 0, ErrEventTypeNotFound
	}
	return time.Duration(et.DurationMinutes) * time.Minute, nil
}

func (q *slotQueriesImpl) loadWeek(ctx context.Context, expertID uuid.UUID) (availability.WeekSchedule, error) {
	rows, err := q.experts.FindRules(ctx, expertID)
	if err != nil {
		return availability.WeekSchedule{}, err
	}

	rules := make([]availability.Rule, 0, len(rows))
	for _, row := range rows {
		if !row.IsOpen {
			rules = append(rules, availability.ClosedRule(time.Weekday(row.Weekday)))
			continue
		}
		start, cerr := availability.NewClockTime(row.Start)
		if cerr != nil {
			return availability.WeekSchedule{}, errs.Mark(cerr, ErrBadAvailability)
		}
		end, cerr := availability.NewClockTime(row.End)
		if cerr != nil {
			return availability.WeekSchedule{}, errs.Mark(cerr, ErrBadAvailability)
		}
		rule, cerr := availability.NewRule(time.Weekday(row.Weekday), true, start, end)
		if cerr != nil {
			return availability.WeekSchedule{}, errs.Mark(cerr, ErrBadAvailability)
		}
		rules = append(rules, rule)
	}

	week, err := availability.NewWeekSchedule(rules)
	if err != nil {
		return availability.WeekSchedule{}, errs.Mark(err, ErrBadAvailability)
	}
	return week, nil
}

// filterSlots removes taken tuples and, when buffer > 0, every candidate
// whose start lies strictly within buffer of an active booking's start.
// Stored tuples are viewer-local strings, so the taken set matches on the
// same strings the generator emits and buffer instants are resolved in the
// viewer's zone.
func filterSlots(slots map[string][]availability.Slot, active []ActiveSlotRow, viewerLoc *time.Location, buffer time.Duration) map[string][]string {
	taken := make(map[string]struct{}, len(active))
	starts := make([]time.Time, 0, len(active))
	for _, row := range active {
		taken[row.Date+"T"+row.TimeSlot] = struct{}{}
		if buffer > 0 {
			if t, err := time.ParseInLocation(availability.DateLayout+"T"+availability.SlotLayout, row.Date+"T"+row.TimeSlot, viewerLoc); err == nil {
				starts = append(starts, t)
			}
		}
	}

	out := make(map[string][]string, len(slots))
	for date, daySlots := range slots {
		for _, slot := range daySlots {
			if _, ok := taken[slot.Date+"T"+slot.Label]; ok {
				continue
			}
			if withinBuffer(slot.Start, starts, buffer) {
				continue
			}
			out[date] = append(out[date], slot.Label)
		}
	}
	return out
}

func withinBuffer(start time.Time, bookedStarts []time.Time, buffer time.Duration) bool {
	if buffer <= 0 {
		return false
	}
	for _, booked := range bookedStarts {
		diff := start.Sub(booked)
		if diff < 0 {
			diff = -diff
		}
		if diff < buffer {
			return true
		}
	}
	return false
}
