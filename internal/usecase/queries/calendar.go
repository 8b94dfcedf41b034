package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"expertbook/internal/domain/availability"
	"expertbook/internal/pkg/clock"
	"expertbook/internal/pkg/errs"
	"expertbook/internal/pkg/ics"
)

var ErrCalendarUnavailable = errs.New("calendar rendering failed")

type CalendarQueries interface {
	// BookingCalendar renders an iCalendar file for an owned booking. The
	// stored date and time are viewer-local strings, so the caller supplies
	// the zone to anchor them in; empty means UTC.
	BookingCalendar(ctx context.Context, actorID, bookingID uuid.UUID, viewerZone string) (string, error)
}

type calendarQueriesImpl struct {
	bookings BookingQueries
	clock    clock.Clock
}

func NewCalendarQueries(bookings BookingQueries, clk clock.Clock) CalendarQueries {
	return &calendarQueriesImpl{bookings: bookings, clock: clk}
}

func (q *calendarQueriesImpl) BookingCalendar(ctx context.Context, actorID, bookingID uuid.UUID, viewerZone string) (string, error) {
	view, err := q.bookings.GetByID(ctx, actorID, bookingID)
	if err != nil {
		return "", err
	}

	loc := time.UTC
	if viewerZone != "" {
		loc, err = time.LoadLocation(viewerZone)
		if err != nil {
			return "", ErrInvalidViewerZone
		}
	}

	start, err := time.ParseInLocation(availability.DateLayout+" "+availability.SlotLayout, view.Date+" "+view.TimeSlot, loc)
	if err != nil {
		return "", errs.Mark(err, ErrCalendarUnavailable)
	}

	end := start.Add(DefaultSlotMinutes * time.Minute)
	if view.EndTime != "" {
		if endClock, perr := time.ParseInLocation(availability.DateLayout+" "+availability.SlotLayout, view.Date+" "+view.EndTime, loc); perr == nil {
			end = endClock
			if end.Before(start) {
				// Sessions that run past midnight end on the next day.
				end = end.AddDate(0, 0, 1)
			}
		}
	}

	summary := fmt.Sprintf("Session with %s", view.ExpertName)
	if view.EventTypeName != nil {
		summary = fmt.Sprintf("%s with %s", *view.EventTypeName, view.ExpertName)
	}

	event := ics.Event{
		UID:         view.ID.String() + "@expertbook",
		Start:       start,
		End:         end,
		Summary:     summary,
		Description: view.GuestNotes,
		URL:         view.MeetingLink,
		Organizer:   ics.Attendee{Name: view.ExpertName},
		Attendees: []ics.Attendee{
			{Name: view.GuestName, Email: view.GuestEmail},
		},
	}
	return ics.Render(event, q.clock.Now()), nil
}
