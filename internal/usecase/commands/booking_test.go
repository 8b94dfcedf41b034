//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"expertbook/internal/domain/booking"
	"expertbook/internal/infra"
	"expertbook/internal/notification"
	"expertbook/internal/pkg/errs"
	"expertbook/internal/realtime"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/shared"
	"expertbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnexpectedCall = errs.New("unexpected read in test")

// fakeReads answers the in-transaction snapshot lookups with the closures a
// test wires in; anything else fails loudly.
type fakeReads struct {
	userByID            func(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
	userByEmail         func(ctx context.Context, email string) (*shared.UserSnapshot, error)
	expertByID          func(ctx context.Context, id uuid.UUID) (*shared.ExpertSnapshot, error)
	expertByUserID      func(ctx context.Context, userID uuid.UUID) (*shared.ExpertSnapshot, error)
	eventTypeByID       func(ctx context.Context, id uuid.UUID) (*shared.EventTypeSnapshot, error)
	bookingByID         func(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error)
	activeBookingExists func(ctx context.Context, expertID uuid.UUID, date, timeSlot string) (bool, error)
}

func (f *fakeReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if f.userByID == nil {
		return nil, errUnexpectedCall
	}
	return f.userByID(ctx, id)
}

func (f *fakeReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	if f.userByEmail == nil {
		return nil, errUnexpectedCall
	}
	return f.userByEmail(ctx, email)
}

func (f *fakeReads) ExpertByID(ctx context.Context, id uuid.UUID) (*shared.ExpertSnapshot, error) {
	if f.expertByID == nil {
		return nil, errUnexpectedCall
	}
	return f.expertByID(ctx, id)
}

func (f *fakeReads) ExpertByUserID(ctx context.Context, userID uuid.UUID) (*shared.ExpertSnapshot, error) {
	if f.expertByUserID == nil {
		return nil, errUnexpectedCall
	}
	return f.expertByUserID(ctx, userID)
}

func (f *fakeReads) EventTypeByID(ctx context.Context, id uuid.UUID) (*shared.EventTypeSnapshot, error) {
	if f.eventTypeByID == nil {
		return nil, errUnexpectedCall
	}
	return f.eventTypeByID(ctx, id)
}

func (f *fakeReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if f.bookingByID == nil {
		return nil, errUnexpectedCall
	}
	return f.bookingByID(ctx, id)
}

func (f *fakeReads) ActiveBookingExists(ctx context.Context, expertID uuid.UUID, date, timeSlot string) (bool, error) {
	if f.activeBookingExists == nil {
		return false, errUnexpectedCall
	}
	return f.activeBookingExists(ctx, expertID, date, timeSlot)
}

type fakeBookingRepo struct {
	created       []*booking.Booking
	createErr     error
	statusUpdates []booking.Status
	updateErr     error
}

func (f *fakeBookingRepo) Create(_ context.Context, _ infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, b)
	return b.ID(), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ infra.DBTX, _ uuid.UUID, status booking.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeTx struct {
	reads    *fakeReads
	bookings *fakeBookingRepo
}

func (f *fakeTx) Users() shared.UserRepository                 { return nil }
func (f *fakeTx) Experts() shared.ExpertRepository             { return nil }
func (f *fakeTx) EventTypes() shared.EventTypeRepository       { return nil }
func (f *fakeTx) Availability() shared.AvailabilityRepository  { return nil }
func (f *fakeTx) Bookings() shared.BookingRepository           { return f.bookings }
func (f *fakeTx) Reads() shared.CommandReads                   { return f.reads }
func (f *fakeTx) DB() infra.DBTX                               { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

type fakePublisher struct {
	events []realtime.Event
}

func (f *fakePublisher) Publish(ev realtime.Event) { f.events = append(f.events, ev) }

type fakeSender struct {
	messages []notification.Message
	err      error
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.messages = append(f.messages, msg)
	return f.err
}

// Message aliases the notification payload so the fake satisfies the Sender
// interface without repeating the import path everywhere.
type Message = notification.Message

type bookingFixture struct {
	reads     *fakeReads
	repo      *fakeBookingRepo
	publisher *fakePublisher
	sender    *fakeSender
	uc        commands.BookingCommands
}

func newBookingFixture() *bookingFixture {
	reads := &fakeReads{}
	repo := &fakeBookingRepo{}
	pub := &fakePublisher{}
	sender := &fakeSender{}
	uow := &fakeUoW{tx: &fakeTx{reads: reads, bookings: repo}}
	return &bookingFixture{
		reads:     reads,
		repo:      repo,
		publisher: pub,
		sender:    sender,
		uc:        commands.NewBookingCommands(uow, pub, sender),
	}
}

func expertExists(id uuid.UUID) func(context.Context, uuid.UUID) (*shared.ExpertSnapshot, error) {
	return func(_ context.Context, got uuid.UUID) (*shared.ExpertSnapshot, error) {
		if got != id {
			return nil, infra.WrapRepoErr("expert not found", nil, infra.KindNotFound)
		}
		return &shared.ExpertSnapshot{ID: id, Timezone: "UTC"}, nil
	}
}

func slotFree(_ context.Context, _ uuid.UUID, _, _ string) (bool, error)  { return false, nil }
func slotTaken(_ context.Context, _ uuid.UUID, _, _ string) (bool, error) { return true, nil }

// ===== TestCreateBooking =====

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	expertID := uuid.New()
	clientID := uuid.New()

	baseRequest := func() commands.CreateBookingRequest {
		return commands.CreateBookingRequest{
			ExpertID:   expertID,
			Date:       "2026-09-07",
			TimeSlot:   "10:00",
			GuestName:  "Test Client",
			GuestEmail: "client@example.com",
		}
	}

	t.Run("success: reserves the slot and broadcasts after commit", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.expertByID = expertExists(expertID)
		f.reads.activeBookingExists = slotFree

		result, err := f.uc.CreateBooking(ctx, baseRequest(), clientID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.NotEqual(t, uuid.Nil, result.BookingID)
		assert.True(t, strings.HasPrefix(result.MeetingLink, "https://meet.expertbook.app/"))

		require.Len(t, f.repo.created, 1)
		created := f.repo.created[0]
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, clientID, created.ClientID())

		require.Len(t, f.publisher.events, 1)
		ev := f.publisher.events[0]
		assert.Equal(t, realtime.EventSlotBooked, ev.Type)
		assert.Equal(t, expertID.String(), ev.ExpertID)
		assert.Equal(t, "2026-09-07", ev.Date)
		assert.Equal(t, "10:00", ev.TimeSlot)

		require.Len(t, f.sender.messages, 1)
		assert.Equal(t, "client@example.com", f.sender.messages[0].RecipientEmail)
	})

	t.Run("error: occupied tuple is rejected inside the transaction", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.expertByID = expertExists(expertID)
		f.reads.activeBookingExists = slotTaken

		_, err := f.uc.CreateBooking(ctx, baseRequest(), clientID)
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Empty(t, f.repo.created)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("error: unique index backstops the existence check race", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.expertByID = expertExists(expertID)
		f.reads.activeBookingExists = slotFree
		f.repo.createErr = infra.WrapRepoErr("active slot taken", nil, infra.KindConflict)

		_, err := f.uc.CreateBooking(ctx, baseRequest(), clientID)
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("error: unknown expert", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.expertByID = expertExists(uuid.New())
		f.reads.activeBookingExists = slotFree

		_, err := f.uc.CreateBooking(ctx, baseRequest(), clientID)
		assert.ErrorIs(t, err, commands.ErrExpertNotFound)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("error: malformed slot fails before any transaction", func(t *testing.T) {
		f := newBookingFixture()
		req := baseRequest()
		req.Date = "next tuesday"

		_, err := f.uc.CreateBooking(ctx, req, clientID)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("event type sets the end time from its duration", func(t *testing.T) {
		f := newBookingFixture()
		eventTypeID := uuid.New()
		f.reads.expertByID = expertExists(expertID)
		f.reads.activeBookingExists = slotFree
		f.reads.eventTypeByID = func(_ context.Context, id uuid.UUID) (*shared.EventTypeSnapshot, error) {
			require.Equal(t, eventTypeID, id)
			return &shared.EventTypeSnapshot{ID: id, ExpertID: expertID, DurationMinutes: 45}, nil
		}

		req := baseRequest()
		req.EventTypeID = &eventTypeID

		_, err := f.uc.CreateBooking(ctx, req, clientID)
		require.NoError(t, err)
		require.Len(t, f.repo.created, 1)
		assert.Equal(t, "10:45", f.repo.created[0].EndTime())
	})

	t.Run("error: event type of a different expert", func(t *testing.T) {
		f := newBookingFixture()
		eventTypeID := uuid.New()
		f.reads.expertByID = expertExists(expertID)
		f.reads.activeBookingExists = slotFree
		f.reads.eventTypeByID = func(_ context.Context, id uuid.UUID) (*shared.EventTypeSnapshot, error) {
			return &shared.EventTypeSnapshot{ID: id, ExpertID: uuid.New(), DurationMinutes: 30}, nil
		}

		req := baseRequest()
		req.EventTypeID = &eventTypeID

		_, err := f.uc.CreateBooking(ctx, req, clientID)
		assert.ErrorIs(t, err, commands.ErrEventTypeNotOwned)
	})

	t.Run("notification failure never fails the booking", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.expertByID = expertExists(expertID)
		f.reads.activeBookingExists = slotFree
		f.sender.err = errs.New("smtp unreachable")

		result, err := f.uc.CreateBooking(ctx, baseRequest(), clientID)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, f.publisher.events, 1)
	})
}

// ===== TestUpdateStatus =====

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	bookingID := uuid.New()
	expertID := uuid.New()

	snapshotFor := func(status string, clientID uuid.UUID) func(context.Context, uuid.UUID) (*shared.BookingSnapshot, error) {
		return func(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
			if id != bookingID {
				return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
			}
			return builder.NewBookingBuilder().
				WithID(bookingID).
				WithClientID(clientID).
				WithExpertID(expertID).
				WithStatus(status).
				BuildSnapshot(), nil
		}
	}

	t.Run("success: confirming keeps the slot occupied", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = snapshotFor("Pending", actorID)

		require.NoError(t, f.uc.UpdateStatus(ctx, bookingID, actorID, "Confirmed"))
		assert.Equal(t, []booking.Status{booking.StatusConfirmed}, f.repo.statusUpdates)
		assert.Empty(t, f.publisher.events, "no freed event while the tuple is still held")
	})

	t.Run("success: cancelling frees the slot and broadcasts", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = snapshotFor("Confirmed", actorID)

		require.NoError(t, f.uc.UpdateStatus(ctx, bookingID, actorID, "Cancelled"))

		require.Len(t, f.publisher.events, 1)
		ev := f.publisher.events[0]
		assert.Equal(t, realtime.EventSlotFreed, ev.Type)
		assert.Equal(t, expertID.String(), ev.ExpertID)
	})

	t.Run("error: lifecycle rejects skipping confirmation", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = snapshotFor("Pending", actorID)

		err := f.uc.UpdateStatus(ctx, bookingID, actorID, "Completed")
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
		assert.Empty(t, f.repo.statusUpdates)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("error: someone else's booking", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = snapshotFor("Pending", uuid.New())

		err := f.uc.UpdateStatus(ctx, bookingID, actorID, "Cancelled")
		assert.ErrorIs(t, err, commands.ErrBookingNotOwned)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = snapshotFor("Pending", actorID)

		err := f.uc.UpdateStatus(ctx, uuid.New(), actorID, "Cancelled")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("error: unknown status string", func(t *testing.T) {
		f := newBookingFixture()
		err := f.uc.UpdateStatus(ctx, bookingID, actorID, "archived")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

// ===== TestReschedule =====

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	bookingID := uuid.New()
	expertID := uuid.New()

	ownSnapshot := func(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
		if id != bookingID {
			return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		}
		return builder.NewBookingBuilder().
			WithID(bookingID).
			WithClientID(actorID).
			WithExpertID(expertID).
			WithDate("2026-09-07").
			WithTimeSlot("10:00").
			BuildSnapshot(), nil
	}

	req := commands.RescheduleRequest{Date: "2026-09-08", TimeSlot: "11:00"}

	t.Run("success: old slot freed, new slot booked, record back-linked", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = ownSnapshot
		f.reads.activeBookingExists = slotFree

		result, err := f.uc.Reschedule(ctx, bookingID, actorID, req)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, []booking.Status{booking.StatusRescheduled}, f.repo.statusUpdates)

		require.Len(t, f.repo.created, 1)
		replacement := f.repo.created[0]
		assert.Equal(t, result.NewBookingID, replacement.ID())
		assert.Equal(t, "2026-09-08", replacement.Slot().Date())
		require.NotNil(t, replacement.RescheduledFrom())
		assert.Equal(t, bookingID, *replacement.RescheduledFrom())

		require.Len(t, f.publisher.events, 2)
		assert.Equal(t, realtime.EventSlotFreed, f.publisher.events[0].Type)
		assert.Equal(t, "10:00", f.publisher.events[0].TimeSlot)
		assert.Equal(t, realtime.EventSlotBooked, f.publisher.events[1].Type)
		assert.Equal(t, "11:00", f.publisher.events[1].TimeSlot)
	})

	t.Run("error: target slot occupied", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = ownSnapshot
		f.reads.activeBookingExists = slotTaken

		_, err := f.uc.Reschedule(ctx, bookingID, actorID, req)
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("error: rescheduling onto the current slot", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = ownSnapshot
		f.reads.activeBookingExists = slotFree

		_, err := f.uc.Reschedule(ctx, bookingID, actorID,
			commands.RescheduleRequest{Date: "2026-09-07", TimeSlot: "10:00"})
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("error: race on the new tuple maps to slot taken", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = ownSnapshot
		f.reads.activeBookingExists = slotFree
		f.repo.createErr = infra.WrapRepoErr("active slot taken", nil, infra.KindConflict)

		_, err := f.uc.Reschedule(ctx, bookingID, actorID, req)
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("error: not the owner", func(t *testing.T) {
		f := newBookingFixture()
		f.reads.bookingByID = func(_ context.Context, _ uuid.UUID) (*shared.BookingSnapshot, error) {
			return builder.NewBookingBuilder().WithClientID(uuid.New()).BuildSnapshot(), nil
		}

		_, err := f.uc.Reschedule(ctx, bookingID, actorID, req)
		assert.ErrorIs(t, err, commands.ErrBookingNotOwned)
	})
}
