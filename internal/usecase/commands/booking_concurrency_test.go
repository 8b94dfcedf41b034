//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"expertbook/internal/domain/booking"
	"expertbook/internal/infra"
	"expertbook/internal/realtime"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// raceBookingRepo admits exactly one active booking per tuple, the way the
// partial unique index does: inserts conflict while a Pending or Confirmed
// booking holds the tuple, and a move to any inactive status releases it.
type raceBookingRepo struct {
	mu      sync.Mutex
	taken   map[string]bool
	byID    map[uuid.UUID]*booking.Booking
	status  map[uuid.UUID]booking.Status
	created []*booking.Booking
}

func newRaceBookingRepo() *raceBookingRepo {
	return &raceBookingRepo{
		taken:  make(map[string]bool),
		byID:   make(map[uuid.UUID]*booking.Booking),
		status: make(map[uuid.UUID]booking.Status),
	}
}

func tupleKey(expertID uuid.UUID, date, timeSlot string) string {
	return expertID.String() + "|" + date + "|" + timeSlot
}

func (f *raceBookingRepo) Create(_ context.Context, _ infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := tupleKey(b.Slot().ExpertID(), b.Slot().Date(), b.Slot().TimeSlot())
	if f.taken[key] {
		return uuid.Nil, infra.WrapRepoErr("duplicate active booking", nil, infra.KindConflict)
	}
	f.taken[key] = true
	f.byID[b.ID()] = b
	f.status[b.ID()] = b.Status()
	f.created = append(f.created, b)
	return b.ID(), nil
}

func (f *raceBookingRepo) UpdateStatus(_ context.Context, _ infra.DBTX, id uuid.UUID, status booking.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.byID[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	f.status[id] = status
	if !status.IsActive() {
		delete(f.taken, tupleKey(b.Slot().ExpertID(), b.Slot().Date(), b.Slot().TimeSlot()))
	}
	return nil
}

func (f *raceBookingRepo) activeExists(_ context.Context, expertID uuid.UUID, date, timeSlot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.taken[tupleKey(expertID, date, timeSlot)], nil
}

func (f *raceBookingRepo) snapshot(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &shared.BookingSnapshot{
		ID:          b.ID(),
		ClientID:    b.ClientID(),
		ExpertID:    b.Slot().ExpertID(),
		Date:        b.Slot().Date(),
		TimeSlot:    b.Slot().TimeSlot(),
		MeetingLink: b.MeetingLink(),
		Status:      f.status[id].String(),
		GuestName:   b.Contact().Name(),
		GuestEmail:  b.Contact().Email(),
	}, nil
}

type raceTx struct {
	reads    *fakeReads
	bookings *raceBookingRepo
}

func (f *raceTx) Users() shared.UserRepository                { return nil }
func (f *raceTx) Experts() shared.ExpertRepository            { return nil }
func (f *raceTx) EventTypes() shared.EventTypeRepository      { return nil }
func (f *raceTx) Availability() shared.AvailabilityRepository { return nil }
func (f *raceTx) Bookings() shared.BookingRepository          { return f.bookings }
func (f *raceTx) Reads() shared.CommandReads                  { return f.reads }
func (f *raceTx) DB() infra.DBTX                              { return nil }

type raceUoW struct {
	tx *raceTx
}

func (f *raceUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

type racePublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (f *racePublisher) Publish(ev realtime.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

type raceSender struct {
	mu       sync.Mutex
	messages []Message
}

func (f *raceSender) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

// ===== TestCreateBookingConcurrent =====

func TestCreateBookingConcurrent(t *testing.T) {
	const contenders = 8

	ctx := context.Background()
	expertID := uuid.New()

	reads := &fakeReads{
		expertByID: expertExists(expertID),
		// The pre-check sees a free slot for everyone; only the repo's
		// uniqueness guarantee decides the winner.
		activeBookingExists: slotFree,
	}
	repo := newRaceBookingRepo()
	pub := &racePublisher{}
	sender := &raceSender{}
	uow := &raceUoW{tx: &raceTx{reads: reads, bookings: repo}}
	uc := commands.NewBookingCommands(uow, pub, sender)

	req := commands.CreateBookingRequest{
		ExpertID:   expertID,
		Date:       "2026-09-07",
		TimeSlot:   "10:00",
		GuestName:  "Test Client",
		GuestEmail: "client@example.com",
	}

	errsCh := make(chan error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateBooking(ctx, req, uuid.New())
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	winners, losers := 0, 0
	for err := range errsCh {
		if err == nil {
			winners++
			continue
		}
		require.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		losers++
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, contenders-1, losers)
	assert.Len(t, repo.created, 1)
	assert.Len(t, pub.events, 1)
	assert.Len(t, sender.messages, 1)
}

// ===== TestCancelledSlotCanBeRebooked =====

func TestCancelledSlotCanBeRebooked(t *testing.T) {
	ctx := context.Background()
	expertID := uuid.New()
	firstClient := uuid.New()
	secondClient := uuid.New()

	repo := newRaceBookingRepo()
	reads := &fakeReads{
		expertByID:          expertExists(expertID),
		activeBookingExists: repo.activeExists,
		bookingByID:         repo.snapshot,
	}
	pub := &racePublisher{}
	sender := &raceSender{}
	uow := &raceUoW{tx: &raceTx{reads: reads, bookings: repo}}
	uc := commands.NewBookingCommands(uow, pub, sender)

	req := commands.CreateBookingRequest{
		ExpertID:   expertID,
		Date:       "2026-09-07",
		TimeSlot:   "10:00",
		GuestName:  "First Client",
		GuestEmail: "first@example.com",
	}

	first, err := uc.CreateBooking(ctx, req, firstClient)
	require.NoError(t, err)

	// The tuple is held, so a second reservation of the same slot conflicts.
	rival := req
	rival.GuestName = "Second Client"
	rival.GuestEmail = "second@example.com"
	_, err = uc.CreateBooking(ctx, rival, secondClient)
	require.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)

	// Cancelling releases the tuple.
	require.NoError(t, uc.UpdateStatus(ctx, first.BookingID, firstClient, "Cancelled"))

	second, err := uc.CreateBooking(ctx, rival, secondClient)
	require.NoError(t, err)
	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.Len(t, repo.created, 2)

	require.Len(t, pub.events, 3)
	assert.Equal(t, realtime.EventSlotBooked, pub.events[0].Type)
	assert.Equal(t, realtime.EventSlotFreed, pub.events[1].Type)
	assert.Equal(t, realtime.EventSlotBooked, pub.events[2].Type)
	for _, ev := range pub.events {
		assert.Equal(t, "2026-09-07", ev.Date)
		assert.Equal(t, "10:00", ev.TimeSlot)
	}
}
