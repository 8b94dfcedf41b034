package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a reservation record. Only the creating client may mutate it,
// and every status change goes through Transition so the lifecycle rules
// cannot be bypassed.
type Booking struct {
	id              uuid.UUID
	clientID        uuid.UUID
	slot            SlotRef
	eventTypeID     *uuid.UUID
	contact         GuestContact
	endTime         string
	meetingLink     string
	status          Status
	rescheduledFrom *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(clientID uuid.UUID, slot SlotRef, eventTypeID *uuid.UUID, contact GuestContact, endTime, meetingLink string) *Booking {
	return &Booking{
		id:          uuid.New(),
		clientID:    clientID,
		slot:        slot,
		eventTypeID: eventTypeID,
		contact:     contact,
		endTime:     endTime,
		meetingLink: meetingLink,
		status:      StatusPending,
	}
}

func Reconstruct(
	id, clientID uuid.UUID,
	slot SlotRef,
	eventTypeID *uuid.UUID,
	contact GuestContact,
	endTime, meetingLink string,
	status Status,
	rescheduledFrom *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		clientID:        clientID,
		slot:            slot,
		eventTypeID:     eventTypeID,
		contact:         contact,
		endTime:         endTime,
		meetingLink:     meetingLink,
		status:          status,
		rescheduledFrom: rescheduledFrom,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// IsOwnedBy is the single authorization predicate for booking mutation.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.clientID == userID
}

// Transition moves the booking to the next lifecycle state, rejecting any
// edge the state machine does not allow.
func (b *Booking) Transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// Reschedule marks this record Rescheduled and returns the replacement
// booking for the new slot, back-linked to this one. The old record is kept
// as history; its tuple is released because Rescheduled is not an active
// status.
func (b *Booking) Reschedule(newSlot SlotRef) (*Booking, error) {
	if b.slot.Equal(newSlot) {
		return nil, ErrSameSlot
	}
	if err := b.Transition(StatusRescheduled); err != nil {
		return nil, err
	}
	from := b.id
	replacement := NewBooking(b.clientID, newSlot, b.eventTypeID, b.contact, b.endTime, b.meetingLink)
	replacement.rescheduledFrom = &from
	return replacement, nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) ClientID() uuid.UUID        { return b.clientID }
func (b *Booking) Slot() SlotRef              { return b.slot }
func (b *Booking) EventTypeID() *uuid.UUID    { return b.eventTypeID }
func (b *Booking) Contact() GuestContact      { return b.contact }
func (b *Booking) EndTime() string            { return b.endTime }
func (b *Booking) MeetingLink() string        { return b.meetingLink }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) RescheduledFrom() *uuid.UUID { return b.rescheduledFrom }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
