package booking

import (
	"strings"
	"time"

	"expertbook/internal/domain/user"

	"github.com/google/uuid"
)

// GuestContact is the requester's contact block captured at reservation time.
// It is denormalized onto the booking so the record stays meaningful even if
// the account profile changes later.
type GuestContact struct {
	name  string
	email string
	phone string
	notes string
}

func NewGuestContact(name, email, phone, notes string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GuestContact{}, ErrEmptyGuestName
	}
	if _, err := user.NewEmail(email); err != nil {
		return GuestContact{}, ErrInvalidGuestEmail
	}
	return GuestContact{
		name:  name,
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
		notes: strings.TrimSpace(notes),
	}, nil
}

func ReconstructGuestContact(name, email, phone, notes string) GuestContact {
	return GuestContact{name: name, email: email, phone: phone, notes: notes}
}

func (g GuestContact) Name() string  { return g.name }
func (g GuestContact) Email() string { return g.email }
func (g GuestContact) Phone() string { return g.phone }
func (g GuestContact) Notes() string { return g.notes }

// SlotRef is the uniqueness tuple of the reservation system: at most one
// active booking may exist per (expertID, date, timeSlot). Date and TimeSlot
// are the viewer-local strings the slot was presented with.
type SlotRef struct {
	expertID uuid.UUID
	date     string
	timeSlot string
}

func NewSlotRef(expertID uuid.UUID, date, timeSlot string) (SlotRef, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return SlotRef{}, ErrInvalidDate
	}
	parsed, err := time.Parse("15:04", timeSlot)
	if err != nil {
		return SlotRef{}, ErrInvalidTimeSlot
	}
	return SlotRef{
		expertID: expertID,
		date:     date,
		timeSlot: parsed.Format("15:04"),
	}, nil
}

func (s SlotRef) ExpertID() uuid.UUID { return s.expertID }
func (s SlotRef) Date() string        { return s.date }
func (s SlotRef) TimeSlot() string    { return s.timeSlot }

func (s SlotRef) Equal(other SlotRef) bool {
	return s.expertID == other.expertID && s.date == other.date && s.timeSlot == other.timeSlot
}
