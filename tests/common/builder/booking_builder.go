//go:build unit || e2e

package builder

import (
	"time"

	dombooking "expertbook/internal/domain/booking"
	reqdto "expertbook/internal/handler/dto/request"
	"expertbook/internal/usecase/queries"
	"expertbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	ExpertID    uuid.UUID
	ExpertName  string
	EventTypeID *uuid.UUID
	Date        string
	TimeSlot    string
	EndTime     string
	MeetingLink string
	Status      string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	GuestNotes  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		ExpertID:    uuid.New(),
		ExpertName:  "Jane Doe",
		Date:        "2026-09-07",
		TimeSlot:    "10:00",
		EndTime:     "10:30",
		MeetingLink: "https://meet.expertbook.app/test",
		Status:      "Pending",
		GuestName:   "Test Client",
		GuestEmail:  "client@example.com",
		GuestPhone:  "+1-555-0100",
		GuestNotes:  "First session",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewSlotRef(b.ExpertID, b.Date, b.TimeSlot)
	if err != nil {
		return nil, err
	}
	contact, err := dombooking.NewGuestContact(b.GuestName, b.GuestEmail, b.GuestPhone, b.GuestNotes)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ClientID, slot, b.EventTypeID, contact, b.EndTime, b.MeetingLink), nil
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ExpertID:    b.ExpertID,
		ExpertName:  b.ExpertName,
		EventTypeID: b.EventTypeID,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		EndTime:     b.EndTime,
		MeetingLink: b.MeetingLink,
		Status:      b.Status,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  b.GuestPhone,
		GuestNotes:  b.GuestNotes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		ExpertID:   b.ExpertID,
		ExpertName: b.ExpertName,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ExpertID:    b.ExpertID,
		EventTypeID: b.EventTypeID,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		EndTime:     b.EndTime,
		MeetingLink: b.MeetingLink,
		Status:      b.Status,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  b.GuestPhone,
		GuestNotes:  b.GuestNotes,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExpertID:    b.ExpertID,
		EventTypeID: b.EventTypeID,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  b.GuestPhone,
		GuestNotes:  b.GuestNotes,
	}
}

func (b *BookingBuilder) BuildRescheduleRequestDTO(date, timeSlot string) reqdto.RescheduleBookingRequest {
	return reqdto.RescheduleBookingRequest{
		Date:     date,
		TimeSlot: timeSlot,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithClientID(clientID uuid.UUID) *BookingBuilder {
	b.ClientID = clientID
	return b
}

func (b *BookingBuilder) WithExpertID(expertID uuid.UUID) *BookingBuilder {
	b.ExpertID = expertID
	return b
}

func (b *BookingBuilder) WithEventTypeID(eventTypeID uuid.UUID) *BookingBuilder {
	b.EventTypeID = &eventTypeID
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeSlot(timeSlot string) *BookingBuilder {
	b.TimeSlot = timeSlot
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithGuestEmail(email string) *BookingBuilder {
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = "Confirmed"
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "Cancelled"
	return b
}
