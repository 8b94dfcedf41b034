package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	IsActive     bool
}

type ExpertSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Username      string
	Category      string
	Timezone      string
	BufferMinutes int
}

type EventTypeSnapshot struct {
	ID              uuid.UUID
	ExpertID        uuid.UUID
	Name            string
	URLSlug         string
	DurationMinutes int
	Location        string
	IsActive        bool
}

type BookingSnapshot struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ExpertID        uuid.UUID
	EventTypeID     *uuid.UUID
	Date            string
	TimeSlot        string
	EndTime         string
	MeetingLink     string
	Status          string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	GuestNotes      string
	RescheduledFrom *uuid.UUID
	CreatedAt       time.Time
}
