package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone,omitempty"`
	IsActive bool      `json:"is_active"`
}

// ExpertView is the public expert profile plus the fields the slot pipeline
// needs (timezone, buffer).
type ExpertView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Timezone      string    `json:"timezone"`
	BufferMinutes int       `json:"buffer_minutes"`
	CreatedAt     time.Time `json:"created_at"`
}

type ExpertListItem struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AvailabilityRuleView is one weekday row of an expert's template.
type AvailabilityRuleView struct {
	Weekday int    `json:"weekday"`
	IsOpen  bool   `json:"is_open"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

type EventTypeView struct {
	ID              uuid.UUID `json:"id"`
	ExpertID        uuid.UUID `json:"expert_id"`
	Name            string    `json:"name"`
	URLSlug         string    `json:"url_slug"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	ClientID        uuid.UUID  `json:"client_id"`
	ExpertID        uuid.UUID  `json:"expert_id"`
	ExpertName      string     `json:"expert_name"`
	EventTypeID     *uuid.UUID `json:"event_type_id,omitempty"`
	EventTypeName   *string    `json:"event_type_name,omitempty"`
	Date            string     `json:"date"`
	TimeSlot        string     `json:"time_slot"`
	EndTime         string     `json:"end_time,omitempty"`
	MeetingLink     string     `json:"meeting_link,omitempty"`
	Status          string     `json:"status"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	GuestPhone      string     `json:"guest_phone,omitempty"`
	GuestNotes      string     `json:"guest_notes,omitempty"`
	RescheduledFrom *uuid.UUID `json:"rescheduled_from,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	ExpertID   uuid.UUID `json:"expert_id"`
	ExpertName string    `json:"expert_name"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActiveSlotRow is one occupied reservation tuple inside a date range.
type ActiveSlotRow struct {
	Date     string
	TimeSlot string
}
