package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"expertbook/internal/usecase/queries"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
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
}

type BookingListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	ExpertID   uuid.UUID `json:"expert_id"`
	ExpertName string    `json:"expert_name"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings   []*BookingListItemResponse `json:"bookings"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]*BookingListItemResponse, len(items))}
	for i, item := range items {
		var out BookingListItemResponse
		_ = copier.Copy(&out, item)
		resp.Bookings[i] = &out
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
