package request

import (
	"github.com/google/uuid"

	"expertbook/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ExpertID    uuid.UUID  `json:"expert_id" binding:"required"`
	EventTypeID *uuid.UUID `json:"event_type_id,omitempty"`
	Date        string     `json:"date" binding:"required"`
	TimeSlot    string     `json:"time_slot" binding:"required"`
	GuestName   string     `json:"guest_name" binding:"required"`
	GuestEmail  string     `json:"guest_email" binding:"required,email"`
	GuestPhone  string     `json:"guest_phone,omitempty"`
	GuestNotes  string     `json:"guest_notes,omitempty"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ExpertID:    r.ExpertID,
		EventTypeID: r.EventTypeID,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
		GuestPhone:  r.GuestPhone,
		GuestNotes:  r.GuestNotes,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleBookingRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

func (r *RescheduleBookingRequest) ToCommand() commands.RescheduleRequest {
	return commands.RescheduleRequest{
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
	}
}
