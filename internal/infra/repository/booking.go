package repository

import (
	"context"

	"expertbook/internal/domain/booking"
	"expertbook/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, client_id, expert_id, event_type_id, date, time_slot, end_time,
			meeting_link, status, guest_name, guest_email, guest_phone, guest_notes,
			rescheduled_from
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	var id uuid.UUID
	err := db.QueryRow(ctx, query,
		b.ID(), b.ClientID(), b.Slot().ExpertID(), b.EventTypeID(),
		b.Slot().Date(), b.Slot().TimeSlot(), b.EndTime(),
		b.MeetingLink(), b.Status().String(),
		b.Contact().Name(), b.Contact().Email(), b.Contact().Phone(), b.Contact().Notes(),
		b.RescheduledFrom(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, classify(err))
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
