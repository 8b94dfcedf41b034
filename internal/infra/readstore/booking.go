package readstore

import (
	"context"
	"errors"
	"time"

	"expertbook/internal/infra"
	"expertbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.client_id, b.expert_id, u.name, b.event_type_id, et.name,
		       b.date, b.time_slot, b.end_time, b.meeting_link, b.status,
		       b.guest_name, b.guest_email, b.guest_phone, b.guest_notes,
		       b.rescheduled_from, b.created_at, b.updated_at
		FROM bookings b
		JOIN experts e ON e.id = b.expert_id
		JOIN users u ON u.id = e.user_id
		LEFT JOIN event_types et ON et.id = b.event_type_id
		WHERE b.id = $1`

	var view queries.BookingView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.ClientID, &view.ExpertID, &view.ExpertName,
		&view.EventTypeID, &view.EventTypeName,
		&view.Date, &view.TimeSlot, &view.EndTime, &view.MeetingLink, &view.Status,
		&view.GuestName, &view.GuestEmail, &view.GuestPhone, &view.GuestNotes,
		&view.RescheduledFrom, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &view, nil
}

func (s *BookingReadStore) FindByClient(ctx context.Context, clientID uuid.UUID, limit int32, afterTime *time.Time, afterID *uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.expert_id, u.name, b.date, b.time_slot, b.status, b.created_at
		FROM bookings b
		JOIN experts e ON e.id = b.expert_id
		JOIN users u ON u.id = e.user_id
		WHERE b.client_id = $1
		  AND ($2::timestamptz IS NULL OR (b.created_at, b.id) < ($2, $3))
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $4`

	rows, err := s.db.Query(ctx, query, clientID, afterTime, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by client", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.ExpertID, &item.ExpertName, &item.Date, &item.TimeSlot, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

func (s *BookingReadStore) ActiveSlots(ctx context.Context, expertID uuid.UUID, fromDate, toDate string) ([]queries.ActiveSlotRow, error) {
	const query = `
		SELECT date, time_slot
		FROM bookings
		WHERE expert_id = $1
		  AND status IN ('Pending', 'Confirmed')
		  AND date >= $2 AND date <= $3`

	rows, err := s.db.Query(ctx, query, expertID, fromDate, toDate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active slots", err)
	}
	defer rows.Close()

	var out []queries.ActiveSlotRow
	for rows.Next() {
		var row queries.ActiveSlotRow
		if err := rows.Scan(&row.Date, &row.TimeSlot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active slot row", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active slot rows", err)
	}
	return out, nil
}

// ActiveBookingExists is the in-transaction tuple check of the reservation
// arbiter.
func (s *BookingReadStore) ActiveBookingExists(ctx context.Context, expertID uuid.UUID, date, timeSlot string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE expert_id = $1 AND date = $2 AND time_slot = $3
			  AND status IN ('Pending', 'Confirmed')
		)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, expertID, date, timeSlot).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return exists, nil
}
