package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"expertbook/internal/domain/booking"
	"expertbook/internal/infra"
	"expertbook/internal/notification"
	"expertbook/internal/pkg/errs"
	"expertbook/internal/realtime"
	"expertbook/internal/usecase/shared"
)

var (
	ErrExpertNotFound    = errs.New("expert not found")
	ErrSlotAlreadyBooked = errs.New("slot already booked")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrBookingNotOwned   = errs.New("booking not owned by user")
	ErrInvalidTransition = errs.New("invalid booking status transition")
)

type CreateBookingRequest struct {
	ExpertID    uuid.UUID
	EventTypeID *uuid.UUID
	Date        string
	TimeSlot    string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	GuestNotes  string
}

type CreateBookingResult struct {
	BookingID   uuid.UUID
	MeetingLink string
}

type RescheduleRequest struct {
	Date     string
	TimeSlot string
}

type RescheduleResult struct {
	NewBookingID uuid.UUID
}

type BookingCommands interface {
	// CreateBooking is the reservation arbiter: at most one active booking
	// per (expert, date, timeSlot) under arbitrary concurrency.
	CreateBooking(ctx context.Context, req CreateBookingRequest, clientID uuid.UUID) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, bookingID, actorID uuid.UUID, status string) error
	Reschedule(ctx context.Context, bookingID, actorID uuid.UUID, req RescheduleRequest) (*RescheduleResult, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher SlotEventPublisher
	notifier  notification.Sender
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	publisher SlotEventPublisher,
	notifier notification.Sender,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, clientID uuid.UUID) (*CreateBookingResult, error) {
	slot, err := booking.NewSlotRef(req.ExpertID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewGuestContact(req.GuestName, req.GuestEmail, req.GuestPhone, req.GuestNotes)
	if err != nil {
		return nil, err
	}

	meetingLink := newMeetingLink()

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Expert existence is checked inside the transaction so a concurrent
		// removal cannot leave an orphaned booking.
		if _, rerr := tx.Reads().ExpertByID(ctx, req.ExpertID); rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrExpertNotFound
			}
			return rerr
		}

		endTime, derr := uc.resolveEndTime(ctx, tx, req, slot)
		if derr != nil {
			return derr
		}

		taken, derr := tx.Reads().ActiveBookingExists(ctx, slot.ExpertID(), slot.Date(), slot.TimeSlot())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrSlotAlreadyBooked
		}

		created = booking.NewBooking(clientID, slot, req.EventTypeID, contact, endTime, meetingLink)
		if _, derr = tx.Bookings().Create(ctx, tx.DB(), created); derr != nil {
			// The partial unique index catches the race the existence check
			// cannot see.
			if infra.IsKind(derr, infra.KindConflict) || infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrSlotAlreadyBooked
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Broadcast strictly after commit so watchers never learn about a slot
	// that failed to reserve.
	uc.publisher.Publish(realtime.SlotBooked(slot.ExpertID().String(), slot.Date(), slot.TimeSlot()))
	uc.sendBookingNotification(ctx, created)

	return &CreateBookingResult{BookingID: created.ID(), MeetingLink: meetingLink}, nil
}

func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID, actorID uuid.UUID, status string) error {
	next, err := booking.NewStatus(status)
	if err != nil {
		return err
	}

	var freed *booking.SlotRef
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		freed = nil

		entity, derr := uc.ownedBooking(ctx, tx, bookingID, actorID)
		if derr != nil {
			return derr
		}

		wasActive := entity.Status().IsActive()
		if derr = entity.Transition(next); derr != nil {
			return errs.Mark(derr, ErrInvalidTransition)
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, next); derr != nil {
			return derr
		}

		if wasActive && !next.IsActive() {
			slot := entity.Slot()
			freed = &slot
		}
		return nil
	})
	if err != nil {
		return err
	}

	if freed != nil {
		uc.publisher.Publish(realtime.SlotFreed(freed.ExpertID().String(), freed.Date(), freed.TimeSlot()))
	}
	return nil
}

func (uc *bookingCommandsImpl) Reschedule(ctx context.Context, bookingID, actorID uuid.UUID, req RescheduleRequest) (*RescheduleResult, error) {
	var (
		oldSlot     booking.SlotRef
		replacement *booking.Booking
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, derr := uc.ownedBooking(ctx, tx, bookingID, actorID)
		if derr != nil {
			return derr
		}

		newSlot, derr := booking.NewSlotRef(entity.Slot().ExpertID(), req.Date, req.TimeSlot)
		if derr != nil {
			return derr
		}

		taken, derr := tx.Reads().ActiveBookingExists(ctx, newSlot.ExpertID(), newSlot.Date(), newSlot.TimeSlot())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrSlotAlreadyBooked
		}

		oldSlot = entity.Slot()
		replacement, derr = entity.Reschedule(newSlot)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidTransition)
		}

		// Old record is kept as history; its tuple is released by the status
		// flip, and the replacement re-arbitrates the new tuple in the same
		// transaction.
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusRescheduled); derr != nil {
			return derr
		}
		if _, derr = tx.Bookings().Create(ctx, tx.DB(), replacement); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) || infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrSlotAlreadyBooked
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(realtime.SlotFreed(oldSlot.ExpertID().String(), oldSlot.Date(), oldSlot.TimeSlot()))
	newSlot := replacement.Slot()
	uc.publisher.Publish(realtime.SlotBooked(newSlot.ExpertID().String(), newSlot.Date(), newSlot.TimeSlot()))
	uc.sendBookingNotification(ctx, replacement)

	return &RescheduleResult{NewBookingID: replacement.ID()}, nil
}

func (uc *bookingCommandsImpl) ownedBooking(ctx context.Context, tx shared.Tx, bookingID, actorID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if snap.ClientID != actorID {
		// Existence is not hidden; only the mutation is denied.
		return nil, ErrBookingNotOwned
	}

	slot, err := booking.NewSlotRef(snap.ExpertID, snap.Date, snap.TimeSlot)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	contact := booking.ReconstructGuestContact(snap.GuestName, snap.GuestEmail, snap.GuestPhone, snap.GuestNotes)

	return booking.Reconstruct(
		snap.ID, snap.ClientID, slot, snap.EventTypeID, contact,
		snap.EndTime, snap.MeetingLink, status, snap.RescheduledFrom,
		snap.CreatedAt, snap.CreatedAt,
	), nil
}

func (uc *bookingCommandsImpl) resolveEndTime(ctx context.Context, tx shared.Tx, req CreateBookingRequest, slot booking.SlotRef) (string, error) {
	if req.EventTypeID == nil {
		return "", nil
	}
	et, err := tx.Reads().EventTypeByID(ctx, *req.EventTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrEventTypeNotFound
		}
		return "", err
	}
	if et.ExpertID != req.ExpertID {
		return "", ErrEventTypeNotOwned
	}

	start, err := time.Parse("15:04", slot.TimeSlot())
	if err != nil {
		return "", err
	}
	return start.Add(time.Duration(et.DurationMinutes) * time.Minute).Format("15:04"), nil
}

func (uc *bookingCommandsImpl) sendBookingNotification(ctx context.Context, b *booking.Booking) {
	msg := notification.Message{
		RecipientName:  b.Contact().Name(),
		RecipientEmail: b.Contact().Email(),
		RecipientPhone: b.Contact().Phone(),
		Subject:        "Your session is booked",
		Body: fmt.Sprintf("Your session on %s at %s is reserved (reference %s).",
			b.Slot().Date(), b.Slot().TimeSlot(), b.ID()),
		MeetingLink: b.MeetingLink(),
	}
	if err := uc.notifier.Send(ctx, msg); err != nil {
		// Best-effort by contract: a failed delivery never fails the booking.
		slog.Warn("booking notification delivery failed",
			"booking_id", b.ID(), "error", err.Error())
	}
}

func newMeetingLink() string {
	return "https://meet.expertbook.app/" + uuid.NewString()
}
