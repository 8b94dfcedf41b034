package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"expertbook/internal/domain/expert"
	"expertbook/internal/infra"
	"expertbook/internal/pkg/errs"
	"expertbook/internal/usecase/shared"
)

var (
	ErrEventTypeNotFound = errs.New("event type not found")
	ErrEventTypeNotOwned = errs.New("event type belongs to another expert")
	ErrSlugTaken         = errs.New("url slug already in use")
)

type EventTypeRequest struct {
	Name            string
	URLSlug         string
	Description     string
	DurationMinutes int
	Location        string
	IsActive        bool
}

type EventTypeCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req EventTypeRequest) (uuid.UUID, error)
	Update(ctx context.Context, userID, eventTypeID uuid.UUID, req EventTypeRequest) error
	// Delete is immediate and unconditional; existing bookings keep their
	// event type reference as history.
	Delete(ctx context.Context, userID, eventTypeID uuid.UUID) error
}

type eventTypeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewEventTypeCommands(uow shared.UnitOfWork) EventTypeCommands {
	return &eventTypeCommandsImpl{uow: uow}
}

func (uc *eventTypeCommandsImpl) Create(ctx context.Context, userID uuid.UUID, req EventTypeRequest) (uuid.UUID, error) {
	location, err := expert.NewLocationKind(req.Location)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().ExpertByUserID(ctx, userID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrNotExpert
			}
			return rerr
		}

		entity, derr := expert.NewEventType(snap.ID, req.Name, req.URLSlug, req.Description, req.DurationMinutes, location)
		if derr != nil {
			return derr
		}
		if cerr := tx.EventTypes().Create(ctx, tx.DB(), entity); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrSlugTaken
			}
			return cerr
		}
		createdID = entity.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *eventTypeCommandsImpl) Update(ctx context.Context, userID, eventTypeID uuid.UUID, req EventTypeRequest) error {
	location, err := expert.NewLocationKind(req.Location)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := uc.ownedEventType(ctx, tx, userID, eventTypeID)
		if rerr != nil {
			return rerr
		}

		entity := expert.ReconstructEventType(
			snap.ID, snap.ExpertID, snap.Name, snap.URLSlug, "",
			snap.DurationMinutes, expert.LocationKind(snap.Location), snap.IsActive,
			// Timestamps are column defaults; the write path never touches them.
			time.Time{}, time.Time{},
		)
		if derr := entity.Update(req.Name, req.URLSlug, req.Description, req.DurationMinutes, location, req.IsActive); derr != nil {
			return derr
		}
		if uerr := tx.EventTypes().Update(ctx, tx.DB(), entity); uerr != nil {
			if infra.IsKind(uerr, infra.KindDuplicateKey) {
				return ErrSlugTaken
			}
			return uerr
		}
		return nil
	})
}

func (uc *eventTypeCommandsImpl) Delete(ctx context.Context, userID, eventTypeID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := uc.ownedEventType(ctx, tx, userID, eventTypeID); rerr != nil {
			return rerr
		}
		return tx.EventTypes().Delete(ctx, tx.DB(), eventTypeID)
	})
}

func (uc *eventTypeCommandsImpl) ownedEventType(ctx context.Context, tx shared.Tx, userID, eventTypeID uuid.UUID) (*shared.EventTypeSnapshot, error) {
	expertSnap, err := tx.Reads().ExpertByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotExpert
		}
		return nil, err
	}
	etSnap, err := tx.Reads().EventTypeByID(ctx, eventTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, err
	}
	if etSnap.ExpertID != expertSnap.ID {
		return nil, ErrEventTypeNotOwned
	}
	return etSnap, nil
}
