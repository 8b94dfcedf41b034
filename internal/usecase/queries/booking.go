package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"expertbook/internal/infra"
	"expertbook/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	// GetByID enforces the owner-only read: existence is not hidden, access is.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, limit int32, afterTime *time.Time, afterID *uuid.UUID) ([]*BookingListItem, error)
	// ActiveSlots returns the occupied (date, timeSlot) tuples of an expert
	// within [fromDate, toDate], both inclusive YYYY-MM-DD strings.
	ActiveSlots(ctx context.Context, expertID uuid.UUID, fromDate, toDate string) ([]ActiveSlotRow, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.ClientID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		afterTime *time.Time
		afterID   *uuid.UUID
	)
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Wrap(err, "invalid pagination cursor")
		}
		afterTime, afterID = &t, &id
	}

	rows, err := q.readStore.FindByClient(ctx, clientID, int32(limit)+1, afterTime, afterID)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
