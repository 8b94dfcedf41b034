package queries

import (
	"context"

	"github.com/google/uuid"

	"expertbook/internal/infra"
	"expertbook/internal/pkg/errs"
)

var ErrEventTypeNotFound = errs.New("event type not found")

type EventTypeQueries interface {
	ListByExpert(ctx context.Context, expertID uuid.UUID) ([]*EventTypeView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventTypeView, error)
	// GetBySlug backs the public booking URL (username + slug).
	GetBySlug(ctx context.Context, expertID uuid.UUID, slug string) (*EventTypeView, error)
}

type EventTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventTypeView, error)
	FindByExpert(ctx context.Context, expertID uuid.UUID) ([]*EventTypeView, error)
	FindBySlug(ctx context.Context, expertID uuid.UUID, slug string) (*EventTypeView, error)
}

type eventTypeQueriesImpl struct {
	readStore EventTypeReadStore
}

func NewEventTypeQueries(readStore EventTypeReadStore) EventTypeQueries {
	return &eventTypeQueriesImpl{readStore: readStore}
}

func (q *eventTypeQueriesImpl) ListByExpert(ctx context.Context, expertID uuid.UUID) ([]*EventTypeView, error) {
	return q.readStore.FindByExpert(ctx, expertID)
}

func (q *eventTypeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventTypeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *eventTypeQueriesImpl) GetBySlug(ctx context.Context, expertID uuid.UUID, slug string) (*EventTypeView, error) {
	view, err := q.readStore.FindBySlug(ctx, expertID, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, err
	}
	return view, nil
}
