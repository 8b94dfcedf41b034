package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"expertbook/internal/infra"
	"expertbook/internal/pkg/errs"
)

var ErrExpertNotFound = errs.New("expert not found")

type ExpertListFilter struct {
	Search   string
	Category string
}

type ExpertQueries interface {
	// GetByRef resolves an expert by UUID or, failing that, by username.
	GetByRef(ctx context.Context, ref string) (*ExpertView, error)
	List(ctx context.Context, filter ExpertListFilter, after *Cursor, limit int) ([]*ExpertListItem, *Cursor, error)
	GetAvailability(ctx context.Context, expertID uuid.UUID) ([]AvailabilityRuleView, error)
}

type ExpertReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExpertView, error)
	FindByUsername(ctx context.Context, username string) (*ExpertView, error)
	List(ctx context.Context, filter ExpertListFilter, limit int32, afterTime *time.Time, afterID *uuid.UUID) ([]*ExpertListItem, error)
	FindRules(ctx context.Context, expertID uuid.UUID) ([]AvailabilityRuleView, error)
}

type expertQueriesImpl struct {
	readStore ExpertReadStore
}

func NewExpertQueries(readStore ExpertReadStore) ExpertQueries {
	return &expertQueriesImpl{readStore: readStore}
}

func (q *expertQueriesImpl) GetByRef(ctx context.Context, ref string) (*ExpertView, error) {
	var (
		view *ExpertView
		err  error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		view, err = q.readStore.FindByID(ctx, id)
	} else {
		view, err = q.readStore.FindByUsername(ctx, ref)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *expertQueriesImpl) List(ctx context.Context, filter ExpertListFilter, after *Cursor, limit int) ([]*ExpertListItem, *Cursor, error) {
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

	// Fetch one extra row to decide whether a next page exists.
	rows, err := q.readStore.List(ctx, filter, int32(limit)+1, afterTime, afterID)
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

func (q *expertQueriesImpl) GetAvailability(ctx context.Context, expertID uuid.UUID) ([]AvailabilityRuleView, error) {
	rules, err := q.readStore.FindRules(ctx, expertID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, err
	}
	return rules, nil
}
