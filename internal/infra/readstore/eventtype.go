package readstore

import (
	"context"
	"errors"

	"expertbook/internal/infra"
	"expertbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EventTypeReadStore struct {
	db infra.DBTX
}

func NewEventTypeReadStore(db infra.DBTX) *EventTypeReadStore {
	return &EventTypeReadStore{db: db}
}

const eventTypeColumns = `id, expert_id, name, url_slug, description, duration_minutes, location, is_active, created_at`

func (s *EventTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventTypeView, error) {
	query := `SELECT ` + eventTypeColumns + ` FROM event_types WHERE id = $1`
	return s.scanOne(s.db.QueryRow(ctx, query, id))
}

func (s *EventTypeReadStore) FindBySlug(ctx context.Context, expertID uuid.UUID, slug string) (*queries.EventTypeView, error) {
	query := `SELECT ` + eventTypeColumns + ` FROM event_types WHERE expert_id = $1 AND url_slug = $2`
	return s.scanOne(s.db.QueryRow(ctx, query, expertID, slug))
}

func (s *EventTypeReadStore) FindByExpert(ctx context.Context, expertID uuid.UUID) ([]*queries.EventTypeView, error) {
	query := `SELECT ` + eventTypeColumns + ` FROM event_types WHERE expert_id = $1 ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, expertID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event types", err)
	}
	defer rows.Close()

	var views []*queries.EventTypeView
	for rows.Next() {
		var v queries.EventTypeView
		if err := rows.Scan(
			&v.ID, &v.ExpertID, &v.Name, &v.URLSlug, &v.Description,
			&v.DurationMinutes, &v.Location, &v.IsActive, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event type row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event type rows", err)
	}
	return views, nil
}

func (s *EventTypeReadStore) scanOne(row pgx.Row) (*queries.EventTypeView, error) {
	var v queries.EventTypeView
	err := row.Scan(
		&v.ID, &v.ExpertID, &v.Name, &v.URLSlug, &v.Description,
		&v.DurationMinutes, &v.Location, &v.IsActive, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event type", err)
	}
	return &v, nil
}
