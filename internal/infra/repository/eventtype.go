package repository

import (
	"context"

	"expertbook/internal/domain/expert"
	"expertbook/internal/infra"

	"github.com/google/uuid"
)

type EventTypeRepository struct{}

func NewEventTypeRepository() *EventTypeRepository {
	return &EventTypeRepository{}
}

func (r *EventTypeRepository) Create(ctx context.Context, db infra.DBTX, et *expert.EventType) error {
	const query = `
		INSERT INTO event_types (id, expert_id, name, url_slug, description, duration_minutes, location, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := db.Exec(ctx, query,
		et.ID(), et.ExpertID(), et.Name(), et.URLSlug(), et.Description(),
		et.DurationMinutes(), string(et.Location()), et.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create event type", err, classify(err))
	}
	return nil
}

func (r *EventTypeRepository) Update(ctx context.Context, db infra.DBTX, et *expert.EventType) error {
	const query = `
		UPDATE event_types
		SET name = $2, url_slug = $3, description = $4, duration_minutes = $5,
		    location = $6, is_active = $7, updated_at = now()
		WHERE id = $1`

	_, err := db.Exec(ctx, query,
		et.ID(), et.Name(), et.URLSlug(), et.Description(),
		et.DurationMinutes(), string(et.Location()), et.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update event type", err, classify(err))
	}
	return nil
}

func (r *EventTypeRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM event_types WHERE id = $1`

	if _, err := db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete event type", err)
	}
	return nil
}
