//go:build unit || e2e

package builder

import (
	"time"

	reqdto "expertbook/internal/handler/dto/request"
	"expertbook/internal/usecase/queries"
	"expertbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventTypeBuilder struct {
	ID              uuid.UUID
	ExpertID        uuid.UUID
	Name            string
	URLSlug         string
	Description     string
	DurationMinutes int
	Location        string
	IsActive        bool
	CreatedAt       time.Time
}

func NewEventTypeBuilder() *EventTypeBuilder {
	return &EventTypeBuilder{
		ID:              uuid.New(),
		ExpertID:        uuid.New(),
		Name:            "Intro Call",
		URLSlug:         "intro-call",
		Description:     "A 30 minute introduction.",
		DurationMinutes: 30,
		Location:        "video",
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
}

// Build methods
func (e *EventTypeBuilder) BuildViewQuery() *queries.EventTypeView {
	return &queries.EventTypeView{
		ID:              e.ID,
		ExpertID:        e.ExpertID,
		Name:            e.Name,
		URLSlug:         e.URLSlug,
		Description:     e.Description,
		DurationMinutes: e.DurationMinutes,
		Location:        e.Location,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
	}
}

func (e *EventTypeBuilder) BuildSnapshot() *shared.EventTypeSnapshot {
	return &shared.EventTypeSnapshot{
		ID:              e.ID,
		ExpertID:        e.ExpertID,
		Name:            e.Name,
		URLSlug:         e.URLSlug,
		DurationMinutes: e.DurationMinutes,
		Location:        e.Location,
		IsActive:        e.IsActive,
	}
}

func (e *EventTypeBuilder) BuildRequestDTO() reqdto.EventTypeRequest {
	return reqdto.EventTypeRequest{
		Name:            e.Name,
		URLSlug:         e.URLSlug,
		Description:     e.Description,
		DurationMinutes: e.DurationMinutes,
		Location:        e.Location,
		IsActive:        e.IsActive,
	}
}

// Fluent builder methods
func (e *EventTypeBuilder) WithID(id uuid.UUID) *EventTypeBuilder {
	e.ID = id
	return e
}

func (e *EventTypeBuilder) WithExpertID(expertID uuid.UUID) *EventTypeBuilder {
	e.ExpertID = expertID
	return e
}

func (e *EventTypeBuilder) WithName(name string) *EventTypeBuilder {
	e.Name = name
	return e
}

func (e *EventTypeBuilder) WithURLSlug(slug string) *EventTypeBuilder {
	e.URLSlug = slug
	return e
}

func (e *EventTypeBuilder) WithDurationMinutes(minutes int) *EventTypeBuilder {
	e.DurationMinutes = minutes
	return e
}

func (e *EventTypeBuilder) WithLocation(location string) *EventTypeBuilder {
	e.Location = location
	return e
}

func (e *EventTypeBuilder) AsInactive() *EventTypeBuilder {
	e.IsActive = false
	return e
}
