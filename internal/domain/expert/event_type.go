package expert

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEventTypeName = errors.New("event type name cannot be empty")
	ErrInvalidDuration    = errors.New("duration must be between 5 and 480 minutes")
	ErrInvalidLocation    = errors.New("invalid event location")
	ErrEmptySlug          = errors.New("url slug cannot be empty")
	ErrInvalidSlug        = errors.New("url slug may only contain lowercase letters, digits and hyphens")
)

const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480
)

// LocationKind is where the session happens.
type LocationKind string

const (
	LocationVideo    LocationKind = "video"
	LocationPhone    LocationKind = "phone"
	LocationInPerson LocationKind = "in_person"
)

func (l LocationKind) IsValid() bool {
	switch l {
	case LocationVideo, LocationPhone, LocationInPerson:
		return true
	default:
		return false
	}
}

func NewLocationKind(s string) (LocationKind, error) {
	l := LocationKind(s)
	if !l.IsValid() {
		return "", ErrInvalidLocation
	}
	return l, nil
}

// EventType is a bookable session template: its duration drives the slot
// grid, and its slug is unique per expert.
type EventType struct {
	id              uuid.UUID
	expertID        uuid.UUID
	name            string
	urlSlug         string
	description     string
	durationMinutes int
	location        LocationKind
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEventType(expertID uuid.UUID, name, urlSlug, description string, durationMinutes int, location LocationKind) (*EventType, error) {
	et := &EventType{
		id:              uuid.New(),
		expertID:        expertID,
		name:            strings.TrimSpace(name),
		urlSlug:         strings.ToLower(strings.TrimSpace(urlSlug)),
		description:     strings.TrimSpace(description),
		durationMinutes: durationMinutes,
		location:        location,
		isActive:        true,
	}
	if err := et.validate(); err != nil {
		return nil, err
	}
	return et, nil
}

func ReconstructEventType(
	id, expertID uuid.UUID,
	name, urlSlug, description string,
	durationMinutes int,
	location LocationKind,
	isActive bool,
	createdAt, updatedAt time.Time,
) *EventType {
	return &EventType{
		id:              id,
		expertID:        expertID,
		name:            name,
		urlSlug:         urlSlug,
		description:     description,
		durationMinutes: durationMinutes,
		location:        location,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (et *EventType) validate() error {
	if et.name == "" {
		return ErrEmptyEventTypeName
	}
	if et.urlSlug == "" {
		return ErrEmptySlug
	}
	if !isSlug(et.urlSlug) {
		return ErrInvalidSlug
	}
	if et.durationMinutes < MinDurationMinutes || et.durationMinutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if !et.location.IsValid() {
		return ErrInvalidLocation
	}
	return nil
}

func (et *EventType) Update(name, urlSlug, description string, durationMinutes int, location LocationKind, isActive bool) error {
	et.name = strings.TrimSpace(name)
	et.urlSlug = strings.ToLower(strings.TrimSpace(urlSlug))
	et.description = strings.TrimSpace(description)
	et.durationMinutes = durationMinutes
	et.location = location
	et.isActive = isActive
	return et.validate()
}

func (et *EventType) Duration() time.Duration {
	return time.Duration(et.durationMinutes) * time.Minute
}

func (et *EventType) ID() uuid.UUID          { return et.id }
func (et *EventType) ExpertID() uuid.UUID    { return et.expertID }
func (et *EventType) Name() string           { return et.name }
func (et *EventType) URLSlug() string        { return et.urlSlug }
func (et *EventType) Description() string    { return et.description }
func (et *EventType) DurationMinutes() int   { return et.durationMinutes }
func (et *EventType) Location() LocationKind { return et.location }
func (et *EventType) IsActive() bool         { return et.isActive }
func (et *EventType) CreatedAt() time.Time   { return et.createdAt }
func (et *EventType) UpdatedAt() time.Time   { return et.updatedAt }
