package expert

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimezone      = errors.New("timezone must be a valid IANA zone name")
	ErrInvalidBufferMinutes = errors.New("buffer minutes must be between 0 and 240")
	ErrEmptyUsername        = errors.New("username cannot be empty")
	ErrInvalidUsername      = errors.New("username may only contain lowercase letters, digits and hyphens")
	ErrBioTooLong           = errors.New("bio is too long (max 2000 characters)")
)

const (
	MaxBufferMinutes = 240
	MaxBioLength     = 2000
)

// Expert is the bookable profile attached to a user account. The timezone is
// the zone availability rules are expressed in; bufferMinutes is the minimum
// lead time a client must leave before a slot starts.
type Expert struct {
	id            uuid.UUID
	userID        uuid.UUID
	username      string
	category      string
	bio           string
	timezone      string
	bufferMinutes int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewExpert(userID uuid.UUID, username, category, timezone string, bufferMinutes int) (*Expert, error) {
	e := &Expert{
		id:            uuid.New(),
		userID:        userID,
		username:      strings.ToLower(strings.TrimSpace(username)),
		category:      strings.TrimSpace(category),
		timezone:      timezone,
		bufferMinutes: bufferMinutes,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func ReconstructExpert(
	id, userID uuid.UUID,
	username, category, bio, timezone string,
	bufferMinutes int,
	createdAt, updatedAt time.Time,
) *Expert {
	return &Expert{
		id:            id,
		userID:        userID,
		username:      username,
		category:      category,
		bio:           bio,
		timezone:      timezone,
		bufferMinutes: bufferMinutes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (e *Expert) validate() error {
	if e.username == "" {
		return ErrEmptyUsername
	}
	if !isSlug(e.username) {
		return ErrInvalidUsername
	}
	if err := ValidateTimezone(e.timezone); err != nil {
		return err
	}
	if e.bufferMinutes < 0 || e.bufferMinutes > MaxBufferMinutes {
		return ErrInvalidBufferMinutes
	}
	if len(e.bio) > MaxBioLength {
		return ErrBioTooLong
	}
	return nil
}

// UpdateProfile applies the mutable profile fields in one step.
func (e *Expert) UpdateProfile(category, bio, timezone string, bufferMinutes int) error {
	e.category = strings.TrimSpace(category)
	e.bio = strings.TrimSpace(bio)
	e.timezone = timezone
	e.bufferMinutes = bufferMinutes
	return e.validate()
}

func (e *Expert) Location() (*time.Location, error) {
	return time.LoadLocation(e.timezone)
}

func (e *Expert) ID() uuid.UUID        { return e.id }
func (e *Expert) UserID() uuid.UUID    { return e.userID }
func (e *Expert) Username() string     { return e.username }
func (e *Expert) Category() string     { return e.category }
func (e *Expert) Bio() string          { return e.bio }
func (e *Expert) Timezone() string     { return e.timezone }
func (e *Expert) BufferMinutes() int   { return e.bufferMinutes }
func (e *Expert) CreatedAt() time.Time { return e.createdAt }
func (e *Expert) UpdatedAt() time.Time { return e.updatedAt }

// ValidateTimezone rejects anything time.LoadLocation does not know. "Local"
// is rejected too: stored zones must be portable across hosts.
func ValidateTimezone(tz string) error {
	if tz == "" || tz == "Local" {
		return ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}

func isSlug(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
