package shared

import (
	"context"

	"expertbook/internal/domain/availability"
	"expertbook/internal/domain/booking"
	"expertbook/internal/domain/expert"
	"expertbook/internal/domain/user"
	"expertbook/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Experts() ExpertRepository
	EventTypes() EventTypeRepository
	Availability() AvailabilityRepository
	Bookings() BookingRepository
	Reads() CommandReads
	DB() infra.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ExpertByID(ctx context.Context, id uuid.UUID) (*ExpertSnapshot, error)
	ExpertByUserID(ctx context.Context, userID uuid.UUID) (*ExpertSnapshot, error)
	EventTypeByID(ctx context.Context, id uuid.UUID) (*EventTypeSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// ActiveBookingExists is the in-transaction existence check of the
	// reservation tuple; the partial unique index backs it up under races.
	ActiveBookingExists(ctx context.Context, expertID uuid.UUID, date, timeSlot string) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx infra.DBTX, u *user.User) error
	UpdateProfile(ctx context.Context, tx infra.DBTX, userID uuid.UUID, name, phone string) error
	UpdatePassword(ctx context.Context, tx infra.DBTX, userID uuid.UUID, passwordHash string) error
	PromoteToExpert(ctx context.Context, tx infra.DBTX, userID uuid.UUID) error
	UpdateLastLogin(ctx context.Context, tx infra.DBTX, userID uuid.UUID) error
}

type ExpertRepository interface {
	Create(ctx context.Context, tx infra.DBTX, e *expert.Expert) error
	// UpdateScheduleMeta changes the fields the slot pipeline reads alongside
	// the weekly rules.
	UpdateScheduleMeta(ctx context.Context, tx infra.DBTX, expertID uuid.UUID, timezone string, bufferMinutes int) error
}

type EventTypeRepository interface {
	Create(ctx context.Context, tx infra.DBTX, et *expert.EventType) error
	Update(ctx context.Context, tx infra.DBTX, et *expert.EventType) error
	Delete(ctx context.Context, tx infra.DBTX, id uuid.UUID) error
}

type AvailabilityRepository interface {
	// ReplaceWeek swaps all seven weekday rules in one statement batch.
	ReplaceWeek(ctx context.Context, tx infra.DBTX, expertID uuid.UUID, week availability.WeekSchedule) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status booking.Status) error
}
