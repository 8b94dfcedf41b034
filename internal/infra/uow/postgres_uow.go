package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"expertbook/internal/infra"
	"expertbook/internal/infra/readstore"
	"expertbook/internal/infra/repository"
	"expertbook/internal/pkg/errs"
	"expertbook/internal/usecase/queries"
	"expertbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx infra.DBTX

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	expertRepo       shared.ExpertRepository
	eventTypeRepo    shared.EventTypeRepository
	availabilityRepo shared.AvailabilityRepository
	bookingRepo      shared.BookingRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() infra.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Experts() shared.ExpertRepository {
	if t.expertRepo == nil {
		t.expertRepo = repository.NewExpertRepository()
	}
	return t.expertRepo
}

func (t *pgTx) EventTypes() shared.EventTypeRepository {
	if t.eventTypeRepo == nil {
		t.eventTypeRepo = repository.NewEventTypeRepository()
	}
	return t.eventTypeRepo
}

func (t *pgTx) Availability() shared.AvailabilityRepository {
	if t.availabilityRepo == nil {
		t.availabilityRepo = repository.NewAvailabilityRepository()
	}
	return t.availabilityRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx infra.DBTX

	// Lazy-initialized readstores
	userStore      *readstore.UserReadStore
	expertStore    *readstore.ExpertReadStore
	eventTypeStore *readstore.EventTypeReadStore
	bookingStore   *readstore.BookingReadStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) experts() *readstore.ExpertReadStore {
	if r.expertStore == nil {
		r.expertStore = readstore.NewExpertReadStore(r.dbtx)
	}
	return r.expertStore
}

func (r *commandReads) eventTypes() *readstore.EventTypeReadStore {
	if r.eventTypeStore == nil {
		r.eventTypeStore = readstore.NewEventTypeReadStore(r.dbtx)
	}
	return r.eventTypeStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	view, hash, err := r.users().FindCredentialsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		PasswordHash: hash,
		Role:         view.Role,
		Phone:        view.Phone,
		IsActive:     view.IsActive,
	}, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	view, hash, err := r.users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		PasswordHash: hash,
		Role:         view.Role,
		Phone:        view.Phone,
		IsActive:     view.IsActive,
	}, nil
}

func (r *commandReads) ExpertByID(ctx context.Context, id uuid.UUID) (*shared.ExpertSnapshot, error) {
	view, err := r.experts().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return expertSnapshot(view), nil
}

func (r *commandReads) ExpertByUserID(ctx context.Context, userID uuid.UUID) (*shared.ExpertSnapshot, error) {
	view, err := r.experts().FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return expertSnapshot(view), nil
}

func (r *commandReads) EventTypeByID(ctx context.Context, id uuid.UUID) (*shared.EventTypeSnapshot, error) {
	view, err := r.eventTypes().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.EventTypeSnapshot{
		ID:              view.ID,
		ExpertID:        view.ExpertID,
		Name:            view.Name,
		URLSlug:         view.URLSlug,
		DurationMinutes: view.DurationMinutes,
		Location:        view.Location,
		IsActive:        view.IsActive,
	}, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	view, err := r.bookings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.BookingSnapshot{
		ID:              view.ID,
		ClientID:        view.ClientID,
		ExpertID:        view.ExpertID,
		EventTypeID:     view.EventTypeID,
		Date:            view.Date,
		TimeSlot:        view.TimeSlot,
		EndTime:         view.EndTime,
		MeetingLink:     view.MeetingLink,
		Status:          view.Status,
		GuestName:       view.GuestName,
		GuestEmail:      view.GuestEmail,
		GuestPhone:      view.GuestPhone,
		GuestNotes:      view.GuestNotes,
		RescheduledFrom: view.RescheduledFrom,
		CreatedAt:       view.CreatedAt,
	}, nil
}

func (r *commandReads) ActiveBookingExists(ctx context.Context, expertID uuid.UUID, date, timeSlot string) (bool, error) {
	return r.bookings().ActiveBookingExists(ctx, expertID, date, timeSlot)
}

func expertSnapshot(view *queries.ExpertView) *shared.ExpertSnapshot {
	return &shared.ExpertSnapshot{
		ID:            view.ID,
		UserID:        view.UserID,
		Username:      view.Username,
		Category:      view.Category,
		Timezone:      view.Timezone,
		BufferMinutes: view.BufferMinutes,
	}
}
