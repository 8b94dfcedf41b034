package repository

import (
	"errors"
	"strings"

	"expertbook/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"

	activeSlotIndexName = "uq_bookings_active_slot"
)

// classify maps low-level pg errors to repository kinds. A unique violation
// on the active-slot partial index is a reservation Conflict, not a generic
// duplicate key: it is the uniqueness invariant firing under a race.
func classify(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		if strings.Contains(pgErr.ConstraintName, activeSlotIndexName) {
			return infra.KindConflict
		}
		return infra.KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return infra.KindForeignKeyViolated
	default:
		return infra.KindDBFailure
	}
}
