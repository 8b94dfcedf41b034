package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrInvalidGuestEmail = errors.New("invalid guest email")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeSlot   = errors.New("time slot must be in HH:mm format")
	ErrSameSlot          = errors.New("reschedule target is the current slot")
)

// Status is the booking lifecycle state. Pending and Confirmed occupy the
// (expert, date, timeSlot) tuple; the rest have released it.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusConfirmed   Status = "Confirmed"
	StatusCompleted   Status = "Completed"
	StatusCancelled   Status = "Cancelled"
	StatusRescheduled Status = "Rescheduled"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// IsActive reports whether the booking still holds its slot tuple.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusRescheduled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusRescheduled},
}

// CanTransitionTo encodes the lifecycle: Pending → Confirmed → Completed,
// with Cancelled and Rescheduled reachable from either active state.
// Completed, Cancelled and Rescheduled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
