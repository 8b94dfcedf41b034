package availability

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("time must be in HH:mm format")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrStartAfterEnd    = errors.New("open rule requires start time before end time")
)

// ClockTime is a wall-clock time of day ("09:00", "17:30"). Zero-padded
// HH:mm strings compare correctly with plain string ordering, which is the
// only comparison the schedule needs.
type ClockTime struct {
	value string
}

func NewClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	// Re-format so "9:00" is stored canonically as "09:00".
	return ClockTime{value: t.Format("15:04")}, nil
}

func MustClockTime(s string) ClockTime {
	ct, err := NewClockTime(s)
	if err != nil {
		panic(fmt.Sprintf("availability: bad clock time %q", s))
	}
	return ct
}

func (c ClockTime) String() string { return c.value }

func (c ClockTime) Before(other ClockTime) bool {
	return c.value < other.value
}

// Rule is one weekday's availability window in the expert's home timezone.
type Rule struct {
	weekday time.Weekday
	isOpen  bool
	start   ClockTime
	end     ClockTime
}

func NewRule(weekday time.Weekday, isOpen bool, start, end ClockTime) (Rule, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return Rule{}, ErrInvalidWeekday
	}
	if isOpen && !start.Before(end) {
		return Rule{}, ErrStartAfterEnd
	}
	return Rule{weekday: weekday, isOpen: isOpen, start: start, end: end}, nil
}

func ClosedRule(weekday time.Weekday) Rule {
	return Rule{weekday: weekday}
}

func (r Rule) Weekday() time.Weekday { return r.weekday }
func (r Rule) IsOpen() bool          { return r.isOpen }
func (r Rule) Start() ClockTime      { return r.start }
func (r Rule) End() ClockTime        { return r.end }

// Contains reports whether an expert-local wall-clock time falls inside the
// rule's half-open [start, end) window.
func (r Rule) Contains(local ClockTime) bool {
	if !r.isOpen {
		return false
	}
	return !local.Before(r.start) && local.Before(r.end)
}
