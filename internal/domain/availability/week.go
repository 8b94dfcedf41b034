package availability

import "time"

// WeekSchedule holds exactly one rule per weekday, indexed by time.Weekday
// (Sunday = 0).
type WeekSchedule struct {
	rules [7]Rule
}

func NewWeekSchedule(rules []Rule) (WeekSchedule, error) {
	var w WeekSchedule
	for d := time.Sunday; d <= time.Saturday; d++ {
		w.rules[d] = ClosedRule(d)
	}
	for _, r := range rules {
		if r.weekday < time.Sunday || r.weekday > time.Saturday {
			return WeekSchedule{}, ErrInvalidWeekday
		}
		w.rules[r.weekday] = r
	}
	return w, nil
}

// DefaultWeek is the template provisioned when a user becomes an expert:
// Monday through Friday 09:00-17:00, weekend closed.
func DefaultWeek() WeekSchedule {
	start := MustClockTime("09:00")
	end := MustClockTime("17:00")

	var w WeekSchedule
	w.rules[time.Sunday] = ClosedRule(time.Sunday)
	w.rules[time.Saturday] = ClosedRule(time.Saturday)
	for d := time.Monday; d <= time.Friday; d++ {
		w.rules[d] = Rule{weekday: d, isOpen: true, start: start, end: end}
	}
	return w
}

func (w WeekSchedule) Rule(day time.Weekday) Rule {
	return w.rules[day]
}

func (w WeekSchedule) Rules() []Rule {
	out := make([]Rule, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out = append(out, w.rules[d])
	}
	return out
}
