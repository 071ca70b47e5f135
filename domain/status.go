package domain

import "time"

// Status classifies a task's due date relative to the current day.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due_today"
	StatusUpcoming Status = "upcoming"
	StatusNoDue    Status = "no_due"
)

const dueLayout = "2006-01-02"

// ParseDue parses a strict YYYY-MM-DD due date. The bool reports whether
// the value was parseable; malformed and impossible dates are not errors.
func ParseDue(due string) (time.Time, bool) {
	d, err := time.Parse(dueLayout, due)
	if err != nil {
		return time.Time{}, false
	}
	if d.Format(dueLayout) != due {
		return time.Time{}, false
	}
	return d, true
}

// Classify reports how due relates to today by calendar day. Anything
// that fails the strict parse maps to StatusNoDue, never to an error.
func Classify(due string, today time.Time) Status {
	if _, ok := ParseDue(due); !ok {
		return StatusNoDue
	}
	// YYYY-MM-DD strings order the same way the dates do.
	switch day := today.Format(dueLayout); {
	case due < day:
		return StatusOverdue
	case due == day:
		return StatusDueToday
	default:
		return StatusUpcoming
	}
}
