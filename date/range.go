package date

import "time"

// Range represents a range of dates with inclusive boundaries.
// A zero From or To leaves that side of the range open.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, boundaries included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// IsZero reports whether both boundaries are open.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains return true if date is included in the range (boundaries included).
// An open boundary imposes no restriction.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// ContainsTime reports whether the instant falls on a day included in the range.
func (r Range) ContainsTime(t time.Time) bool { return r.Contains(Of(t)) }
