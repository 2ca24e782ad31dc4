package visitors

import "time"

// DateRange is an inclusive interval of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both bounds to their calendar day.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// Day returns t's calendar date as midnight UTC, so days from different
// locations compare by date alone.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Adjust widens the range to include t.
func (r *DateRange) Adjust(t time.Time) {
	d := Day(t)
	if r.Start.IsZero() || d.Before(r.Start) {
		r.Start = d
	}
	if r.End.IsZero() || d.After(r.End) {
		r.End = d
	}
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Days counts the calendar days covered, 0 for an inverted range.
func (r DateRange) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " - " + r.End.Format(DateLayout)
}
