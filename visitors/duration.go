package visitors

const (
	// rolloverMinutes is added once when check-out reads earlier than check-in.
	rolloverMinutes = 720
	dayMinutes      = 24 * 60
)

// VisitDuration returns the minutes between check-in and check-out text.
//
// A null endpoint gives 0. A negative difference gets rolloverMinutes added;
// if that still leaves it negative the visit is taken to span midnight and a
// full day is added to the raw difference instead.
func VisitDuration(checkIn, checkOut string) float64 {
	diff, ok := ParseClock(checkOut).Sub(ParseClock(checkIn))
	if !ok {
		return 0
	}
	if diff >= 0 {
		return diff
	}
	if corrected := diff + rolloverMinutes; corrected >= 0 {
		return corrected
	}
	return diff + dayMinutes
}

// ComputeDurations fills DurationMinutes on every record of t and returns t.
func ComputeDurations(t *Table) *Table {
	if t == nil {
		return nil
	}
	for i := range t.Records {
		r := &t.Records[i]
		r.DurationMinutes = VisitDuration(r.CheckIn, r.CheckOut)
	}
	return t
}
