package visitors

import (
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	clockLayout = "3 PM"
)

// Clock is a time of day in minutes since midnight. The zero value is null.
type Clock struct {
	Minutes int
	Valid   bool
}

// ParseDate parses a calendar date. Unparseable input yields ok=false.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "\ufeff")
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ParseClock parses a 12-hour time such as "11 AM" or "1 pm". The hour must
// be 1-12; "0 PM" is null.
func ParseClock(raw string) Clock {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" || zeroHour(raw) {
		return Clock{}
	}
	t, err := time.Parse(clockLayout, raw)
	if err != nil {
		return Clock{}
	}
	return Clock{Minutes: t.Hour()*60 + t.Minute(), Valid: true}
}

func zeroHour(raw string) bool {
	digits := strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' })
	if digits < 0 {
		digits = len(raw)
	}
	return digits > 0 && strings.Trim(raw[:digits], "0") == ""
}

// Sub returns c-o in minutes; ok is false when either side is null.
func (c Clock) Sub(o Clock) (float64, bool) {
	if !c.Valid || !o.Valid {
		return 0, false
	}
	return float64(c.Minutes - o.Minutes), true
}

func (c Clock) String() string {
	if !c.Valid {
		return ""
	}
	return time.Date(0, 1, 1, 0, c.Minutes, 0, 0, time.UTC).Format(clockLayout)
}
