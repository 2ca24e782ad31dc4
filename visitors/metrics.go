package visitors

import (
	"math"
	"sort"
)

// DurationBins is the bin count of the duration histogram.
const DurationBins = 20

type Summary struct {
	Total       int
	Blacklisted int
	AvgAge      float64 // NaN when no record has a valid age
}

// Summarize computes the metric counters for t.
func Summarize(t *Table) Summary {
	s := Summary{AvgAge: math.NaN()}
	if t == nil {
		return s
	}
	s.Total = len(t.Records)
	sum, n := 0, 0
	for _, r := range t.Records {
		if r.IsBlacklisted() {
			s.Blacklisted++
		}
		if r.AgeValid {
			sum += r.Age
			n++
		}
	}
	if n > 0 {
		s.AvgAge = RoundTo(float64(sum)/float64(n), 1)
	}
	return s
}

// RoundTo rounds half to even, so 22.25 gives 22.2.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}

// Field names a categorical column.
type Field int

const (
	FieldPurpose Field = iota
	FieldGender
	FieldCheckIn
)

func (f Field) String() string {
	switch f {
	case FieldPurpose:
		return ColPurpose
	case FieldGender:
		return ColGender
	case FieldCheckIn:
		return ColCheckIn
	default:
		return "unknown"
	}
}

func (f Field) value(r Record) string {
	switch f {
	case FieldPurpose:
		return r.Purpose
	case FieldGender:
		return r.Gender
	case FieldCheckIn:
		return r.CheckIn
	default:
		return ""
	}
}

type Bucket struct {
	Label string
	Count int
}

// Counts tallies the raw text of field across t. Check-in times are ordered
// by clock value with unparseable labels last; other fields by count, then label.
func Counts(t *Table, field Field) []Bucket {
	if t == nil {
		return nil
	}
	tally := make(map[string]int)
	for _, r := range t.Records {
		tally[field.value(r)]++
	}
	out := make([]Bucket, 0, len(tally))
	for label, n := range tally {
		out = append(out, Bucket{Label: label, Count: n})
	}

	if field == FieldCheckIn {
		sort.Slice(out, func(i, j int) bool {
			ci, cj := ParseClock(out[i].Label), ParseClock(out[j].Label)
			if ci.Valid != cj.Valid {
				return ci.Valid
			}
			if ci.Minutes != cj.Minutes {
				return ci.Minutes < cj.Minutes
			}
			return out[i].Label < out[j].Label
		})
		return out
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Durations returns DurationMinutes for every record in order.
func Durations(t *Table) []float64 {
	if t == nil {
		return nil
	}
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.DurationMinutes
	}
	return out
}

type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram splits [min, max] of values into bins equal-width bins. The last
// bin is closed on the right. A constant input lands in a single unit-wide
// first bin. Empty input gives nil.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}

	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
