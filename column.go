package main

import (
	"strings"

	"github.com/andareed/siftly-visitors/visitors"
)

type ColumnRole int

const (
	RoleNormal    ColumnRole = iota
	RolePrimary              // visitor name, purpose
	RoleSecondary            // dates, times, duration
)

type ColumnMeta struct {
	Name     string
	Index    int
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

var roleLayout = map[ColumnRole]struct {
	minWidth int
	weight   float64
}{
	RolePrimary:   {18, 3.0},
	RoleSecondary: {12, 1.5},
	RoleNormal:    {8, 1.0},
}

func detectRole(name string) ColumnRole {
	n := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
	switch {
	case strings.Contains(n, "name"), n == strings.ToLower(visitors.ColPurpose):
		return RolePrimary
	case n == "date", strings.HasSuffix(n, "time"), n == strings.ToLower(visitors.ColDuration):
		return RoleSecondary
	default:
		return RoleNormal
	}
}

// buildColumns lays out the source header plus the derived duration column.
func buildColumns(tbl *visitors.Table) []ColumnMeta {
	names := append(append(make([]string, 0, len(tbl.Header)+1), tbl.Header...), visitors.ColDuration)

	cols := make([]ColumnMeta, len(names))
	for i, name := range names {
		role := detectRole(name)
		layout := roleLayout[role]
		cols[i] = ColumnMeta{
			Name:     strings.TrimPrefix(name, "\ufeff"),
			Index:    i,
			Role:     role,
			Visible:  true,
			MinWidth: layout.minWidth,
			Weight:   layout.weight,
		}
	}
	hideEmptyColumns(cols[:len(tbl.Header)], tbl.Records)
	return cols
}

// hideEmptyColumns hides source columns that are blank in every record.
// Primary columns always stay.
func hideEmptyColumns(cols []ColumnMeta, records []visitors.Record) {
	if len(records) == 0 {
		return
	}
	filled := make([]bool, len(cols))
	for _, r := range records {
		for i := range cols {
			if !filled[i] && cols[i].Index < len(r.Cols) && strings.TrimSpace(r.Cols[cols[i].Index]) != "" {
				filled[i] = true
			}
		}
	}
	for i := range cols {
		if filled[i] || cols[i].Role == RolePrimary {
			continue
		}
		cols[i].Visible = false
		cols[i].Weight = 0
		cols[i].Width = 0
	}
}

// layoutColumns shares totalWidth between the visible columns: each gets its
// minimum, the rest is split by weight and any rounding slack goes to the
// first primary column.
func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	need, weights := 0, 0.0
	for _, c := range cols {
		if c.Visible {
			need += c.MinWidth
			weights += c.Weight
		}
	}

	spare := totalWidth - need
	used := 0
	slack := -1
	for i := range cols {
		c := &cols[i]
		if !c.Visible {
			c.Width = 0
			continue
		}
		c.Width = min(c.MinWidth, totalWidth)
		if spare > 0 && weights > 0 {
			c.Width += int(float64(spare) * c.Weight / weights)
		}
		used += c.Width
		if slack < 0 && c.Role == RolePrimary {
			slack = i
		}
	}
	if spare > 0 && slack >= 0 && used < totalWidth {
		cols[slack].Width += totalWidth - used
	}
	return cols
}
