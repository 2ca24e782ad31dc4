package main

import (
	"regexp"

	"github.com/andareed/siftly-visitors/logging"
	"github.com/andareed/siftly-visitors/visitors"
)

type dataState struct {
	header      []ColumnMeta
	table       *visitors.Table // full table, durations computed once at load
	view        *visitors.Table // date window and text filter applied
	summary     visitors.Summary
	filterRegex *regexp.Regexp
	dateWindow  visitors.DateRange
	dateBounds  visitors.DateRange
	hasDates    bool
}

func newDataState(tbl *visitors.Table) dataState {
	visitors.ComputeDurations(tbl)
	d := dataState{
		header: buildColumns(tbl),
		table:  tbl,
	}
	d.dateBounds, d.hasDates = tbl.DateBounds()
	d.dateWindow = d.dateBounds
	d.apply()
	return d
}

// apply recomputes the view from the full table. Records without a valid date
// never satisfy the date window.
func (d *dataState) apply() {
	view := &visitors.Table{Header: d.table.Header}
	if d.hasDates {
		view = visitors.FilterByDateRange(d.table, d.dateWindow.Start, d.dateWindow.End)
	}
	if re := d.filterRegex; re != nil {
		view = view.Where(func(r visitors.Record) bool {
			return re.MatchString(r.String())
		})
	}
	d.view = view
	d.summary = visitors.Summarize(view)
	logging.Debugf("apply: window=%s filter=%v rows=%d/%d", d.dateWindow, d.filterRegex, view.Len(), d.table.Len())
}

func (d *dataState) windowIsFull() bool {
	return d.dateWindow.Start.Equal(d.dateBounds.Start) && d.dateWindow.End.Equal(d.dateBounds.End)
}
