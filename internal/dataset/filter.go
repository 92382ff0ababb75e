package dataset

import (
	"errors"
	"time"
)

// ErrInvertedRange is returned when a range's start date is after its end.
// Inverted ranges are rejected rather than treated as empty, so the UI can
// tell the user instead of silently rendering nothing.
var ErrInvertedRange = errors.New("date range start is after end")

// DateRange is an inclusive [Start, End] pair of dates (midnight UTC).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two timestamps, keeping only their date
// components. A single-day range (start == end) selects exactly that day.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// Day truncates a timestamp to its date component at midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date component of ts falls inside the range.
func (r DateRange) Contains(ts time.Time) bool {
	day := Day(ts)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Inverted reports whether the range is empty-by-construction.
func (r DateRange) Inverted() bool {
	return r.Start.After(r.End)
}

// Clamp restricts the range to [min, max]. Clamping a valid range against a
// valid bound never produces an inverted range.
func (r DateRange) Clamp(min, max time.Time) DateRange {
	out := r
	if out.Start.Before(min) {
		out.Start = min
	}
	if out.End.After(max) {
		out.End = max
	}
	// A range entirely outside the bounds collapses to the nearest edge.
	if out.Start.After(max) {
		out.Start = max
	}
	if out.End.Before(min) {
		out.End = min
	}
	return out
}

func (r DateRange) String() string {
	return r.Start.Format("2006-01-02") + " .. " + r.End.Format("2006-01-02")
}

// Filter produces the view of t whose event dates fall within r, inclusive.
// Pure and deterministic; an empty result is valid and aggregations over it
// report "no data" rather than failing.
func Filter(t *Table, r DateRange) (*View, error) {
	if r.Inverted() {
		return nil, ErrInvertedRange
	}

	view := &View{
		HasBrand:    t.HasBrand,
		HasCategory: t.HasCategory,
	}

	// Fast path: the range covers the whole table.
	if !t.minDate.IsZero() && !r.Start.After(t.minDate) && !r.End.Before(t.maxDate) {
		view.Events = t.Events
		return view, nil
	}

	for i := range t.Events {
		if r.Contains(t.Events[i].Time) {
			view.Events = append(view.Events, t.Events[i])
		}
	}

	return view, nil
}
