package dataset

import (
	"time"
)

// Event is one logged e-commerce interaction. Brand and CategoryCode are ""
// when the value (or the whole column) is absent.
type Event struct {
	Time         time.Time
	Type         string
	ProductID    string
	Brand        string
	Price        float64
	CategoryCode string
}

// Table is an immutable, ordered collection of events sharing one schema.
// Rows are not required to be sorted by time; min/max dates are fixed at load.
type Table struct {
	Events      []Event
	HasBrand    bool
	HasCategory bool

	// Source identity: where the bytes came from and their SHA-256.
	Source string
	Hash   string

	minDate time.Time
	maxDate time.Time
}

func (t *Table) NumRows() int {
	return len(t.Events)
}

// MinDate returns the date component of the earliest event time.
func (t *Table) MinDate() time.Time {
	return t.minDate
}

// MaxDate returns the date component of the latest event time.
func (t *Table) MaxDate() time.Time {
	return t.maxDate
}

// FullRange returns the inclusive range covering every row of the table.
func (t *Table) FullRange() DateRange {
	return DateRange{Start: t.minDate, End: t.maxDate}
}

// View is the read-only subset of a table selected by a date range. It owns
// no rows of its own; Events aliases the rows that matched.
type View struct {
	Events      []Event
	HasBrand    bool
	HasCategory bool
}

func (v *View) NumRows() int {
	return len(v.Events)
}

// Sample returns the first n rows of the view, for the raw data preview.
func (v *View) Sample(n int) []Event {
	if n > len(v.Events) {
		n = len(v.Events)
	}
	return v.Events[:n]
}
