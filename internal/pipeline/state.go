package pipeline

import (
	"github.com/shop-analytics/event-dashboard/internal/dataset"
)

// AppState is the explicit state threaded through the pipeline: the loaded
// source table and the user-selected date range. Nothing here is ambient;
// whatever UI hosts the dashboard owns one of these and hands it to
// Recompute on every interaction.
type AppState struct {
	Source *dataset.Table
	Range  dataset.DateRange
}

// NewAppState builds state for a freshly loaded table with the range
// defaulted to the table's full min/max span.
func NewAppState(table *dataset.Table) *AppState {
	return &AppState{
		Source: table,
		Range:  table.FullRange(),
	}
}

// SetRange replaces the selected range, clamped into the table's bounds.
func (s *AppState) SetRange(r dataset.DateRange) {
	s.Range = r.Clamp(s.Source.MinDate(), s.Source.MaxDate())
}

// SetSource swaps the table and resets the range to the new full span.
func (s *AppState) SetSource(table *dataset.Table) {
	s.Source = table
	s.Range = table.FullRange()
}
