//go:build gui
// +build gui

package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shop-analytics/event-dashboard/internal/pipeline"
)

// StatusBar is the bottom strip: source file, row count, selected range and
// recompute timing percentiles.
type StatusBar struct {
	source  *widget.Label
	rows    *widget.Label
	rng     *widget.Label
	timing  *widget.Label
	message *widget.Label

	object fyne.CanvasObject
}

func NewStatusBar() *StatusBar {
	s := &StatusBar{
		source:  widget.NewLabel("-"),
		rows:    widget.NewLabel("-"),
		rng:     widget.NewLabel("-"),
		timing:  widget.NewLabel("-"),
		message: widget.NewLabel(""),
	}

	s.object = container.NewHBox(
		widget.NewLabel("Source:"), s.source,
		widget.NewSeparator(),
		widget.NewLabel("Rows:"), s.rows,
		widget.NewSeparator(),
		widget.NewLabel("Range:"), s.rng,
		widget.NewSeparator(),
		widget.NewLabel("Recompute:"), s.timing,
		s.message,
	)

	return s
}

func (s *StatusBar) Object() fyne.CanvasObject {
	return s.object
}

func (s *StatusBar) Update(source string, snap *pipeline.Snapshot, timing pipeline.TimingSummary) {
	s.source.SetText(source)
	s.rows.SetText(fmt.Sprintf("%d", snap.RowCount))
	s.rng.SetText(snap.Range.String())
	s.timing.SetText(fmt.Sprintf("%s (p50 %s, p95 %s)", snap.Elapsed, timing.P50, timing.P95))
	s.message.SetText("")
}

// SetMessage shows a transient notice, e.g. a rejected range.
func (s *StatusBar) SetMessage(msg string) {
	s.message.SetText(msg)
}
