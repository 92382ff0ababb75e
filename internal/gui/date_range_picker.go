//go:build gui
// +build gui

package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DateRangePicker provides start/end date selection for the filter range.
type DateRangePicker struct {
	widget.BaseWidget
	startEntry *widget.DateEntry
	endEntry   *widget.DateEntry
	onChanged  func(start, end time.Time)

	suppress bool
}

// NewDateRangePicker creates a picker initialized to [start, end].
func NewDateRangePicker(start, end time.Time, onChange func(start, end time.Time)) *DateRangePicker {
	p := &DateRangePicker{onChanged: onChange}

	p.startEntry = widget.NewDateEntry()
	s := start
	p.startEntry.SetDate(&s)
	p.startEntry.OnChanged = func(*time.Time) { p.notify() }

	p.endEntry = widget.NewDateEntry()
	e := end
	p.endEntry.SetDate(&e)
	p.endEntry.OnChanged = func(*time.Time) { p.notify() }

	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer creates the widget renderer.
func (p *DateRangePicker) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewHBox(
		widget.NewLabel("Start:"), p.startEntry,
		widget.NewLabel("End:"), p.endEntry,
	)
	return widget.NewSimpleRenderer(content)
}

// Range returns the selected dates; ok is false while either entry is blank.
func (p *DateRangePicker) Range() (start, end time.Time, ok bool) {
	if p.startEntry.Date == nil || p.endEntry.Date == nil {
		return time.Time{}, time.Time{}, false
	}
	return *p.startEntry.Date, *p.endEntry.Date, true
}

// SetRange updates both entries without firing the change callback.
func (p *DateRangePicker) SetRange(start, end time.Time) {
	p.suppress = true
	s, e := start, end
	p.startEntry.SetDate(&s)
	p.endEntry.SetDate(&e)
	p.suppress = false
	p.Refresh()
}

func (p *DateRangePicker) notify() {
	if p.suppress || p.onChanged == nil {
		return
	}
	if start, end, ok := p.Range(); ok {
		p.onChanged(start, end)
	}
}
