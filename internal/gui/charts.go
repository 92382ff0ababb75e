//go:build gui
// +build gui

package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shop-analytics/event-dashboard/internal/analytics"
)

const (
	maxBarWidth    = 420
	barHeight      = 18
	barLabelWidth  = 200
	barValueFormat = "%.2f"
)

// accentColor is the bar fill for all chart rows.
var accentColor = color.NRGBA{R: 0x21, G: 0x93, B: 0xb0, A: 0xff}

// barRow renders one horizontal chart bar: fixed-width label, a rectangle
// scaled against max, and the value text.
func barRow(label string, value, max float64, valueText string) fyne.CanvasObject {
	name := widget.NewLabel(label)
	name.Truncation = fyne.TextTruncateEllipsis

	// Fixed-width container so the bars start on a common axis.
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(barLabelWidth, name.MinSize().Height))
	nameCell := container.NewMax(spacer, name)

	bar := canvas.NewRectangle(accentColor)
	width := float32(2)
	if max > 0 && value > 0 {
		width = float32(value/max) * maxBarWidth
		if width < 2 {
			width = 2
		}
	}
	bar.SetMinSize(fyne.NewSize(width, barHeight))

	return container.NewHBox(nameCell, bar, widget.NewLabel(valueText))
}

// BrandCountChart renders a brand ranking as horizontal bars.
func BrandCountChart(entries []analytics.BrandCount) fyne.CanvasObject {
	if len(entries) == 0 {
		return widget.NewLabel("No brand data in range")
	}

	max := float64(entries[0].Count)
	rows := make([]fyne.CanvasObject, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, barRow(e.Brand, float64(e.Count), max, fmt.Sprintf("%d", e.Count)))
	}
	return container.NewVBox(rows...)
}

// BrandValueChart renders a monetary brand ranking as horizontal bars.
func BrandValueChart(entries []analytics.BrandValue) fyne.CanvasObject {
	if len(entries) == 0 {
		return widget.NewLabel("No purchases in range")
	}

	max := entries[0].Value
	rows := make([]fyne.CanvasObject, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, barRow(e.Brand, e.Value, max, fmt.Sprintf("$"+barValueFormat, e.Value)))
	}
	return container.NewVBox(rows...)
}

// HistogramChart renders the price distribution, one bar per bin, inside a
// scroll container since bin counts run to 50.
func HistogramChart(h analytics.Histogram) fyne.CanvasObject {
	if !h.Valid {
		return widget.NewLabel("No price data in range")
	}

	max := float64(h.MaxCount())
	rows := make([]fyne.CanvasObject, 0, len(h.Counts))
	for i, count := range h.Counts {
		label := fmt.Sprintf("$%.2f - $%.2f", h.BinLabel(i), h.BinLabel(i)+h.BinWidth)
		rows = append(rows, barRow(label, float64(count), max, fmt.Sprintf("%d", count)))
	}

	scroll := container.NewVScroll(container.NewVBox(rows...))
	scroll.SetMinSize(fyne.NewSize(0, 420))
	return scroll
}

// TimelineTable renders the events-per-day counts, one column per type.
func TimelineTable(tl analytics.Timeline) fyne.CanvasObject {
	if len(tl.Dates) == 0 {
		return widget.NewLabel("No events in range")
	}

	table := widget.NewTable(
		func() (int, int) {
			return len(tl.Dates) + 1, len(tl.Types) + 1
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("0000-00-00")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			switch {
			case id.Row == 0 && id.Col == 0:
				label.SetText("date")
			case id.Row == 0:
				label.SetText(tl.Types[id.Col-1])
			case id.Col == 0:
				label.SetText(tl.Dates[id.Row-1])
			default:
				label.SetText(fmt.Sprintf("%d", tl.Counts[id.Row-1][id.Col-1]))
			}
		},
	)
	table.SetColumnWidth(0, 120)

	return table
}

// CategoryTable renders per-category price statistics.
func CategoryTable(stats []analytics.CategoryPriceStats) fyne.CanvasObject {
	if len(stats) == 0 {
		return widget.NewLabel("No category data in range")
	}

	headers := []string{"category", "count", "mean", "min", "max"}
	table := widget.NewTable(
		func() (int, int) {
			return len(stats) + 1, len(headers)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("placeholder")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.SetText(headers[id.Col])
				return
			}
			s := stats[id.Row-1]
			switch id.Col {
			case 0:
				label.SetText(s.Category)
			case 1:
				label.SetText(fmt.Sprintf("%d", s.Count))
			case 2:
				label.SetText(fmt.Sprintf(barValueFormat, s.Mean))
			case 3:
				label.SetText(fmt.Sprintf(barValueFormat, s.Min))
			case 4:
				label.SetText(fmt.Sprintf(barValueFormat, s.Max))
			}
		},
	)
	table.SetColumnWidth(0, 320)

	return table
}
