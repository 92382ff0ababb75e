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

// MetricsPanel is the row of key performance metric cards.
type MetricsPanel struct {
	products *widget.Label
	highest  *widget.Label
	lowest   *widget.Label
	median   *widget.Label

	object fyne.CanvasObject
}

func NewMetricsPanel() *MetricsPanel {
	m := &MetricsPanel{
		products: widget.NewLabel("-"),
		highest:  widget.NewLabel("-"),
		lowest:   widget.NewLabel("-"),
		median:   widget.NewLabel("-"),
	}
	m.products.TextStyle = fyne.TextStyle{Bold: true}
	m.highest.TextStyle = fyne.TextStyle{Bold: true}
	m.lowest.TextStyle = fyne.TextStyle{Bold: true}
	m.median.TextStyle = fyne.TextStyle{Bold: true}

	m.object = container.NewGridWithColumns(4,
		widget.NewCard("Total Products", "", m.products),
		widget.NewCard("Highest Price", "", m.highest),
		widget.NewCard("Lowest Price", "", m.lowest),
		widget.NewCard("Median Price", "", m.median),
	)

	return m
}

func (m *MetricsPanel) Object() fyne.CanvasObject {
	return m.object
}

// Update refreshes the cards from a snapshot. An empty range shows "no data"
// instead of fabricated zeros.
func (m *MetricsPanel) Update(snap *pipeline.Snapshot) {
	m.products.SetText(fmt.Sprintf("%d", snap.DistinctProducts))

	if snap.Prices.Valid {
		m.highest.SetText(fmt.Sprintf("$%.2f", snap.Prices.Max))
		m.lowest.SetText(fmt.Sprintf("$%.2f", snap.Prices.Min))
		m.median.SetText(fmt.Sprintf("$%.2f", snap.Prices.Median))
	} else {
		m.highest.SetText("no data")
		m.lowest.SetText("no data")
		m.median.SetText("no data")
	}
}
