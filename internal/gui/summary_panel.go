//go:build gui
// +build gui

package gui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shop-analytics/event-dashboard/internal/dataset"
	"github.com/shop-analytics/event-dashboard/internal/pipeline"
)

// SummaryPanel shows the describe() statistics of prices and a raw sample of
// the filtered rows.
func SummaryPanel(snap *pipeline.Snapshot) fyne.CanvasObject {
	desc := snap.PriceSummary
	if !desc.Valid {
		return widget.NewLabel("No data in range")
	}

	statsText := fmt.Sprintf(
		"count  %d\nmean   %.4f\nstd    %.4f\nmin    %.4f\n25%%    %.4f\n50%%    %.4f\n75%%    %.4f\nmax    %.4f",
		desc.Count, desc.Mean, desc.Std, desc.Min, desc.Q1, desc.Median, desc.Q3, desc.Max)

	stats := widget.NewLabel(statsText)
	stats.TextStyle = fyne.TextStyle{Monospace: true}

	items := []fyne.CanvasObject{
		widget.NewCard("Basic Statistics of Prices", "", stats),
	}

	if len(snap.Sample) > 0 {
		items = append(items, widget.NewCard("Sample of Raw Data", "", sampleTable(snap.Sample)))
	}

	return container.NewVBox(items...)
}

func sampleTable(sample []dataset.Event) fyne.CanvasObject {
	headers := []string{"event_time", "event_type", "product_id", "brand", "price"}

	rows := make([][]string, 0, len(sample))
	for _, ev := range sample {
		rows = append(rows, []string{
			ev.Time.Format(time.RFC3339),
			ev.Type,
			ev.ProductID,
			ev.Brand,
			fmt.Sprintf("%.2f", ev.Price),
		})
	}

	table := widget.NewTable(
		func() (int, int) {
			return len(rows) + 1, len(headers)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("0000-00-00T00:00:00Z")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.SetText(headers[id.Col])
				return
			}
			label.SetText(rows[id.Row-1][id.Col])
		},
	)
	table.SetColumnWidth(0, 200)

	return container.NewVScroll(table)
}
