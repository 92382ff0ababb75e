//go:build gui
// +build gui

package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/shop-analytics/event-dashboard/internal/config"
	"github.com/shop-analytics/event-dashboard/internal/dataset"
	"github.com/shop-analytics/event-dashboard/internal/pipeline"
)

// Application is the Fyne dashboard host around the pipeline. Every user
// interaction funnels into one sequential recompute; the new snapshot
// replaces the previous one wholesale.
type Application struct {
	logger *zap.Logger
	cfg    *config.Config

	fyneApp fyne.App
	window  fyne.Window

	pipe  *pipeline.Pipeline
	state *pipeline.AppState
	snap  *pipeline.Snapshot

	// Throttles auto-refresh from rapid picker edits; Apply bypasses it.
	refreshLimiter *rate.Limiter

	rangePicker *DateRangePicker
	metrics     *MetricsPanel
	tabs        *container.AppTabs
	statusBar   *StatusBar

	initFile string
}

// NewApplication creates the dashboard application.
func NewApplication(logger *zap.Logger, cfg *config.Config, initFile string) *Application {
	fyneApp := app.New()
	if cfg.Dashboard.Theme == "dark" {
		fyneApp.Settings().SetTheme(theme.DarkTheme())
	}

	window := fyneApp.NewWindow(cfg.Dashboard.Title)
	window.Resize(fyne.NewSize(float32(cfg.Dashboard.Width), float32(cfg.Dashboard.Height)))

	minGap := cfg.Dashboard.RefreshMinGap
	if minGap <= 0 {
		minGap = 200 * time.Millisecond
	}

	return &Application{
		logger:         logger,
		cfg:            cfg,
		fyneApp:        fyneApp,
		window:         window,
		pipe:           pipeline.New(logger, cfg),
		refreshLimiter: rate.NewLimiter(rate.Every(minGap), 1),
		metrics:        NewMetricsPanel(),
		statusBar:      NewStatusBar(),
		initFile:       initFile,
	}
}

// Run loads the initial data and blocks until the window closes. A missing
// default file shows the "no data available" screen with a file chooser
// instead of rendering partial output.
func (a *Application) Run() error {
	state, err := a.pipe.LoadInitial(a.initFile)
	if err != nil {
		if errors.Is(err, dataset.ErrNoData) {
			a.showNoData()
			a.window.ShowAndRun()
			return nil
		}
		return err
	}
	a.state = state

	snap, err := a.pipe.Recompute(a.state)
	if err != nil {
		return err
	}
	a.snap = snap

	a.buildUI()
	a.window.ShowAndRun()
	return nil
}

func (a *Application) showNoData() {
	msg := widget.NewLabel("No data available.\nUpload a CSV file to begin analysis.")
	msg.Alignment = fyne.TextAlignCenter

	openBtn := widget.NewButton("Open CSV...", a.openFileDialog)

	a.window.SetContent(container.NewVBox(msg, openBtn))
}

func (a *Application) buildUI() {
	a.rangePicker = NewDateRangePicker(a.snap.Range.Start, a.snap.Range.End, a.onRangeChanged)

	applyBtn := widget.NewButton("Apply", func() {
		if start, end, ok := a.rangePicker.Range(); ok {
			a.applyRange(start, end)
		}
	})
	openBtn := widget.NewButton("Open CSV...", a.openFileDialog)

	topBar := container.NewHBox(
		widget.NewLabel(a.cfg.Dashboard.Title),
		widget.NewSeparator(),
		a.rangePicker,
		applyBtn,
		widget.NewSeparator(),
		openBtn,
	)

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Price Distribution", HistogramChart(a.snap.PriceHistogram)),
		container.NewTabItem("Top Brands", BrandCountChart(a.snap.TopBrands)),
		container.NewTabItem("Brand Sales", a.brandSalesTab()),
		container.NewTabItem("Events Over Time", TimelineTable(a.snap.Timeline)),
		container.NewTabItem("Categories", CategoryTable(a.snap.CategoryPrices)),
		container.NewTabItem("Summary", SummaryPanel(a.snap)),
	)

	center := container.NewBorder(a.metrics.Object(), nil, nil, nil, a.tabs)

	a.window.SetContent(container.NewBorder(topBar, a.statusBar.Object(), nil, nil, center))
	a.updateWidgets()
}

// brandSalesTab pairs the two purchase-restricted rankings side by side.
func (a *Application) brandSalesTab() fyne.CanvasObject {
	return container.NewGridWithColumns(2,
		widget.NewCard("Top Brands by Sales Value", "", BrandValueChart(a.snap.BrandPurchaseValue)),
		widget.NewCard("Top Brands by Unique Products Sold", "", BrandCountChart(a.snap.BrandUniqueProducts)),
	)
}

func (a *Application) onRangeChanged(start, end time.Time) {
	if !a.cfg.Dashboard.AutoRefresh {
		return
	}
	if !a.refreshLimiter.Allow() {
		return // Apply always recomputes; dropped edits are not lost state
	}
	a.applyRange(start, end)
}

func (a *Application) applyRange(start, end time.Time) {
	r := dataset.NewDateRange(start, end)
	if r.Inverted() {
		a.statusBar.SetMessage("Start is after end; range rejected")
		return
	}

	a.state.SetRange(r)
	a.refresh()
}

// refresh runs one recompute and repaints every panel from the new snapshot.
func (a *Application) refresh() {
	snap, err := a.pipe.Recompute(a.state)
	if err != nil {
		a.logger.Error("Recompute failed", zap.Error(err))
		dialog.ShowError(err, a.window)
		return
	}
	a.snap = snap
	a.updateWidgets()
}

func (a *Application) updateWidgets() {
	a.metrics.Update(a.snap)

	a.tabs.Items[0].Content = HistogramChart(a.snap.PriceHistogram)
	a.tabs.Items[1].Content = BrandCountChart(a.snap.TopBrands)
	a.tabs.Items[2].Content = a.brandSalesTab()
	a.tabs.Items[3].Content = TimelineTable(a.snap.Timeline)
	a.tabs.Items[4].Content = CategoryTable(a.snap.CategoryPrices)
	a.tabs.Items[5].Content = SummaryPanel(a.snap)
	a.tabs.Refresh()

	a.rangePicker.SetRange(a.snap.Range.Start, a.snap.Range.End)
	a.statusBar.Update(a.state.Source.Source, a.snap, a.pipe.Timings().Summary())
}

func (a *Application) openFileDialog() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if rc == nil {
			return // cancelled
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			dialog.ShowError(fmt.Errorf("read upload: %w", err), a.window)
			return
		}

		table, err := a.pipe.Loader().LoadBytes(rc.URI().Name(), data)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		if a.state == nil {
			a.state = pipeline.NewAppState(table)
			snap, err := a.pipe.Recompute(a.state)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.snap = snap
			a.buildUI()
			return
		}

		a.state.SetSource(table)
		a.refresh()
	}, a.window)
}
