package pipeline

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shop-analytics/event-dashboard/internal/analytics"
	"github.com/shop-analytics/event-dashboard/internal/config"
	"github.com/shop-analytics/event-dashboard/internal/dataset"
)

// Pipeline orchestrates one full Loader -> Filter -> Aggregator pass. It is
// synchronous: each interaction triggers one sequential Recompute whose
// Snapshot simply replaces the previous one.
type Pipeline struct {
	logger  *zap.Logger
	cfg     *config.Config
	loader  *dataset.Loader
	timings *Timings
}

// Snapshot is everything one run produces: the metrics and the chart data
// the rendering layer needs, with no live references back into the pipeline.
type Snapshot struct {
	RunID    string
	Range    dataset.DateRange
	RowCount int

	DistinctProducts int
	Prices           analytics.PriceExtremes

	TopBrands           []analytics.BrandCount
	BrandPurchaseValue  []analytics.BrandValue
	BrandUniqueProducts []analytics.BrandCount

	Timeline       analytics.Timeline
	CategoryPrices []analytics.CategoryPriceStats
	PriceSummary   analytics.PriceDescription
	PriceHistogram analytics.Histogram

	Sample  []dataset.Event
	Elapsed time.Duration
}

func New(logger *zap.Logger, cfg *config.Config) *Pipeline {
	return &Pipeline{
		logger:  logger,
		cfg:     cfg,
		loader:  dataset.NewLoader(logger),
		timings: NewTimings(),
	}
}

func (p *Pipeline) Loader() *dataset.Loader {
	return p.loader
}

func (p *Pipeline) Timings() *Timings {
	return p.timings
}

// LoadInitial loads the user-chosen CSV, or the configured default file when
// path is empty, and returns fresh state spanning the table's full range.
func (p *Pipeline) LoadInitial(path string) (*AppState, error) {
	if path == "" {
		path = filepath.Join(p.cfg.Data.Dir, p.cfg.Data.DefaultFile)
	}

	table, err := p.loader.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return NewAppState(table), nil
}

// Recompute runs the whole pipeline for the given state and returns the
// resulting snapshot. The state's range is clamped into the table's bounds
// before filtering; an empty filtered view yields a snapshot whose statistics
// carry their explicit no-data markers.
func (p *Pipeline) Recompute(state *AppState) (*Snapshot, error) {
	if state == nil || state.Source == nil {
		return nil, dataset.ErrNoData
	}

	runID := uuid.New().String()
	start := time.Now()

	r := state.Range.Clamp(state.Source.MinDate(), state.Source.MaxDate())

	view, err := dataset.Filter(state.Source, r)
	if err != nil {
		p.logger.Error("Range filter rejected",
			zap.String("run_id", runID),
			zap.String("range", r.String()),
			zap.Error(err))
		return nil, err
	}

	topN := p.cfg.Data.TopBrands
	snap := &Snapshot{
		RunID:    runID,
		Range:    r,
		RowCount: view.NumRows(),

		DistinctProducts: analytics.DistinctProductCount(view),
		Prices:           analytics.PriceExtremesAndMedian(view),

		TopBrands:           analytics.TopBrandsByCount(view, topN),
		BrandPurchaseValue:  analytics.TopBrandsByPurchaseValue(view, topN),
		BrandUniqueProducts: analytics.TopBrandsByUniquePurchasedProducts(view, topN),

		Timeline:       analytics.EventsPerDayByType(view),
		CategoryPrices: analytics.PriceStatsByCategory(view),
		PriceSummary:   analytics.DescribePrice(view),
		PriceHistogram: analytics.PriceHistogram(view, p.cfg.Data.HistogramBins),

		Sample: view.Sample(p.cfg.Data.SampleRows),
	}

	snap.Elapsed = time.Since(start)
	p.timings.Record(snap.Elapsed)

	p.logger.Info("Recompute complete",
		zap.String("run_id", runID),
		zap.String("range", r.String()),
		zap.Int("rows", snap.RowCount),
		zap.Int("distinctProducts", snap.DistinctProducts),
		zap.Duration("elapsed", snap.Elapsed))

	return snap, nil
}
