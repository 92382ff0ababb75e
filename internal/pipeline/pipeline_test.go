package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shop-analytics/event-dashboard/internal/config"
	"github.com/shop-analytics/event-dashboard/internal/dataset"
)

const fixtureCSV = `event_time,event_type,product_id,price,brand,category_code
2019-10-01 10:00:00 UTC,view,1001,150.00,samsung,electronics.smartphone
2019-10-01 10:05:00 UTC,cart,1001,150.00,samsung,electronics.smartphone
2019-10-01 10:10:00 UTC,purchase,1001,150.00,samsung,electronics.smartphone
2019-10-02 09:00:00 UTC,view,2002,900.00,apple,electronics.smartphone
2019-10-02 09:30:00 UTC,purchase,2002,900.00,apple,electronics.smartphone
2019-10-03 14:00:00 UTC,view,3003,25.00,,
`

func newTestPipeline(t *testing.T) (*Pipeline, *AppState) {
	t.Helper()

	cfg := config.Default()
	cfg.Data.HistogramBins = 5
	cfg.Data.SampleRows = 3

	p := New(zap.NewNop(), cfg)
	table, err := p.Loader().LoadBytes("fixture.csv", []byte(fixtureCSV))
	require.NoError(t, err)

	return p, NewAppState(table)
}

func TestRecomputeFullRange(t *testing.T) {
	p, state := newTestPipeline(t)

	snap, err := p.Recompute(state)
	require.NoError(t, err)

	assert.NotEmpty(t, snap.RunID)
	assert.Equal(t, 6, snap.RowCount)
	assert.Equal(t, 3, snap.DistinctProducts)

	require.True(t, snap.Prices.Valid)
	assert.Equal(t, 900.0, snap.Prices.Max)
	assert.Equal(t, 25.0, snap.Prices.Min)

	require.NotEmpty(t, snap.TopBrands)
	assert.Equal(t, "samsung", snap.TopBrands[0].Brand)
	assert.Equal(t, 3, snap.TopBrands[0].Count)

	require.Len(t, snap.BrandPurchaseValue, 2)
	assert.Equal(t, "apple", snap.BrandPurchaseValue[0].Brand)
	assert.Equal(t, 900.0, snap.BrandPurchaseValue[0].Value)

	assert.Equal(t, []string{"2019-10-01", "2019-10-02", "2019-10-03"}, snap.Timeline.Dates)
	assert.True(t, snap.PriceHistogram.Valid)
	assert.Len(t, snap.Sample, 3)
	assert.Greater(t, snap.Elapsed, time.Duration(0))
}

func TestRecomputeNarrowedRange(t *testing.T) {
	p, state := newTestPipeline(t)

	state.SetRange(dataset.NewDateRange(
		time.Date(2019, 10, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2019, 10, 2, 0, 0, 0, 0, time.UTC),
	))

	snap, err := p.Recompute(state)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.RowCount)
	assert.Equal(t, 1, snap.DistinctProducts)
	require.Len(t, snap.BrandPurchaseValue, 1)
	assert.Equal(t, "apple", snap.BrandPurchaseValue[0].Brand)
}

func TestRecomputeEmptyRangeYieldsNoDataMarkers(t *testing.T) {
	gapCSV := `event_time,event_type,product_id,price,brand,category_code
2019-10-01 10:00:00 UTC,view,1001,150.00,samsung,electronics.smartphone
2019-10-03 14:00:00 UTC,view,3003,25.00,sony,electronics.audio
`
	p := New(zap.NewNop(), config.Default())
	table, err := p.Loader().LoadBytes("gap.csv", []byte(gapCSV))
	require.NoError(t, err)

	state := NewAppState(table)
	state.SetRange(dataset.NewDateRange(
		time.Date(2019, 10, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2019, 10, 2, 0, 0, 0, 0, time.UTC),
	))

	snap, err := p.Recompute(state)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.RowCount)
	assert.False(t, snap.Prices.Valid)
	assert.False(t, snap.PriceSummary.Valid)
	assert.False(t, snap.PriceHistogram.Valid)
	assert.Empty(t, snap.TopBrands)
	assert.Empty(t, snap.Timeline.Dates)
	assert.Empty(t, snap.Sample)
}

func TestRecomputeNilState(t *testing.T) {
	p := New(zap.NewNop(), config.Default())

	_, err := p.Recompute(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrNoData))

	_, err = p.Recompute(&AppState{})
	assert.True(t, errors.Is(err, dataset.ErrNoData))
}

func TestRecomputeRecordsTimings(t *testing.T) {
	p, state := newTestPipeline(t)

	for i := 0; i < 3; i++ {
		_, err := p.Recompute(state)
		require.NoError(t, err)
	}

	summary := p.Timings().Summary()
	assert.Equal(t, int64(3), summary.Count)
	assert.GreaterOrEqual(t, summary.P95, summary.P50)
}

func TestLoadInitial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0644))

	cfg := config.Default()
	cfg.Data.Dir = dir
	cfg.Data.DefaultFile = "events.csv"

	p := New(zap.NewNop(), cfg)

	// Empty path falls back to the configured default file.
	state, err := p.LoadInitial("")
	require.NoError(t, err)
	assert.Equal(t, 6, state.Source.NumRows())
	assert.Equal(t, state.Source.FullRange(), state.Range)
}

func TestLoadInitialMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Dir = t.TempDir()

	p := New(zap.NewNop(), cfg)

	_, err := p.LoadInitial("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrNoData))
}

func TestAppStateSetRangeClamps(t *testing.T) {
	_, state := newTestPipeline(t)

	state.SetRange(dataset.NewDateRange(
		time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC),
	))
	assert.Equal(t, state.Source.FullRange(), state.Range)
}
