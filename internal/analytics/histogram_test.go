package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceHistogram(t *testing.T) {
	h := PriceHistogram(pricedView(0, 1, 2, 3, 4, 5, 6, 7, 8, 10), 5)
	require.True(t, h.Valid)

	assert.Equal(t, 0.0, h.Min)
	assert.Equal(t, 2.0, h.BinWidth)
	require.Len(t, h.Counts, 5)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 10, total)

	// The max value lands in the last bin, not past it.
	assert.Equal(t, []int{2, 2, 2, 2, 2}, h.Counts)
	assert.Equal(t, 2, h.MaxCount())
}

func TestPriceHistogramLabels(t *testing.T) {
	h := PriceHistogram(pricedView(100, 200), 4)
	require.True(t, h.Valid)
	assert.Equal(t, 100.0, h.BinLabel(0))
	assert.Equal(t, 125.0, h.BinLabel(1))
	assert.Equal(t, 175.0, h.BinLabel(3))
}

func TestPriceHistogramUniformPrices(t *testing.T) {
	h := PriceHistogram(pricedView(9.99, 9.99, 9.99), 50)
	require.True(t, h.Valid)
	assert.Equal(t, []int{3}, h.Counts)
	assert.Equal(t, 0.0, h.BinWidth)
}

func TestPriceHistogramEmptyView(t *testing.T) {
	h := PriceHistogram(pricedView(), 50)
	assert.False(t, h.Valid)

	h = PriceHistogram(pricedView(1, 2), 0)
	assert.False(t, h.Valid)
}
