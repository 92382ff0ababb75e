package analytics

import (
	"github.com/shop-analytics/event-dashboard/internal/dataset"
)

// Histogram is equal-width binned price counts for the distribution chart.
type Histogram struct {
	Valid    bool
	Min      float64
	BinWidth float64
	Counts   []int
}

// BinLabel returns the lower bound of bin i, for axis labels.
func (h *Histogram) BinLabel(i int) float64 {
	return h.Min + float64(i)*h.BinWidth
}

// MaxCount returns the largest bin count, for scaling bars.
func (h *Histogram) MaxCount() int {
	max := 0
	for _, c := range h.Counts {
		if c > max {
			max = c
		}
	}
	return max
}

// PriceHistogram bins the price column into bins equal-width buckets over
// [min, max]. All identical prices collapse into a single full bucket.
func PriceHistogram(v *dataset.View, bins int) Histogram {
	if bins < 1 || len(v.Events) == 0 {
		return Histogram{}
	}

	min := v.Events[0].Price
	max := min
	for i := range v.Events {
		p := v.Events[i].Price
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	if max == min {
		counts := make([]int, 1)
		counts[0] = len(v.Events)
		return Histogram{Valid: true, Min: min, BinWidth: 0, Counts: counts}
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for i := range v.Events {
		bin := int((v.Events[i].Price - min) / width)
		if bin >= bins {
			bin = bins - 1 // max value lands in the last bin
		}
		counts[bin]++
	}

	return Histogram{Valid: true, Min: min, BinWidth: width, Counts: counts}
}
