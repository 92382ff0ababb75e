package analytics

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/shop-analytics/event-dashboard/internal/dataset"
)

// PriceExtremes carries the headline price metrics. Valid is false on an
// empty view: the extremes are undefined, not zero.
type PriceExtremes struct {
	Valid  bool
	Max    float64
	Min    float64
	Median float64
}

// PriceDescription mirrors a dataframe describe() over the price column.
// Valid is the explicit no-data signal for the empty view.
type PriceDescription struct {
	Valid  bool
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// CategoryPriceStats is the per-category price summary row.
type CategoryPriceStats struct {
	Category string
	Count    int
	Mean     float64
	Min      float64
	Max      float64
}

func prices(v *dataset.View) []float64 {
	out := make([]float64, len(v.Events))
	for i := range v.Events {
		out[i] = v.Events[i].Price
	}
	return out
}

// orNaN folds a stats-library error (empty or degenerate input) into NaN,
// which is the defined "undefined statistic" value for non-empty views.
func orNaN(value float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return value
}

// PriceExtremesAndMedian computes max, min and median of the price column.
func PriceExtremesAndMedian(v *dataset.View) PriceExtremes {
	data := prices(v)
	if len(data) == 0 {
		return PriceExtremes{}
	}

	return PriceExtremes{
		Valid:  true,
		Max:    orNaN(stats.Max(data)),
		Min:    orNaN(stats.Min(data)),
		Median: orNaN(stats.Median(data)),
	}
}

// DescribePrice computes count, mean, sample standard deviation, min,
// quartiles and max of the price column.
func DescribePrice(v *dataset.View) PriceDescription {
	data := prices(v)
	if len(data) == 0 {
		return PriceDescription{}
	}

	quartiles, qErr := stats.Quartile(data)
	desc := PriceDescription{
		Valid:  true,
		Count:  len(data),
		Mean:   orNaN(stats.Mean(data)),
		Std:    orNaN(stats.StandardDeviationSample(data)),
		Min:    orNaN(stats.Min(data)),
		Median: orNaN(stats.Median(data)),
		Max:    orNaN(stats.Max(data)),
		Q1:     math.NaN(),
		Q3:     math.NaN(),
	}
	if qErr == nil {
		desc.Q1 = quartiles.Q1
		desc.Q3 = quartiles.Q3
	}

	return desc
}

// PriceStatsByCategory computes mean/min/max of price per category code,
// sorted by category. The result is empty when the view has no category
// column; null categories are excluded from the grouping.
func PriceStatsByCategory(v *dataset.View) []CategoryPriceStats {
	if !v.HasCategory {
		return nil
	}

	type acc struct {
		count int
		sum   float64
		min   float64
		max   float64
	}
	groups := make(map[string]*acc)

	for i := range v.Events {
		ev := &v.Events[i]
		if ev.CategoryCode == "" {
			continue
		}
		g, ok := groups[ev.CategoryCode]
		if !ok {
			g = &acc{min: ev.Price, max: ev.Price}
			groups[ev.CategoryCode] = g
		}
		g.count++
		g.sum += ev.Price
		if ev.Price < g.min {
			g.min = ev.Price
		}
		if ev.Price > g.max {
			g.max = ev.Price
		}
	}

	out := make([]CategoryPriceStats, 0, len(groups))
	for category, g := range groups {
		out = append(out, CategoryPriceStats{
			Category: category,
			Count:    g.count,
			Mean:     g.sum / float64(g.count),
			Min:      g.min,
			Max:      g.max,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})

	return out
}
