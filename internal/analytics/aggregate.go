// Package analytics provides the stateless aggregation operations computed
// over a filtered view of the event table. Every operation is read-only,
// independent of the others, and well-defined on the empty view.
//
// Rows whose brand or category is null ("") are excluded from the respective
// group-by keys, uniformly across all operations.
package analytics

import (
	"sort"

	"github.com/shop-analytics/event-dashboard/internal/dataset"
	"github.com/shop-analytics/event-dashboard/pkg/schema"
)

// BrandCount is one bar of a brand ranking chart.
type BrandCount struct {
	Brand string
	Count int
}

// BrandValue is one bar of a brand monetary ranking chart.
type BrandValue struct {
	Brand string
	Value float64
}

// DistinctProductCount counts unique product IDs in the view.
func DistinctProductCount(v *dataset.View) int {
	seen := make(map[string]struct{}, len(v.Events))
	for i := range v.Events {
		seen[v.Events[i].ProductID] = struct{}{}
	}
	return len(seen)
}

// TopBrandsByCount returns the n brands with the most rows, descending.
// Ties are broken by first appearance in row order, so the result is
// deterministic for a given table.
func TopBrandsByCount(v *dataset.View, n int) []BrandCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i := range v.Events {
		brand := v.Events[i].Brand
		if brand == "" {
			continue
		}
		if _, ok := counts[brand]; !ok {
			firstSeen[brand] = i
		}
		counts[brand]++
	}

	ranked := make([]BrandCount, 0, len(counts))
	for brand, count := range counts {
		ranked = append(ranked, BrandCount{Brand: brand, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Brand] < firstSeen[ranked[j].Brand]
	})

	return truncateCounts(ranked, n)
}

// TopBrandsByPurchaseValue sums Price over purchase rows per brand and
// returns the n largest, descending. View and cart rows contribute nothing.
func TopBrandsByPurchaseValue(v *dataset.View, n int) []BrandValue {
	values := make(map[string]float64)
	firstSeen := make(map[string]int)

	for i := range v.Events {
		ev := &v.Events[i]
		if ev.Brand == "" || ev.Type != string(schema.EventTypePurchase) {
			continue
		}
		if _, ok := values[ev.Brand]; !ok {
			firstSeen[ev.Brand] = i
		}
		values[ev.Brand] += ev.Price
	}

	ranked := make([]BrandValue, 0, len(values))
	for brand, value := range values {
		ranked = append(ranked, BrandValue{Brand: brand, Value: value})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return firstSeen[ranked[i].Brand] < firstSeen[ranked[j].Brand]
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopBrandsByUniquePurchasedProducts counts distinct product IDs per brand
// over purchase rows and returns the n largest, descending.
func TopBrandsByUniquePurchasedProducts(v *dataset.View, n int) []BrandCount {
	products := make(map[string]map[string]struct{})
	firstSeen := make(map[string]int)

	for i := range v.Events {
		ev := &v.Events[i]
		if ev.Brand == "" || ev.Type != string(schema.EventTypePurchase) {
			continue
		}
		set, ok := products[ev.Brand]
		if !ok {
			set = make(map[string]struct{})
			products[ev.Brand] = set
			firstSeen[ev.Brand] = i
		}
		set[ev.ProductID] = struct{}{}
	}

	ranked := make([]BrandCount, 0, len(products))
	for brand, set := range products {
		ranked = append(ranked, BrandCount{Brand: brand, Count: len(set)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Brand] < firstSeen[ranked[j].Brand]
	})

	return truncateCounts(ranked, n)
}

func truncateCounts(ranked []BrandCount, n int) []BrandCount {
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Timeline is the (date, event type) -> count matrix behind the events-over-
// time chart: one series per event type, one point per day.
type Timeline struct {
	Dates  []string // ascending, formatted 2006-01-02
	Types  []string // ascending
	Counts [][]int  // Counts[i][j] = events on Dates[i] of Types[j]
}

// SeriesTotal sums one event type's series across all dates.
func (tl *Timeline) SeriesTotal(typeIdx int) int {
	total := 0
	for i := range tl.Counts {
		total += tl.Counts[i][typeIdx]
	}
	return total
}

// EventsPerDayByType counts events grouped by (date, event type).
func EventsPerDayByType(v *dataset.View) Timeline {
	perDay := make(map[string]map[string]int)
	typeSet := make(map[string]struct{})

	for i := range v.Events {
		ev := &v.Events[i]
		day := dataset.Day(ev.Time).Format("2006-01-02")
		byType, ok := perDay[day]
		if !ok {
			byType = make(map[string]int)
			perDay[day] = byType
		}
		byType[ev.Type]++
		typeSet[ev.Type] = struct{}{}
	}

	tl := Timeline{
		Dates: make([]string, 0, len(perDay)),
		Types: make([]string, 0, len(typeSet)),
	}
	for day := range perDay {
		tl.Dates = append(tl.Dates, day)
	}
	for typ := range typeSet {
		tl.Types = append(tl.Types, typ)
	}
	sort.Strings(tl.Dates)
	sort.Strings(tl.Types)

	tl.Counts = make([][]int, len(tl.Dates))
	for i, day := range tl.Dates {
		row := make([]int, len(tl.Types))
		for j, typ := range tl.Types {
			row[j] = perDay[day][typ]
		}
		tl.Counts[i] = row
	}

	return tl
}
