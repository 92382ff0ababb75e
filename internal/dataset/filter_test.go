package dataset

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := parseCSV("fixture.csv", []byte(sampleCSV))
	require.NoError(t, err)
	return table
}

func TestFilterFullRange(t *testing.T) {
	table := testTable(t)

	view, err := Filter(table, table.FullRange())
	require.NoError(t, err)

	assert.Equal(t, table.NumRows(), view.NumRows())
	assert.True(t, view.HasBrand)
	assert.True(t, view.HasCategory)
}

func TestFilterBoundsAreInclusive(t *testing.T) {
	table := testTable(t)

	// Oct 2 .. Oct 3 keeps the purchase on the 2nd and both views on the 3rd.
	view, err := Filter(table, DateRange{Start: date(2019, 10, 2), End: date(2019, 10, 3)})
	require.NoError(t, err)
	assert.Equal(t, 3, view.NumRows())

	for _, ev := range view.Events {
		assert.False(t, Day(ev.Time).Before(date(2019, 10, 2)))
		assert.False(t, Day(ev.Time).After(date(2019, 10, 3)))
	}
}

func TestFilterSingleDay(t *testing.T) {
	table := testTable(t)

	view, err := Filter(table, DateRange{Start: date(2019, 10, 2), End: date(2019, 10, 2)})
	require.NoError(t, err)
	require.Equal(t, 1, view.NumRows())
	assert.Equal(t, "purchase", view.Events[0].Type)
}

func TestFilterEmptyResult(t *testing.T) {
	table := testTable(t)

	view, err := Filter(table, DateRange{Start: date(2019, 11, 1), End: date(2019, 11, 30)})
	require.NoError(t, err)
	assert.Equal(t, 0, view.NumRows())
}

func TestFilterInvertedRange(t *testing.T) {
	table := testTable(t)

	_, err := Filter(table, DateRange{Start: date(2019, 10, 3), End: date(2019, 10, 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvertedRange))
}

func TestNewDateRangeTruncatesToDay(t *testing.T) {
	r := NewDateRange(
		time.Date(2019, 10, 1, 23, 59, 59, 0, time.UTC),
		time.Date(2019, 10, 5, 0, 0, 1, 0, time.UTC),
	)
	assert.Equal(t, date(2019, 10, 1), r.Start)
	assert.Equal(t, date(2019, 10, 5), r.End)
	assert.False(t, r.Inverted())
}

func TestDateRangeClamp(t *testing.T) {
	min, max := date(2019, 10, 1), date(2019, 10, 31)

	cases := []struct {
		name string
		in   DateRange
		want DateRange
	}{
		{
			name: "inside bounds unchanged",
			in:   DateRange{Start: date(2019, 10, 5), End: date(2019, 10, 10)},
			want: DateRange{Start: date(2019, 10, 5), End: date(2019, 10, 10)},
		},
		{
			name: "overhangs both sides",
			in:   DateRange{Start: date(2019, 9, 1), End: date(2019, 12, 1)},
			want: DateRange{Start: min, End: max},
		},
		{
			name: "entirely before collapses to min",
			in:   DateRange{Start: date(2019, 9, 1), End: date(2019, 9, 15)},
			want: DateRange{Start: min, End: min},
		},
		{
			name: "entirely after collapses to max",
			in:   DateRange{Start: date(2019, 11, 1), End: date(2019, 11, 15)},
			want: DateRange{Start: max, End: max},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Clamp(min, max)
			assert.Equal(t, tc.want, got)
			assert.False(t, got.Inverted())
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: date(2019, 10, 2), End: date(2019, 10, 4)}

	assert.True(t, r.Contains(time.Date(2019, 10, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2019, 10, 4, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2019, 10, 1, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2019, 10, 5, 0, 0, 0, 0, time.UTC)))
}

func TestDateRangeString(t *testing.T) {
	r := DateRange{Start: date(2019, 10, 1), End: date(2019, 10, 31)}
	assert.Equal(t, "2019-10-01 .. 2019-10-31", r.String())
}
