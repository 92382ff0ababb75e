package dataset

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `event_time,event_type,product_id,price,brand,category_code
2019-10-01 10:15:00 UTC,view,1001,142.50,samsung,electronics.smartphone
2019-10-01 11:00:00 UTC,cart,1001,142.50,samsung,electronics.smartphone
2019-10-02 09:30:00 UTC,purchase,1001,142.50,samsung,electronics.smartphone
2019-10-03 14:45:00 UTC,view,2002,899.00,apple,electronics.smartphone
2019-10-03 15:00:00 UTC,view,3003,19.99,,
`

func TestParseCSV(t *testing.T) {
	table, err := parseCSV("sample.csv", []byte(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 5, table.NumRows())
	assert.True(t, table.HasBrand)
	assert.True(t, table.HasCategory)

	assert.Equal(t, Day(time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC)), table.MinDate())
	assert.Equal(t, Day(time.Date(2019, 10, 3, 0, 0, 0, 0, time.UTC)), table.MaxDate())

	first := table.Events[0]
	assert.Equal(t, "view", first.Type)
	assert.Equal(t, "1001", first.ProductID)
	assert.Equal(t, "samsung", first.Brand)
	assert.Equal(t, 142.50, first.Price)

	// Null brand and category come back as the empty string.
	last := table.Events[4]
	assert.Equal(t, "", last.Brand)
	assert.Equal(t, "", last.CategoryCode)
}

func TestParseCSVWithoutOptionalColumns(t *testing.T) {
	csv := `event_time,event_type,product_id,price
2019-10-01 10:15:00 UTC,view,1001,142.50
`
	table, err := parseCSV("minimal.csv", []byte(csv))
	require.NoError(t, err)

	assert.False(t, table.HasBrand)
	assert.False(t, table.HasCategory)
	assert.Equal(t, 1, table.NumRows())
	assert.Equal(t, "", table.Events[0].Brand)
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	csv := `event_time,event_type,price
2019-10-01 10:15:00 UTC,view,142.50
`
	_, err := parseCSV("broken.csv", []byte(csv))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "broken.csv", perr.Source)
	assert.Contains(t, err.Error(), "product_id")
}

func TestParseCSVBadTimestamp(t *testing.T) {
	csv := `event_time,event_type,product_id,price
October first,view,1001,142.50
`
	_, err := parseCSV("badtime.csv", []byte(csv))
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := parseCSV("empty.csv", nil)
	require.Error(t, err)
}

func TestParseEventTimeLayouts(t *testing.T) {
	cases := []string{
		"2019-10-01 10:15:00 UTC",
		"2019-10-01T10:15:00Z",
		"2019-10-01T10:15:00",
		"2019-10-01 10:15:00",
		"2019-10-01",
	}
	for _, raw := range cases {
		ts, err := parseEventTime(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 2019, ts.Year(), raw)
		assert.Equal(t, time.October, ts.Month(), raw)
	}

	_, err := parseEventTime("")
	assert.Error(t, err)
}
