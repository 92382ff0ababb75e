package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/csv"

	"github.com/shop-analytics/event-dashboard/pkg/schema"
)

// ParseError reports a CSV that could not be turned into an event table:
// malformed rows, a missing required column, or an unparseable timestamp.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Timestamp layouts accepted for event_time, most specific first. The
// "2006-01-02 15:04:05 MST" form is what the reference exports use.
var eventTimeLayouts = []string{
	"2006-01-02 15:04:05 MST",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseCSV parses CSV bytes into a Table using the Arrow CSV reader.
func parseCSV(source string, data []byte) (*Table, error) {
	rdr := csv.NewInferringReader(bytes.NewReader(data),
		csv.WithHeader(true),
		csv.WithChunk(8192),
		csv.WithNullReader(true, ""),
		csv.WithColumnTypes(CSVColumnTypes()),
	)
	defer rdr.Release()

	table := &Table{Source: source}
	var cols *columnIndex

	for rdr.Next() {
		rec := rdr.Record()

		if cols == nil {
			idx, err := indexColumns(rec.Schema())
			if err != nil {
				return nil, &ParseError{Source: source, Err: err}
			}
			cols = idx
			table.HasBrand = idx.brand >= 0
			table.HasCategory = idx.category >= 0
		}

		if err := appendRecord(table, rec, cols); err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if cols == nil {
		return nil, &ParseError{Source: source, Err: errors.New("empty csv: no header row")}
	}

	return table, nil
}

// columnIndex holds the field positions of the event log columns in the CSV
// schema; -1 marks an absent optional column.
type columnIndex struct {
	eventTime int
	eventType int
	productID int
	price     int
	brand     int
	category  int
}

func indexColumns(s *arrow.Schema) (*columnIndex, error) {
	find := func(name string) int {
		indices := s.FieldIndices(name)
		if len(indices) == 0 {
			return -1
		}
		return indices[0]
	}

	idx := &columnIndex{
		eventTime: find(schema.ColumnEventTime),
		eventType: find(schema.ColumnEventType),
		productID: find(schema.ColumnProductID),
		price:     find(schema.ColumnPrice),
		brand:     find(schema.ColumnBrand),
		category:  find(schema.ColumnCategoryCode),
	}

	for _, required := range []struct {
		name string
		pos  int
	}{
		{schema.ColumnEventTime, idx.eventTime},
		{schema.ColumnEventType, idx.eventType},
		{schema.ColumnProductID, idx.productID},
		{schema.ColumnPrice, idx.price},
	} {
		if required.pos < 0 {
			return nil, fmt.Errorf("missing required column %q", required.name)
		}
	}

	return idx, nil
}

// appendRecord converts one Arrow record batch into Event rows, tracking the
// table's min/max event dates as it goes.
func appendRecord(table *Table, rec arrow.Record, cols *columnIndex) error {
	numRows := int(rec.NumRows())

	for row := 0; row < numRows; row++ {
		raw := stringAt(rec.Column(cols.eventTime), row)
		ts, err := parseEventTime(raw)
		if err != nil {
			return fmt.Errorf("row %d: %w", len(table.Events)+1, err)
		}

		ev := Event{
			Time:      ts,
			Type:      stringAt(rec.Column(cols.eventType), row),
			ProductID: stringAt(rec.Column(cols.productID), row),
			Price:     floatAt(rec.Column(cols.price), row),
		}
		if cols.brand >= 0 {
			ev.Brand = stringAt(rec.Column(cols.brand), row)
		}
		if cols.category >= 0 {
			ev.CategoryCode = stringAt(rec.Column(cols.category), row)
		}

		day := Day(ts)
		if table.minDate.IsZero() || day.Before(table.minDate) {
			table.minDate = day
		}
		if table.maxDate.IsZero() || day.After(table.maxDate) {
			table.maxDate = day
		}

		table.Events = append(table.Events, ev)
	}

	return nil
}

func parseEventTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("empty event_time")
	}
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable event_time %q", raw)
}

func stringAt(col arrow.Array, row int) string {
	if col.IsNull(row) {
		return ""
	}

	switch arr := col.(type) {
	case *array.String:
		return arr.Value(row)
	case *array.LargeString:
		return arr.Value(row)
	default:
		return ""
	}
}

func floatAt(col arrow.Array, row int) float64 {
	if col.IsNull(row) {
		return 0
	}

	switch arr := col.(type) {
	case *array.Float64:
		return arr.Value(row)
	case *array.Int64:
		return float64(arr.Value(row))
	default:
		return 0
	}
}
