package dataset

import (
	"github.com/apache/arrow/go/v17/arrow"

	"github.com/shop-analytics/event-dashboard/pkg/schema"
)

// CSVColumnTypes pins the Arrow types for the known event log columns so the
// CSV reader never has to guess them. product_id stays a string: the IDs in
// real exports overflow int32 and are never used numerically. Columns outside
// this map are inferred and ignored.
func CSVColumnTypes() map[string]arrow.DataType {
	return map[string]arrow.DataType{
		schema.ColumnEventTime:    arrow.BinaryTypes.String,
		schema.ColumnEventType:    arrow.BinaryTypes.String,
		schema.ColumnProductID:    arrow.BinaryTypes.String,
		schema.ColumnBrand:        arrow.BinaryTypes.String,
		schema.ColumnCategoryCode: arrow.BinaryTypes.String,
		schema.ColumnPrice:        arrow.PrimitiveTypes.Float64,
	}
}
