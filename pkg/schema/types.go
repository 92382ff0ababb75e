package schema

// EventType is the interaction kind recorded for a row of the event log.
type EventType string

const (
	EventTypeView     EventType = "view"
	EventTypeCart     EventType = "cart"
	EventTypeRemove   EventType = "remove_from_cart"
	EventTypePurchase EventType = "purchase"
)

// CSV column names of the event log. The first four are required; brand and
// category_code may be absent from a given file.
const (
	ColumnEventTime    = "event_time"
	ColumnEventType    = "event_type"
	ColumnProductID    = "product_id"
	ColumnPrice        = "price"
	ColumnBrand        = "brand"
	ColumnCategoryCode = "category_code"
)

// RequiredColumns lists the columns a CSV must carry to be loadable.
func RequiredColumns() []string {
	return []string{ColumnEventTime, ColumnEventType, ColumnProductID, ColumnPrice}
}
