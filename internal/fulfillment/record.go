// Package fulfillment extracts structured partner-fulfillment data from
// free-text order notes. Walsworth, the fulfillment partner, reports which
// line items it processed by appending a note in a fixed two-section format;
// everything here is derived from that text and nothing is persisted.
package fulfillment

// Status of one Walsworth fulfillment report.
const (
	StatusFullyProcessed     = "fully_processed"
	StatusPartiallyProcessed = "partially_processed"
	StatusNotProcessed       = "not_processed"
)

// Item is one line of a fulfillment report.
type Item struct {
	Quantity int    `json:"quantity"`
	Product  string `json:"product"`
}

// Record is the parsed form of one Walsworth note. TotalProcessedQty always
// equals the sum of ProcessedItems quantities, and symmetrically for the
// not-processed side.
type Record struct {
	Timestamp            string `json:"timestamp"`
	Status               string `json:"fulfillment_status"`
	ProcessedItems       []Item `json:"processed_items"`
	NotProcessedItems    []Item `json:"not_processed_items"`
	TotalProcessedQty    int    `json:"total_processed_qty"`
	TotalNotProcessedQty int    `json:"total_not_processed_qty"`
}
