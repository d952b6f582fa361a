package model

import "time"

// Transaction represents a single buy or sell event for a named asset.
// Used internally for calculations and data processing.
//
// Date is kept as a raw YYYY-MM-DD string: the column is nullable and
// legacy rows may carry values that do not parse. The aggregation layer
// tolerates that by falling back to the row id when ordering.
type Transaction struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	PricePerUnit float64   `json:"pricePerUnit"`
	Type         string    `json:"type"`
	Date         string    `json:"date,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Transaction type values accepted at the write boundary.
const (
	TransactionTypeBuy  = "buy"
	TransactionTypeSell = "sell"
)
