package model

import "time"

// Trade represents a discrete leveraged trade entry, independent of the
// Transaction ledger. ClosePrice is nil while the trade is still open.
type Trade struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	OpenDate        string    `json:"openDate,omitempty"`
	CloseDate       string    `json:"closeDate,omitempty"`
	OpenPrice       float64   `json:"openPrice"`
	ClosePrice      *float64  `json:"closePrice"`
	Direction       string    `json:"direction"`
	Level           int       `json:"level"`
	Volume          float64   `json:"volume"`
	Source          string    `json:"source,omitempty"`
	OrderType       string    `json:"orderType,omitempty"`
	StrategyID      *int64    `json:"strategyId"`
	ReferenceImages []string  `json:"referenceImages"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// TradeResponse represents a trade with enriched data for API responses.
// StrategyName is joined from the strategy table when a strategy is linked.
// Profit is the realized P&L for closed trades and nil while the trade is
// open or the open price is zero.
type TradeResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	OpenDate        string   `json:"openDate,omitempty"`
	CloseDate       string   `json:"closeDate,omitempty"`
	OpenPrice       float64  `json:"openPrice"`
	ClosePrice      *float64 `json:"closePrice"`
	Direction       string   `json:"direction"`
	Level           int      `json:"level"`
	Volume          float64  `json:"volume"`
	Source          string   `json:"source,omitempty"`
	OrderType       string   `json:"orderType,omitempty"`
	StrategyID      *int64   `json:"strategyId"`
	StrategyName    string   `json:"strategyName,omitempty"`
	ReferenceImages []string `json:"referenceImages"`
	Status          string   `json:"status"`
	Profit          *float64 `json:"profit"`
}

// Trade direction values.
const (
	TradeDirectionLong  = "long"
	TradeDirectionShort = "short"
)

// Trade status values derived from ClosePrice.
const (
	TradeStatusOpening = "opening"
	TradeStatusClosed  = "closed"
)

// TradeStats aggregates closed-trade results for the account summary.
type TradeStats struct {
	OpenCount   int     `json:"openCount"`
	ClosedCount int     `json:"closedCount"`
	TotalProfit float64 `json:"totalProfit"` // Net P&L over all closed trades
	TotalGain   float64 `json:"totalGain"`   // Sum of winning trades only
	TotalLoss   float64 `json:"totalLoss"`   // Sum of losing trades, as a positive magnitude
}
