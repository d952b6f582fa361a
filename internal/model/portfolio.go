package model

import "time"

// AssetPosition is the derived per-asset aggregate computed from the full
// transaction list on every read. Nothing here is persisted.
//
// AverageBuyPrice, RealizedProfit and RealizedProfitPercent are nil when
// they cannot be computed: no buys means no cost basis, and no sells means
// no realized figure. A nil value is "no figure available", deliberately
// distinct from zero.
type AssetPosition struct {
	Name                  string   `json:"name"`
	NetQuantity           float64  `json:"netQuantity"`
	AverageBuyPrice       *float64 `json:"averageBuyPrice"`
	CurrentReferencePrice float64  `json:"currentReferencePrice"`
	HoldingsValue         float64  `json:"holdingsValue"`
	RealizedProfit        *float64 `json:"realizedProfit"`
	RealizedProfitPercent *float64 `json:"realizedProfitPercent"`
}

// PortfolioSummary is the account-level roll-up over all asset positions,
// computed against the configured initial capital.
type PortfolioSummary struct {
	InitialCapital   float64         `json:"initialCapital"`
	TotalProfit      float64         `json:"totalProfit"`
	TotalGain        float64         `json:"totalGain"` // Sum of positive realized profits
	TotalLoss        float64         `json:"totalLoss"` // Sum of negative realized profits, as a positive magnitude
	TotalCapital     float64         `json:"totalCapital"`
	HoldingsValue    float64         `json:"holdingsValue"`
	RemainingCapital float64         `json:"remainingCapital"`
	ProfitPercent    *float64        `json:"profitPercent"`
	Positions        []AssetPosition `json:"positions"`
	TradeStats       TradeStats      `json:"tradeStats"`
}

// AllocationSlice is one pie-chart segment of the current holdings.
// Percent is nil when total holdings value is zero.
type AllocationSlice struct {
	Name    string   `json:"name"`
	Value   float64  `json:"value"`
	Percent *float64 `json:"percent"`
}

// SummarySnapshot is a persisted daily copy of the account roll-up,
// maintained by the snapshot job for the history view. The live summary
// endpoint never reads these rows.
type SummarySnapshot struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	TotalProfit      float64   `json:"totalProfit"`
	HoldingsValue    float64   `json:"holdingsValue"`
	TotalCapital     float64   `json:"totalCapital"`
	RemainingCapital float64   `json:"remainingCapital"`
	CalculatedAt     time.Time `json:"calculatedAt"`
}
