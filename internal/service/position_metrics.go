package service

import (
	"sort"
	"time"

	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

// positionAccumulator collects the running totals for one asset name while
// the transaction list is folded in a single pass.
type positionAccumulator struct {
	totalBuyQuantity  float64
	totalBuyCost      float64
	totalSellQuantity float64
	totalSellProceeds float64
	netQuantity       float64
	latest            model.Transaction
	hasLatest         bool
}

// calculateAssetPositions derives one AssetPosition per distinct asset name
// from the full transaction list. This is the core aggregation engine behind
// the positions, summary and allocation views.
//
// The calculation is a pure function of its input: no state survives between
// calls and the result does not depend on input order. The only ordering
// rule is the "latest transaction" selection, which picks the transaction
// with the greatest date and falls back to the greatest id when dates are
// equal or unparseable. That transaction's price stands in for the current
// market price; there is no live price feed.
//
// Per group:
//   - netQuantity: buys add quantity, sells subtract it
//   - averageBuyPrice: totalBuyCost / totalBuyQuantity over buys only,
//     nil when the group has no buys (no cost basis can be computed)
//   - holdingsValue: netQuantity * latest price, may be negative for
//     sell-heavy groups
//   - realizedProfit: sum over sells of (sellPrice - averageBuyPrice) *
//     sellQuantity, nil unless the group has both a positive average buy
//     price and at least one sell ("no sales yet" is distinct from
//     "break-even sales")
//   - realizedProfitPercent: realizedProfit over the sold cost basis,
//     nil under the same guard
//
// Monetary values and percentages are rounded to two decimal places.
// Results are sorted by asset name so responses are deterministic.
func calculateAssetPositions(transactions []model.Transaction) []model.AssetPosition {
	groups := make(map[string]*positionAccumulator)

	for _, t := range transactions {
		acc := groups[t.Name]
		if acc == nil {
			acc = &positionAccumulator{}
			groups[t.Name] = acc
		}

		switch t.Type {
		case model.TransactionTypeBuy:
			acc.totalBuyQuantity += t.Quantity
			acc.totalBuyCost += t.Quantity * t.PricePerUnit
			acc.netQuantity += t.Quantity
		case model.TransactionTypeSell:
			acc.totalSellQuantity += t.Quantity
			acc.totalSellProceeds += t.Quantity * t.PricePerUnit
			acc.netQuantity -= t.Quantity
		default:
			// Unknown types are rejected at the write boundary; a stray
			// row must not poison the whole aggregation.
			continue
		}

		if !acc.hasLatest || newerTransaction(t, acc.latest) {
			acc.latest = t
			acc.hasLatest = true
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	positions := make([]model.AssetPosition, 0, len(names))

	for _, name := range names {
		acc := groups[name]

		position := model.AssetPosition{
			Name:                  name,
			NetQuantity:           acc.netQuantity,
			CurrentReferencePrice: acc.latest.PricePerUnit,
			HoldingsValue:         round(acc.netQuantity * acc.latest.PricePerUnit),
		}

		if acc.totalBuyQuantity > 0 {
			averageBuyPrice := acc.totalBuyCost / acc.totalBuyQuantity
			position.AverageBuyPrice = roundPtr(&averageBuyPrice)

			if averageBuyPrice > 0 && acc.totalSellQuantity > 0 {
				realizedProfit := acc.totalSellProceeds - averageBuyPrice*acc.totalSellQuantity
				position.RealizedProfit = roundPtr(&realizedProfit)

				soldCostBasis := averageBuyPrice * acc.totalSellQuantity
				if soldCostBasis > 0 {
					percent := realizedProfit / soldCostBasis * 100
					position.RealizedProfitPercent = roundPtr(&percent)
				}
			}
		}

		positions = append(positions, position)
	}

	return positions
}

// newerTransaction reports whether candidate should replace current as the
// group's latest transaction. Dates decide when both parse and differ; in
// every other case (equal dates, missing or free-form garbage strings) the
// greater id wins.
func newerTransaction(candidate, current model.Transaction) bool {
	candidateDate, candidateErr := time.Parse("2006-01-02", candidate.Date)
	currentDate, currentErr := time.Parse("2006-01-02", current.Date)

	if candidateErr == nil && currentErr == nil && !candidateDate.Equal(currentDate) {
		return candidateDate.After(currentDate)
	}

	return candidate.ID > current.ID
}
