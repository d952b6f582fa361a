package service

import "github.com/tdejong/Trading-Journal-Backend/internal/model"

// calculateTradeProfit returns the signed P&L for a leveraged trade, or nil
// when no figure can be computed.
//
// Nil is returned for an open trade (nil close price: the unrealized profit
// is unknown, not zero) and for a zero open price (the price-change ratio
// would divide by zero; callers must never see an Inf or NaN).
//
// For a closed trade:
//
//	ratio  = (close - open) / open   for long trades
//	ratio  = (open - close) / open   for short trades
//	profit = volume * level * ratio
//
// The same formula serves the what-if preview, where the close price is
// supplied provisionally and nothing is persisted.
func calculateTradeProfit(openPrice float64, closePrice *float64, direction string, level int, volume float64) *float64 {
	if closePrice == nil || openPrice == 0 {
		return nil
	}

	var ratio float64
	switch direction {
	case model.TradeDirectionLong:
		ratio = (*closePrice - openPrice) / openPrice
	case model.TradeDirectionShort:
		ratio = (openPrice - *closePrice) / openPrice
	default:
		return nil
	}

	profit := volume * float64(level) * ratio
	return &profit
}
