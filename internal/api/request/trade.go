package request

type CreateTradeRequest struct {
	Name            string   `json:"name"`
	OpenDate        string   `json:"openDate,omitempty"`
	CloseDate       string   `json:"closeDate,omitempty"`
	OpenPrice       float64  `json:"openPrice"`
	ClosePrice      *float64 `json:"closePrice,omitempty"`
	Direction       string   `json:"direction"`
	Level           int      `json:"level"`
	Volume          float64  `json:"volume"`
	Source          string   `json:"source,omitempty"`
	OrderType       string   `json:"orderType,omitempty"`
	StrategyID      *int64   `json:"strategyId,omitempty"`
	ReferenceImages []string `json:"referenceImages,omitempty"`
}

type UpdateTradeRequest struct {
	Name            *string  `json:"name,omitempty"`
	OpenDate        *string  `json:"openDate,omitempty"`
	CloseDate       *string  `json:"closeDate,omitempty"`
	OpenPrice       *float64 `json:"openPrice,omitempty"`
	ClosePrice      *float64 `json:"closePrice,omitempty"`
	Direction       *string  `json:"direction,omitempty"`
	Level           *int     `json:"level,omitempty"`
	Volume          *float64 `json:"volume,omitempty"`
	Source          *string  `json:"source,omitempty"`
	OrderType       *string  `json:"orderType,omitempty"`
	StrategyID      *int64   `json:"strategyId,omitempty"`
	ReferenceImages []string `json:"referenceImages,omitempty"`
}

// PreviewTradeRequest carries the inputs for a what-if P&L calculation.
// Nothing is persisted; the close price is provisional.
type PreviewTradeRequest struct {
	OpenPrice  float64 `json:"openPrice"`
	ClosePrice float64 `json:"closePrice"`
	Direction  string  `json:"direction"`
	Level      int     `json:"level"`
	Volume     float64 `json:"volume"`
}
