package service

import (
	"context"
	"fmt"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/request"
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
	"github.com/tdejong/Trading-Journal-Backend/internal/repository"
)

// TradeService handles trade-related business logic operations, including
// the P&L calculation attached to every trade response.
type TradeService struct {
	tradeRepo    *repository.TradeRepository
	strategyRepo *repository.StrategyRepository
}

// NewTradeService creates a new TradeService with the provided repository dependencies.
func NewTradeService(
	tradeRepo *repository.TradeRepository,
	strategyRepo *repository.StrategyRepository,
) *TradeService {
	return &TradeService{
		tradeRepo:    tradeRepo,
		strategyRepo: strategyRepo,
	}
}

// GetTrades retrieves all trades with joined strategy names, each enriched
// with its status and realized P&L (nil while open).
func (s *TradeService) GetTrades() ([]model.TradeResponse, error) {
	trades, err := s.tradeRepo.GetTrades()
	if err != nil {
		return nil, err
	}

	for i := range trades {
		enrichTrade(&trades[i])
	}

	return trades, nil
}

// GetTrade retrieves a single trade by id, enriched with status and P&L.
func (s *TradeService) GetTrade(tradeID int64) (model.TradeResponse, error) {
	trade, err := s.tradeRepo.GetTrade(tradeID)
	if err != nil {
		return model.TradeResponse{}, err
	}

	enrichTrade(&trade)
	return trade, nil
}

// CreateTrade persists a new trade and returns the stored record with its
// server-assigned id and joined strategy name.
// A referenced strategy must exist; the reference itself stays optional.
func (s *TradeService) CreateTrade(ctx context.Context, req request.CreateTradeRequest) (*model.TradeResponse, error) {
	if req.StrategyID != nil {
		if _, err := s.strategyRepo.GetStrategy(*req.StrategyID); err != nil {
			return nil, err
		}
	}

	trade := &model.Trade{
		Name:            req.Name,
		OpenDate:        req.OpenDate,
		CloseDate:       req.CloseDate,
		OpenPrice:       req.OpenPrice,
		ClosePrice:      req.ClosePrice,
		Direction:       req.Direction,
		Level:           req.Level,
		Volume:          req.Volume,
		Source:          req.Source,
		OrderType:       req.OrderType,
		StrategyID:      req.StrategyID,
		ReferenceImages: req.ReferenceImages,
	}

	if err := s.tradeRepo.InsertTrade(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	stored, err := s.GetTrade(trade.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trade: %w", err)
	}

	return &stored, nil
}

// UpdateTrade applies the provided fields to an existing trade and returns
// the stored record. Supplying a close price closes the trade.
func (s *TradeService) UpdateTrade(ctx context.Context, tradeID int64, req request.UpdateTradeRequest) (*model.TradeResponse, error) {
	current, err := s.tradeRepo.GetTrade(tradeID)
	if err != nil {
		return nil, err
	}

	if req.StrategyID != nil {
		if _, err := s.strategyRepo.GetStrategy(*req.StrategyID); err != nil {
			return nil, err
		}
	}

	trade := model.Trade{
		ID:              current.ID,
		Name:            current.Name,
		OpenDate:        current.OpenDate,
		CloseDate:       current.CloseDate,
		OpenPrice:       current.OpenPrice,
		ClosePrice:      current.ClosePrice,
		Direction:       current.Direction,
		Level:           current.Level,
		Volume:          current.Volume,
		Source:          current.Source,
		OrderType:       current.OrderType,
		StrategyID:      current.StrategyID,
		ReferenceImages: current.ReferenceImages,
	}

	if req.Name != nil {
		trade.Name = *req.Name
	}
	if req.OpenDate != nil {
		trade.OpenDate = *req.OpenDate
	}
	if req.CloseDate != nil {
		trade.CloseDate = *req.CloseDate
	}
	if req.OpenPrice != nil {
		trade.OpenPrice = *req.OpenPrice
	}
	if req.ClosePrice != nil {
		trade.ClosePrice = req.ClosePrice
	}
	if req.Direction != nil {
		trade.Direction = *req.Direction
	}
	if req.Level != nil {
		trade.Level = *req.Level
	}
	if req.Volume != nil {
		trade.Volume = *req.Volume
	}
	if req.Source != nil {
		trade.Source = *req.Source
	}
	if req.OrderType != nil {
		trade.OrderType = *req.OrderType
	}
	if req.StrategyID != nil {
		trade.StrategyID = req.StrategyID
	}
	if req.ReferenceImages != nil {
		trade.ReferenceImages = req.ReferenceImages
	}

	if err := s.tradeRepo.UpdateTrade(ctx, &trade); err != nil {
		return nil, err
	}

	stored, err := s.GetTrade(trade.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trade: %w", err)
	}

	return &stored, nil
}

// DeleteTrade removes a trade by id.
func (s *TradeService) DeleteTrade(ctx context.Context, tradeID int64) error {
	return s.tradeRepo.DeleteTrade(ctx, tradeID)
}

// PreviewProfit runs the P&L formula with a provisional close price,
// without touching any stored trade. Nil means no figure can be computed
// (zero open price).
func (s *TradeService) PreviewProfit(req request.PreviewTradeRequest) *float64 {
	return roundPtr(calculateTradeProfit(req.OpenPrice, &req.ClosePrice, req.Direction, req.Level, req.Volume))
}

// GetTradeStats aggregates closed-trade results for the account summary.
// Trades whose P&L cannot be computed (open, or zero open price) count
// toward OpenCount and contribute nothing to the totals.
func (s *TradeService) GetTradeStats() (model.TradeStats, error) {
	trades, err := s.tradeRepo.GetTrades()
	if err != nil {
		return model.TradeStats{}, err
	}

	var stats model.TradeStats
	for i := range trades {
		enrichTrade(&trades[i])

		if trades[i].Profit == nil {
			stats.OpenCount++
			continue
		}

		stats.ClosedCount++
		stats.TotalProfit += *trades[i].Profit
		if *trades[i].Profit >= 0 {
			stats.TotalGain += *trades[i].Profit
		} else {
			stats.TotalLoss += -*trades[i].Profit
		}
	}

	stats.TotalProfit = round(stats.TotalProfit)
	stats.TotalGain = round(stats.TotalGain)
	stats.TotalLoss = round(stats.TotalLoss)

	return stats, nil
}

// enrichTrade fills the derived fields of a trade response: status from the
// close price and the rounded P&L figure.
func enrichTrade(t *model.TradeResponse) {
	if t.ClosePrice == nil {
		t.Status = model.TradeStatusOpening
	} else {
		t.Status = model.TradeStatusClosed
	}

	t.Profit = roundPtr(calculateTradeProfit(t.OpenPrice, t.ClosePrice, t.Direction, t.Level, t.Volume))
}
