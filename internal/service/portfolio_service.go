package service

import (
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
	"golang.org/x/sync/errgroup"
)

// PortfolioService computes the derived views over the transaction ledger:
// per-asset positions, the account-level summary and the allocation chart
// data. Everything is recomputed from the full ledger on each call; nothing
// is cached between reads.
type PortfolioService struct {
	transactionService *TransactionService
	tradeService       *TradeService
	initialCapital     float64
}

// NewPortfolioService creates a new PortfolioService with the provided service dependencies.
// initialCapital is the fixed starting capital the summary is computed against.
func NewPortfolioService(
	transactionService *TransactionService,
	tradeService *TradeService,
	initialCapital float64,
) *PortfolioService {
	return &PortfolioService{
		transactionService: transactionService,
		tradeService:       tradeService,
		initialCapital:     initialCapital,
	}
}

// GetPositions derives one position per distinct asset name from the full
// transaction ledger.
func (s *PortfolioService) GetPositions() ([]model.AssetPosition, error) {
	transactions, err := s.transactionService.GetTransactions()
	if err != nil {
		return nil, err
	}

	return calculateAssetPositions(transactions), nil
}

// GetSummary computes the account-level roll-up: realized profit across all
// positions against the initial capital, current holdings value, remaining
// capital, and the closed-trade statistics. Positions and trade stats are
// loaded concurrently; each side reads its own consistent snapshot.
//
// Per-asset holdings are floored at zero before summing, so a negative net
// position never reduces the holdings total. ProfitPercent is nil when the
// initial capital is zero.
func (s *PortfolioService) GetSummary() (model.PortfolioSummary, error) {
	var positions []model.AssetPosition
	var tradeStats model.TradeStats

	var g errgroup.Group
	g.Go(func() error {
		var err error
		positions, err = s.GetPositions()
		return err
	})
	g.Go(func() error {
		var err error
		tradeStats, err = s.tradeService.GetTradeStats()
		return err
	})
	if err := g.Wait(); err != nil {
		return model.PortfolioSummary{}, err
	}

	summary := model.PortfolioSummary{
		InitialCapital: s.initialCapital,
		Positions:      positions,
		TradeStats:     tradeStats,
	}

	for _, position := range positions {
		if position.RealizedProfit != nil {
			summary.TotalProfit += *position.RealizedProfit
			if *position.RealizedProfit >= 0 {
				summary.TotalGain += *position.RealizedProfit
			} else {
				summary.TotalLoss += -*position.RealizedProfit
			}
		}
		if position.HoldingsValue > 0 {
			summary.HoldingsValue += position.HoldingsValue
		}
	}

	summary.TotalCapital = summary.InitialCapital + summary.TotalProfit
	summary.RemainingCapital = summary.TotalCapital - summary.HoldingsValue

	if summary.InitialCapital != 0 {
		percent := round(summary.TotalProfit / summary.InitialCapital * 100)
		summary.ProfitPercent = &percent
	}

	summary.TotalProfit = round(summary.TotalProfit)
	summary.TotalGain = round(summary.TotalGain)
	summary.TotalLoss = round(summary.TotalLoss)
	summary.TotalCapital = round(summary.TotalCapital)
	summary.HoldingsValue = round(summary.HoldingsValue)
	summary.RemainingCapital = round(summary.RemainingCapital)

	return summary, nil
}

// GetAllocation derives the pie-chart slices from the current positions.
// Each slice is a per-asset holdings value floored at zero; Percent is nil
// for every slice when the floored total is zero.
func (s *PortfolioService) GetAllocation() ([]model.AllocationSlice, error) {
	positions, err := s.GetPositions()
	if err != nil {
		return nil, err
	}

	var total float64
	for _, position := range positions {
		if position.HoldingsValue > 0 {
			total += position.HoldingsValue
		}
	}

	slices := make([]model.AllocationSlice, 0, len(positions))
	for _, position := range positions {
		value := position.HoldingsValue
		if value < 0 {
			value = 0
		}

		slice := model.AllocationSlice{
			Name:  position.Name,
			Value: value,
		}
		if total > 0 {
			percent := round(value / total * 100)
			slice.Percent = &percent
		}

		slices = append(slices, slice)
	}

	return slices, nil
}
