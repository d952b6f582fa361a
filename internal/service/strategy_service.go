package service

import (
	"context"
	"fmt"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/request"
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
	"github.com/tdejong/Trading-Journal-Backend/internal/repository"
)

// StrategyService handles strategy-related business logic operations.
type StrategyService struct {
	strategyRepo *repository.StrategyRepository
}

// NewStrategyService creates a new StrategyService with the provided repository dependencies.
func NewStrategyService(
	strategyRepo *repository.StrategyRepository,
) *StrategyService {
	return &StrategyService{
		strategyRepo: strategyRepo,
	}
}

// GetStrategies retrieves all strategies.
func (s *StrategyService) GetStrategies() ([]model.Strategy, error) {
	return s.strategyRepo.GetStrategies()
}

// GetStrategy retrieves a single strategy by its id.
func (s *StrategyService) GetStrategy(strategyID int64) (model.Strategy, error) {
	return s.strategyRepo.GetStrategy(strategyID)
}

// CreateStrategy persists a new strategy and returns the stored record.
func (s *StrategyService) CreateStrategy(ctx context.Context, req request.CreateStrategyRequest) (*model.Strategy, error) {
	strategy := &model.Strategy{
		Name:            req.Name,
		Description:     req.Description,
		ImageReferences: req.ImageReferences,
	}

	if err := s.strategyRepo.InsertStrategy(ctx, strategy); err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	stored, err := s.strategyRepo.GetStrategy(strategy.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload strategy: %w", err)
	}

	return &stored, nil
}

// UpdateStrategy applies the provided fields to an existing strategy and
// returns the stored record.
func (s *StrategyService) UpdateStrategy(ctx context.Context, strategyID int64, req request.UpdateStrategyRequest) (*model.Strategy, error) {
	strategy, err := s.strategyRepo.GetStrategy(strategyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		strategy.Name = *req.Name
	}
	if req.Description != nil {
		strategy.Description = *req.Description
	}
	if req.ImageReferences != nil {
		strategy.ImageReferences = req.ImageReferences
	}

	if err := s.strategyRepo.UpdateStrategy(ctx, &strategy); err != nil {
		return nil, err
	}

	return &strategy, nil
}

// DeleteStrategy removes a strategy by id. Trades that referenced it keep
// existing with the reference cleared.
func (s *StrategyService) DeleteStrategy(ctx context.Context, strategyID int64) error {
	return s.strategyRepo.DeleteStrategy(ctx, strategyID)
}
