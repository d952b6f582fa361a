package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/request"
	"github.com/tdejong/Trading-Journal-Backend/internal/apperrors"
	"github.com/tdejong/Trading-Journal-Backend/internal/testutil"
)

// TestStrategyService_CRUD exercises the strategy lifecycle.
func TestStrategyService_CRUD(t *testing.T) {
	t.Run("creates and retrieves strategy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStrategyService(t, db)

		created, err := svc.CreateStrategy(context.Background(), request.CreateStrategyRequest{
			Name:            "Breakout",
			Description:     "Buy on range breakouts",
			ImageReferences: []string{"setup.png"},
		})
		if err != nil {
			t.Fatalf("CreateStrategy() returned unexpected error: %v", err)
		}

		got, err := svc.GetStrategy(created.ID)
		if err != nil {
			t.Fatalf("GetStrategy() returned unexpected error: %v", err)
		}
		if got.Name != "Breakout" || got.Description != "Buy on range breakouts" {
			t.Errorf("Stored record differs from request: %+v", got)
		}
		if len(got.ImageReferences) != 1 || got.ImageReferences[0] != "setup.png" {
			t.Errorf("Expected image references preserved, got %v", got.ImageReferences)
		}
	})

	t.Run("updates strategy fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStrategyService(t, db)

		strategy := testutil.NewStrategy().WithName("Old Name").Build(t, db)

		newName := "New Name"
		updated, err := svc.UpdateStrategy(context.Background(), strategy.ID, request.UpdateStrategyRequest{
			Name: &newName,
		})
		if err != nil {
			t.Fatalf("UpdateStrategy() returned unexpected error: %v", err)
		}
		if updated.Name != "New Name" {
			t.Errorf("Expected updated name, got %q", updated.Name)
		}
	})

	t.Run("returns not found for missing strategy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStrategyService(t, db)

		_, err := svc.GetStrategy(9999)

		if !errors.Is(err, apperrors.ErrStrategyNotFound) {
			t.Errorf("Expected ErrStrategyNotFound, got %v", err)
		}
	})
}

// TestStrategyService_DeleteStrategy verifies that deleting a strategy
// detaches its trades instead of deleting them.
func TestStrategyService_DeleteStrategy(t *testing.T) {
	t.Run("detaches linked trades", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStrategyService(t, db)
		tradeSvc := testutil.NewTestTradeService(t, db)

		strategy := testutil.NewStrategy().Build(t, db)
		trade := testutil.NewTrade("BTCUSDT").WithStrategy(strategy.ID).Build(t, db)

		if err := svc.DeleteStrategy(context.Background(), strategy.ID); err != nil {
			t.Fatalf("DeleteStrategy() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "strategy", 0)
		testutil.AssertRowCount(t, db, "trade", 1)

		got, err := tradeSvc.GetTrade(trade.ID)
		if err != nil {
			t.Fatalf("GetTrade() returned unexpected error: %v", err)
		}
		if got.StrategyID != nil {
			t.Errorf("Expected trade detached from strategy, got strategy id %v", *got.StrategyID)
		}
		if got.StrategyName != "" {
			t.Errorf("Expected empty strategy name, got %q", got.StrategyName)
		}
	})

	t.Run("returns not found for missing strategy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestStrategyService(t, db)

		err := svc.DeleteStrategy(context.Background(), 9999)

		if !errors.Is(err, apperrors.ErrStrategyNotFound) {
			t.Errorf("Expected ErrStrategyNotFound, got %v", err)
		}
	})
}
