package service

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

func buy(id int64, name string, quantity, price float64, date string) model.Transaction {
	return model.Transaction{
		ID:           id,
		Name:         name,
		Quantity:     quantity,
		PricePerUnit: price,
		Type:         model.TransactionTypeBuy,
		Date:         date,
	}
}

func sell(id int64, name string, quantity, price float64, date string) model.Transaction {
	return model.Transaction{
		ID:           id,
		Name:         name,
		Quantity:     quantity,
		PricePerUnit: price,
		Type:         model.TransactionTypeSell,
		Date:         date,
	}
}

func findPosition(t *testing.T, positions []model.AssetPosition, name string) model.AssetPosition {
	t.Helper()
	for _, p := range positions {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("Position %q not found in %v", name, positions)
	return model.AssetPosition{}
}

// TestCalculateAssetPositions_BuysAndSells covers the core per-asset math:
// net quantity, average buy price, holdings value and realized profit.
func TestCalculateAssetPositions_BuysAndSells(t *testing.T) {
	t.Run("mixed buys then partial sell", func(t *testing.T) {
		transactions := []model.Transaction{
			buy(1, "BTC", 2, 100, "2024-01-01"),
			buy(2, "BTC", 2, 200, "2024-01-02"),
			sell(3, "BTC", 1, 300, "2024-01-03"),
		}

		positions := calculateAssetPositions(transactions)

		if len(positions) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(positions))
		}

		p := positions[0]
		if p.NetQuantity != 3 {
			t.Errorf("Expected net quantity 3, got %v", p.NetQuantity)
		}
		// avg buy = (2*100 + 2*200) / 4 = 150
		if p.AverageBuyPrice == nil || *p.AverageBuyPrice != 150 {
			t.Errorf("Expected average buy price 150, got %v", p.AverageBuyPrice)
		}
		// latest transaction is the sell at 300
		if p.CurrentReferencePrice != 300 {
			t.Errorf("Expected reference price 300, got %v", p.CurrentReferencePrice)
		}
		if p.HoldingsValue != 900 {
			t.Errorf("Expected holdings value 900, got %v", p.HoldingsValue)
		}
		// realized = 1*300 - 150*1 = 150
		if p.RealizedProfit == nil || *p.RealizedProfit != 150 {
			t.Errorf("Expected realized profit 150, got %v", p.RealizedProfit)
		}
		// percent = 150 / 150 * 100 = 100
		if p.RealizedProfitPercent == nil || *p.RealizedProfitPercent != 100 {
			t.Errorf("Expected realized profit percent 100, got %v", p.RealizedProfitPercent)
		}
	})

	t.Run("groups by asset name and sorts output", func(t *testing.T) {
		transactions := []model.Transaction{
			buy(1, "ETH", 1, 50, "2024-01-01"),
			buy(2, "BTC", 1, 100, "2024-01-01"),
			buy(3, "ADA", 10, 2, "2024-01-01"),
		}

		positions := calculateAssetPositions(transactions)

		if len(positions) != 3 {
			t.Fatalf("Expected 3 positions, got %d", len(positions))
		}

		names := []string{positions[0].Name, positions[1].Name, positions[2].Name}
		expected := []string{"ADA", "BTC", "ETH"}
		if !reflect.DeepEqual(names, expected) {
			t.Errorf("Expected positions sorted %v, got %v", expected, names)
		}
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		positions := calculateAssetPositions(nil)

		if positions == nil {
			t.Fatal("Expected non-nil slice, got nil")
		}
		if len(positions) != 0 {
			t.Errorf("Expected no positions, got %d", len(positions))
		}
	})

	t.Run("skips unknown transaction types", func(t *testing.T) {
		transactions := []model.Transaction{
			buy(1, "BTC", 1, 100, "2024-01-01"),
			{ID: 2, Name: "BTC", Quantity: 5, PricePerUnit: 500, Type: "transfer", Date: "2024-01-02"},
		}

		positions := calculateAssetPositions(transactions)

		p := findPosition(t, positions, "BTC")
		if p.NetQuantity != 1 {
			t.Errorf("Expected net quantity 1, got %v", p.NetQuantity)
		}
		if p.CurrentReferencePrice != 100 {
			t.Errorf("Expected reference price 100 from the buy, got %v", p.CurrentReferencePrice)
		}
	})
}

// TestCalculateAssetPositions_NoBuys verifies the nil guards: an asset with
// sells but no buys has no cost basis, so the derived figures stay nil
// instead of collapsing to zero.
func TestCalculateAssetPositions_NoBuys(t *testing.T) {
	transactions := []model.Transaction{
		sell(1, "XRP", 10, 2, "2024-01-01"),
	}

	positions := calculateAssetPositions(transactions)

	p := findPosition(t, positions, "XRP")
	if p.NetQuantity != -10 {
		t.Errorf("Expected net quantity -10, got %v", p.NetQuantity)
	}
	if p.AverageBuyPrice != nil {
		t.Errorf("Expected nil average buy price, got %v", *p.AverageBuyPrice)
	}
	if p.RealizedProfit != nil {
		t.Errorf("Expected nil realized profit, got %v", *p.RealizedProfit)
	}
	if p.RealizedProfitPercent != nil {
		t.Errorf("Expected nil realized profit percent, got %v", *p.RealizedProfitPercent)
	}
	if p.HoldingsValue != -20 {
		t.Errorf("Expected holdings value -20, got %v", p.HoldingsValue)
	}
}

// TestCalculateAssetPositions_NoSells verifies that "no sales yet" produces
// nil realized figures rather than zero, which would read as break-even.
func TestCalculateAssetPositions_NoSells(t *testing.T) {
	transactions := []model.Transaction{
		buy(1, "BTC", 2, 100, "2024-01-01"),
	}

	positions := calculateAssetPositions(transactions)

	p := findPosition(t, positions, "BTC")
	if p.AverageBuyPrice == nil || *p.AverageBuyPrice != 100 {
		t.Errorf("Expected average buy price 100, got %v", p.AverageBuyPrice)
	}
	if p.RealizedProfit != nil {
		t.Errorf("Expected nil realized profit with no sells, got %v", *p.RealizedProfit)
	}
	if p.RealizedProfitPercent != nil {
		t.Errorf("Expected nil realized profit percent with no sells, got %v", *p.RealizedProfitPercent)
	}
}

// TestCalculateAssetPositions_LatestTransaction pins down the reference
// price selection: the greatest parseable date wins, and the greater id
// breaks every other case, including malformed date strings.
func TestCalculateAssetPositions_LatestTransaction(t *testing.T) {
	t.Run("later date wins regardless of insertion order", func(t *testing.T) {
		transactions := []model.Transaction{
			buy(2, "BTC", 1, 500, "2024-06-01"),
			buy(1, "BTC", 1, 100, "2024-01-01"),
		}

		positions := calculateAssetPositions(transactions)

		p := findPosition(t, positions, "BTC")
		if p.CurrentReferencePrice != 500 {
			t.Errorf("Expected reference price 500 from the later date, got %v", p.CurrentReferencePrice)
		}
	})

	t.Run("equal dates fall back to greater id", func(t *testing.T) {
		transactions := []model.Transaction{
			buy(1, "BTC", 1, 100, "2024-01-01"),
			buy(2, "BTC", 1, 250, "2024-01-01"),
		}

		positions := calculateAssetPositions(transactions)

		p := findPosition(t, positions, "BTC")
		if p.CurrentReferencePrice != 250 {
			t.Errorf("Expected reference price 250 from the greater id, got %v", p.CurrentReferencePrice)
		}
	})

	t.Run("malformed dates fall back to greater id", func(t *testing.T) {
		transactions := []model.Transaction{
			buy(1, "BTC", 1, 100, "yesterday"),
			buy(2, "BTC", 1, 300, ""),
			buy(3, "BTC", 1, 200, "not-a-date"),
		}

		positions := calculateAssetPositions(transactions)

		p := findPosition(t, positions, "BTC")
		if p.CurrentReferencePrice != 200 {
			t.Errorf("Expected reference price 200 from the greatest id, got %v", p.CurrentReferencePrice)
		}
	})

	t.Run("parseable date does not beat malformed date with greater id", func(t *testing.T) {
		// When either side fails to parse, ids decide. A valid date on the
		// older row must not override that rule.
		transactions := []model.Transaction{
			buy(1, "BTC", 1, 100, "2024-06-01"),
			buy(2, "BTC", 1, 400, "garbled"),
		}

		positions := calculateAssetPositions(transactions)

		p := findPosition(t, positions, "BTC")
		if p.CurrentReferencePrice != 400 {
			t.Errorf("Expected reference price 400 from the greater id, got %v", p.CurrentReferencePrice)
		}
	})
}

// TestCalculateAssetPositions_OrderIndependence shuffles the input and
// verifies the result never changes. The aggregation must be a pure
// function of the set of transactions.
func TestCalculateAssetPositions_OrderIndependence(t *testing.T) {
	transactions := []model.Transaction{
		buy(1, "BTC", 2, 100, "2024-01-01"),
		buy(2, "BTC", 1, 200, "2024-01-05"),
		sell(3, "BTC", 1, 300, "2024-02-01"),
		buy(4, "ETH", 5, 40, "2024-01-10"),
		sell(5, "ETH", 2, 60, "2024-03-01"),
		buy(6, "ADA", 100, 0.5, "2024-01-02"),
	}

	expected := calculateAssetPositions(transactions)

	//nolint:gosec // G404: deterministic shuffle seed keeps the test reproducible
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.Transaction, len(transactions))
		copy(shuffled, transactions)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := calculateAssetPositions(shuffled)
		if !reflect.DeepEqual(expected, got) {
			t.Fatalf("Shuffle %d changed the result:\nexpected %+v\ngot      %+v", i, expected, got)
		}
	}
}

// TestCalculateAssetPositions_Idempotence runs the same input twice and
// expects identical output; nothing may leak between calls.
func TestCalculateAssetPositions_Idempotence(t *testing.T) {
	transactions := []model.Transaction{
		buy(1, "BTC", 2, 100, "2024-01-01"),
		sell(2, "BTC", 1, 150, "2024-01-02"),
	}

	first := calculateAssetPositions(transactions)
	second := calculateAssetPositions(transactions)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated calls diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

// TestCalculateAssetPositions_Rounding checks the two-decimal rounding of
// monetary outputs.
func TestCalculateAssetPositions_Rounding(t *testing.T) {
	transactions := []model.Transaction{
		buy(1, "BTC", 3, 10.333333, "2024-01-01"),
		sell(2, "BTC", 1, 11.777777, "2024-01-02"),
	}

	positions := calculateAssetPositions(transactions)

	p := findPosition(t, positions, "BTC")
	if p.AverageBuyPrice == nil || *p.AverageBuyPrice != 10.33 {
		t.Errorf("Expected average buy price 10.33, got %v", p.AverageBuyPrice)
	}
	if p.RealizedProfit == nil || *p.RealizedProfit != 1.44 {
		t.Errorf("Expected realized profit 1.44, got %v", p.RealizedProfit)
	}
}
