package service

import (
	"math"
	"testing"

	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

func float(v float64) *float64 {
	return &v
}

// TestCalculateTradeProfit covers the leveraged P&L formula for both
// directions, including sign symmetry and leverage scaling.
func TestCalculateTradeProfit(t *testing.T) {
	tests := []struct {
		name       string
		openPrice  float64
		closePrice *float64
		direction  string
		level      int
		volume     float64
		expected   *float64
	}{
		{
			name:       "long gain",
			openPrice:  100,
			closePrice: float(110),
			direction:  model.TradeDirectionLong,
			level:      1,
			volume:     1000,
			// (110-100)/100 * 1000 * 1 = 100
			expected: float(100),
		},
		{
			name:       "long loss",
			openPrice:  100,
			closePrice: float(90),
			direction:  model.TradeDirectionLong,
			level:      1,
			volume:     1000,
			expected:   float(-100),
		},
		{
			name:       "short gain on falling price",
			openPrice:  100,
			closePrice: float(90),
			direction:  model.TradeDirectionShort,
			level:      1,
			volume:     1000,
			expected:   float(100),
		},
		{
			name:       "short loss on rising price",
			openPrice:  100,
			closePrice: float(110),
			direction:  model.TradeDirectionShort,
			level:      1,
			volume:     1000,
			expected:   float(-100),
		},
		{
			name:       "leverage multiplies the result",
			openPrice:  100,
			closePrice: float(110),
			direction:  model.TradeDirectionLong,
			level:      10,
			volume:     1000,
			expected:   float(1000),
		},
		{
			name:       "break-even close yields zero, not nil",
			openPrice:  100,
			closePrice: float(100),
			direction:  model.TradeDirectionLong,
			level:      5,
			volume:     1000,
			expected:   float(0),
		},
		{
			name:       "open trade yields nil",
			openPrice:  100,
			closePrice: nil,
			direction:  model.TradeDirectionLong,
			level:      1,
			volume:     1000,
			expected:   nil,
		},
		{
			name:       "zero open price yields nil",
			openPrice:  0,
			closePrice: float(50),
			direction:  model.TradeDirectionLong,
			level:      1,
			volume:     1000,
			expected:   nil,
		},
		{
			name:       "unknown direction yields nil",
			openPrice:  100,
			closePrice: float(110),
			direction:  "sideways",
			level:      1,
			volume:     1000,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateTradeProfit(tt.openPrice, tt.closePrice, tt.direction, tt.level, tt.volume)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("Expected nil profit, got %v", *got)
				}
				return
			}

			if got == nil {
				t.Fatalf("Expected profit %v, got nil", *tt.expected)
			}
			if math.Abs(*got-*tt.expected) > 1e-9 {
				t.Errorf("Expected profit %v, got %v", *tt.expected, *got)
			}
		})
	}
}

// TestCalculateTradeProfit_DirectionSymmetry verifies that long and short
// profits mirror each other for the same price move.
func TestCalculateTradeProfit_DirectionSymmetry(t *testing.T) {
	long := calculateTradeProfit(200, float(250), model.TradeDirectionLong, 3, 500)
	short := calculateTradeProfit(200, float(250), model.TradeDirectionShort, 3, 500)

	if long == nil || short == nil {
		t.Fatal("Expected both profits to be computed")
	}
	if *long != -*short {
		t.Errorf("Expected mirrored profits, got long %v and short %v", *long, *short)
	}
}

// TestCalculateTradeProfit_NeverNonFinite guards the zero-open-price edge:
// no input may ever produce an Inf or NaN figure.
func TestCalculateTradeProfit_NeverNonFinite(t *testing.T) {
	inputs := []struct {
		open  float64
		close float64
	}{
		{0, 0},
		{0, 100},
		{0, -100},
	}

	for _, in := range inputs {
		got := calculateTradeProfit(in.open, float(in.close), model.TradeDirectionLong, 10, 1000)
		if got != nil {
			t.Errorf("Expected nil for open price %v, got %v", in.open, *got)
		}
	}
}
