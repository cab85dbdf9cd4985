package service_test

import (
	"math"
	"testing"
	"time"

	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/model"
	"finance-tracker/internal/service"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestConsolidate tests the lot-history fold that derives positions.
//
// WHY: Every position in the system is derived from this fold. The weighted
// average cost must include fees, sells must release invested value net of
// fees, and an over-sold position must report a zero average cost instead of
// NaN.
func TestConsolidate(t *testing.T) {
	buy := func(qty, price, fees float64) model.AssetLot {
		return model.AssetLot{Type: model.LotTypeBuy, Quantity: qty, PricePerUnit: price, Fees: fees}
	}
	sell := func(qty, price, fees float64) model.AssetLot {
		return model.AssetLot{Type: model.LotTypeSell, Quantity: qty, PricePerUnit: price, Fees: fees}
	}

	t.Run("empty history yields empty position", func(t *testing.T) {
		qty, avg := service.Consolidate(nil)

		if qty != 0 || avg != 0 {
			t.Errorf("Expected (0, 0), got (%v, %v)", qty, avg)
		}
	})

	t.Run("single buy includes fees in average cost", func(t *testing.T) {
		qty, avg := service.Consolidate([]model.AssetLot{buy(10, 100, 5)})

		if qty != 10 {
			t.Errorf("Expected quantity 10, got %v", qty)
		}
		// (10*100 + 5) / 10
		if !almostEqual(avg, 100.5) {
			t.Errorf("Expected average cost 100.5, got %v", avg)
		}
	})

	t.Run("weighted average across multiple buys", func(t *testing.T) {
		qty, avg := service.Consolidate([]model.AssetLot{
			buy(10, 100, 0),
			buy(30, 120, 0),
		})

		if qty != 40 {
			t.Errorf("Expected quantity 40, got %v", qty)
		}
		// (10*100 + 30*120) / 40 = 4600/40
		if !almostEqual(avg, 115) {
			t.Errorf("Expected average cost 115, got %v", avg)
		}
	})

	t.Run("sell reduces quantity and invested value", func(t *testing.T) {
		qty, avg := service.Consolidate([]model.AssetLot{
			buy(10, 100, 0),
			sell(4, 120, 0),
		})

		if qty != 6 {
			t.Errorf("Expected quantity 6, got %v", qty)
		}
		// (1000 - 480) / 6
		if !almostEqual(avg, 520.0/6.0) {
			t.Errorf("Expected average cost %v, got %v", 520.0/6.0, avg)
		}
	})

	t.Run("sell fees reduce released proceeds", func(t *testing.T) {
		qty, avg := service.Consolidate([]model.AssetLot{
			buy(10, 100, 0),
			sell(5, 100, 10),
		})

		if qty != 5 {
			t.Errorf("Expected quantity 5, got %v", qty)
		}
		// invested = 1000 - (500 - 10) = 510
		if !almostEqual(avg, 102) {
			t.Errorf("Expected average cost 102, got %v", avg)
		}
	})

	t.Run("over-selling yields negative quantity and zero average cost", func(t *testing.T) {
		qty, avg := service.Consolidate([]model.AssetLot{
			buy(5, 100, 0),
			sell(8, 100, 0),
		})

		if qty != -3 {
			t.Errorf("Expected quantity -3, got %v", qty)
		}
		if avg != 0 {
			t.Errorf("Expected zero average cost for over-sold position, got %v", avg)
		}
	})

	t.Run("selling the whole position yields zero average cost", func(t *testing.T) {
		qty, avg := service.Consolidate([]model.AssetLot{
			buy(10, 100, 0),
			sell(10, 110, 0),
		})

		if qty != 0 {
			t.Errorf("Expected quantity 0, got %v", qty)
		}
		if avg != 0 {
			t.Errorf("Expected zero average cost, got %v", avg)
		}
	})
}

// TestEvaluate tests the pure position valuation.
//
// WHY: Gain/loss numbers are displayed directly to the user. The math must
// hold exactly, the zero-invested edge must not divide by zero, and quote
// validity must carry through so the UI can flag stale valuations.
func TestEvaluate(t *testing.T) {
	t.Run("computes value, gain and percentages", func(t *testing.T) {
		investment := model.Investment{
			Symbol:      "AAPL",
			Quantity:    2,
			AverageCost: 100,
		}
		quote := marketdata.Quote{
			Price:         150,
			Change:        3,
			ChangePercent: 2.04,
			Valid:         true,
			FetchedAt:     time.Now(),
		}

		snapshot := service.Evaluate(investment, quote)

		if snapshot.CurrentValue != 300 {
			t.Errorf("Expected current value 300, got %v", snapshot.CurrentValue)
		}
		if snapshot.InvestedValue != 200 {
			t.Errorf("Expected invested value 200, got %v", snapshot.InvestedValue)
		}
		if snapshot.GainLoss != 100 {
			t.Errorf("Expected gain 100, got %v", snapshot.GainLoss)
		}
		if !almostEqual(snapshot.GainLossPercent, 50) {
			t.Errorf("Expected gain percent 50, got %v", snapshot.GainLossPercent)
		}
		if snapshot.DayChange != 6 {
			t.Errorf("Expected day change 6, got %v", snapshot.DayChange)
		}
		if !snapshot.PriceValid {
			t.Error("Expected PriceValid to carry through")
		}
	})

	t.Run("zero invested value reports zero percent", func(t *testing.T) {
		investment := model.Investment{Symbol: "X", Quantity: 0, AverageCost: 0}
		quote := marketdata.Quote{Price: 100, Valid: true}

		snapshot := service.Evaluate(investment, quote)

		if snapshot.GainLossPercent != 0 {
			t.Errorf("Expected 0%% for empty position, got %v", snapshot.GainLossPercent)
		}
		if math.IsNaN(snapshot.GainLossPercent) {
			t.Error("Gain percent must never be NaN")
		}
	})

	t.Run("invalid quote degrades to zero valuation", func(t *testing.T) {
		investment := model.Investment{Symbol: "FAIL", Quantity: 10, AverageCost: 50}
		quote := marketdata.Quote{Symbol: "FAIL"} // zero-filled fallback

		snapshot := service.Evaluate(investment, quote)

		if snapshot.CurrentValue != 0 {
			t.Errorf("Expected zero current value, got %v", snapshot.CurrentValue)
		}
		if snapshot.PriceValid {
			t.Error("Expected PriceValid=false for fallback quote")
		}
		// Invested value stays meaningful even without a price
		if snapshot.InvestedValue != 500 {
			t.Errorf("Expected invested value 500, got %v", snapshot.InvestedValue)
		}
	})
}

// TestRollup tests portfolio-level aggregation.
//
// WHY: The summary percent must be derived from summed values, not averaged
// per-position percents, and allocations must be proportional to current
// value and sum to 100 for a non-empty portfolio.
func TestRollup(t *testing.T) {
	t.Run("sums values and derives portfolio percent", func(t *testing.T) {
		summary := service.Rollup([]model.PerformanceSnapshot{
			{CurrentValue: 300, InvestedValue: 200, DayChange: 6},
			{CurrentValue: 100, InvestedValue: 200, DayChange: -2},
		})

		if summary.TotalValue != 400 {
			t.Errorf("Expected total value 400, got %v", summary.TotalValue)
		}
		if summary.TotalInvested != 400 {
			t.Errorf("Expected total invested 400, got %v", summary.TotalInvested)
		}
		if summary.GainLoss != 0 {
			t.Errorf("Expected zero net gain, got %v", summary.GainLoss)
		}
		if summary.GainLossPercent != 0 {
			t.Errorf("Expected 0%%, got %v", summary.GainLossPercent)
		}
		if summary.DayChange != 4 {
			t.Errorf("Expected day change 4, got %v", summary.DayChange)
		}
	})

	t.Run("assigns allocations proportional to value", func(t *testing.T) {
		summary := service.Rollup([]model.PerformanceSnapshot{
			{Symbol: "A", CurrentValue: 750},
			{Symbol: "B", CurrentValue: 250},
		})

		if !almostEqual(summary.Positions[0].AllocationPercent, 75) {
			t.Errorf("Expected allocation 75, got %v", summary.Positions[0].AllocationPercent)
		}
		if !almostEqual(summary.Positions[1].AllocationPercent, 25) {
			t.Errorf("Expected allocation 25, got %v", summary.Positions[1].AllocationPercent)
		}
	})

	t.Run("empty portfolio yields zero summary", func(t *testing.T) {
		summary := service.Rollup(nil)

		if summary.TotalValue != 0 || summary.GainLossPercent != 0 {
			t.Errorf("Expected zero summary, got %+v", summary)
		}
	})
}
