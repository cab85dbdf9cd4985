package service

import (
	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/model"
)

// Consolidate folds an investment's full lot history into its derived
// position: net quantity and volume-weighted average cost.
//
// Buys add quantity and cost (including fees); sells remove quantity and
// proceeds (net of fees). Average cost is the remaining invested amount per
// remaining unit. When quantity is not positive the average cost is 0:
// over-selling is permitted and yields a negative quantity, but never a NaN
// average cost.
//
// The fold always runs over the entire history rather than updating
// incrementally. That costs O(n) per recorded lot but avoids compounding
// floating-point drift across many updates; lot counts are expected to stay
// in the tens.
func Consolidate(lots []model.AssetLot) (quantity, averageCost float64) {
	var invested float64

	for _, lot := range lots {
		switch lot.Type {
		case model.LotTypeSell:
			quantity -= lot.Quantity
			invested -= lot.Quantity*lot.PricePerUnit - lot.Fees
		default:
			quantity += lot.Quantity
			invested += lot.Quantity*lot.PricePerUnit + lot.Fees
		}
	}

	if quantity > 0 {
		averageCost = invested / quantity
	}

	return quantity, averageCost
}

// Evaluate combines a consolidated position with a current quote into a
// performance snapshot. Pure function: no I/O, no side effects.
//
// gainLossPercent guards division by zero: a position with nothing invested
// reports 0% rather than NaN. The quote's validity flag carries through so
// callers can tell a genuinely flat position from a failed price fetch.
func Evaluate(investment model.Investment, quote marketdata.Quote) model.PerformanceSnapshot {
	currentValue := investment.Quantity * quote.Price
	investedValue := investment.Quantity * investment.AverageCost
	gainLoss := currentValue - investedValue

	gainLossPercent := 0.0
	if investedValue > 0 {
		gainLossPercent = gainLoss / investedValue * 100
	}

	return model.PerformanceSnapshot{
		Symbol:           investment.Symbol,
		Name:             investment.Name,
		AssetClass:       investment.AssetClass,
		Quantity:         investment.Quantity,
		AverageCost:      investment.AverageCost,
		Price:            quote.Price,
		CurrentValue:     currentValue,
		InvestedValue:    investedValue,
		GainLoss:         gainLoss,
		GainLossPercent:  gainLossPercent,
		DayChange:        investment.Quantity * quote.Change,
		DayChangePercent: quote.ChangePercent,
		PriceValid:       quote.Valid,
	}
}

// Rollup aggregates position snapshots into a portfolio summary.
// Values are summed before the portfolio-level gain/loss percent is derived,
// and each snapshot receives its allocation as a percentage of total value.
func Rollup(snapshots []model.PerformanceSnapshot) model.PortfolioSummary {
	summary := model.PortfolioSummary{Positions: snapshots}

	for _, snapshot := range snapshots {
		summary.TotalValue += snapshot.CurrentValue
		summary.TotalInvested += snapshot.InvestedValue
		summary.DayChange += snapshot.DayChange
	}

	summary.GainLoss = summary.TotalValue - summary.TotalInvested
	if summary.TotalInvested > 0 {
		summary.GainLossPercent = summary.GainLoss / summary.TotalInvested * 100
	}

	if summary.TotalValue > 0 {
		for i := range summary.Positions {
			summary.Positions[i].AllocationPercent = summary.Positions[i].CurrentValue / summary.TotalValue * 100
		}
	}

	return summary
}
