package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/internal/testutil"
)

func quoteTime() time.Time {
	return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
}

// fakeGateway implements service.MarketGateway with canned quotes.
// Symbols without an entry behave like failed fetches: zero quote,
// Valid=false.
type fakeGateway struct {
	quotes map[string]marketdata.Quote
}

func (f *fakeGateway) EquityQuote(_ context.Context, symbol string) marketdata.Quote {
	if q, ok := f.quotes[symbol]; ok {
		return q
	}
	return marketdata.ZeroQuote(symbol, quoteTime())
}

func (f *fakeGateway) CryptoQuote(ctx context.Context, id string) marketdata.Quote {
	return f.EquityQuote(ctx, id)
}

func (f *fakeGateway) Quotes(ctx context.Context, requests []marketdata.QuoteRequest) map[string]marketdata.Quote {
	results := make(map[string]marketdata.Quote, len(requests))
	for _, req := range requests {
		results[req.Symbol] = f.EquityQuote(ctx, req.Symbol)
	}
	return results
}

func (f *fakeGateway) History(_ context.Context, symbol string, tf marketdata.Timeframe) []marketdata.PricePoint {
	return marketdata.SyntheticHistory(symbol, tf, quoteTime())
}

// TestInvestmentService_RecordLot tests position recomputation on writes.
//
// WHY: Positions are never updated incrementally; every recorded lot triggers
// a full recompute from history. The stored quantity and average cost must
// match the fold over all lots, including the permissive over-sell edge.
func TestInvestmentService_RecordLot(t *testing.T) {
	t.Run("recomputes position from full history", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		investment, err := svc.CreateInvestment(t.Context(), "AAPL", "Apple Inc.", model.AssetClassEquity)
		if err != nil {
			t.Fatalf("CreateInvestment() returned unexpected error: %v", err)
		}

		// Execute: buy 10 @ 100, then sell 4 @ 120
		if _, err := svc.RecordLot(t.Context(), investment.ID, model.AssetLot{
			Type: model.LotTypeBuy, Quantity: 10, PricePerUnit: 100,
		}); err != nil {
			t.Fatalf("RecordLot(buy) returned unexpected error: %v", err)
		}

		updated, err := svc.RecordLot(t.Context(), investment.ID, model.AssetLot{
			Type: model.LotTypeSell, Quantity: 4, PricePerUnit: 120,
		})
		if err != nil {
			t.Fatalf("RecordLot(sell) returned unexpected error: %v", err)
		}

		// Assert
		if updated.Quantity != 6 {
			t.Errorf("Expected quantity 6, got %v", updated.Quantity)
		}
		want := (10.0*100 - 4.0*120) / 6.0
		if !almostEqual(updated.AverageCost, want) {
			t.Errorf("Expected average cost %v, got %v", want, updated.AverageCost)
		}
		testutil.AssertRowCount(t, db, "asset_lot", 2)
	})

	t.Run("over-selling stores negative quantity and zero average cost", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		investment, err := svc.CreateInvestment(t.Context(), "AAPL", "Apple Inc.", model.AssetClassEquity)
		if err != nil {
			t.Fatalf("CreateInvestment() returned unexpected error: %v", err)
		}

		if _, err := svc.RecordLot(t.Context(), investment.ID, model.AssetLot{
			Type: model.LotTypeBuy, Quantity: 5, PricePerUnit: 100,
		}); err != nil {
			t.Fatalf("RecordLot(buy) returned unexpected error: %v", err)
		}

		updated, err := svc.RecordLot(t.Context(), investment.ID, model.AssetLot{
			Type: model.LotTypeSell, Quantity: 8, PricePerUnit: 100,
		})
		if err != nil {
			t.Fatalf("RecordLot(sell) returned unexpected error: %v", err)
		}

		if updated.Quantity != -3 {
			t.Errorf("Expected quantity -3, got %v", updated.Quantity)
		}
		if updated.AverageCost != 0 {
			t.Errorf("Expected zero average cost, got %v", updated.AverageCost)
		}
	})

	t.Run("returns not found for unknown investment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		_, err := svc.RecordLot(t.Context(), testutil.MakeID(), model.AssetLot{
			Type: model.LotTypeBuy, Quantity: 1, PricePerUnit: 1,
		})

		if !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("Expected ErrInvestmentNotFound, got %v", err)
		}
	})
}

// TestInvestmentService_CreateInvestment tests position creation.
//
// WHY: Symbols are unique; a duplicate must surface the sentinel error the
// handler maps to 409 rather than a generic database error.
func TestInvestmentService_CreateInvestment(t *testing.T) {
	t.Run("rejects duplicate symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		if _, err := svc.CreateInvestment(t.Context(), "AAPL", "Apple Inc.", model.AssetClassEquity); err != nil {
			t.Fatalf("CreateInvestment() returned unexpected error: %v", err)
		}

		_, err := svc.CreateInvestment(t.Context(), "AAPL", "Apple again", model.AssetClassEquity)
		if !errors.Is(err, apperrors.ErrDuplicateSymbol) {
			t.Errorf("Expected ErrDuplicateSymbol, got %v", err)
		}
	})

	t.Run("starts with an empty position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		investment, err := svc.CreateInvestment(t.Context(), "VWCE.DE", "Vanguard FTSE All-World", model.AssetClassETF)
		if err != nil {
			t.Fatalf("CreateInvestment() returned unexpected error: %v", err)
		}

		if investment.Quantity != 0 || investment.AverageCost != 0 {
			t.Errorf("Expected empty position, got qty=%v avg=%v", investment.Quantity, investment.AverageCost)
		}
	})
}

// TestInvestmentService_PortfolioSummary tests whole-portfolio valuation.
//
// WHY: One failed quote must degrade only its own position; the rest of the
// portfolio keeps real values and the summary never errors because of a
// price-source failure.
func TestInvestmentService_PortfolioSummary(t *testing.T) {
	t.Run("degrades failed quotes without failing the summary", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		testutil.NewInvestment().WithSymbol("A").WithPosition(2, 100).Build(t, db)
		testutil.NewInvestment().WithSymbol("B").WithPosition(1, 50).Build(t, db)

		gateway := &fakeGateway{quotes: map[string]marketdata.Quote{
			"A": {Symbol: "A", Price: 150, Change: 3, Valid: true},
			// B has no quote: simulated fetch failure
		}}
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), gateway)

		// Execute
		summary, err := svc.PortfolioSummary(t.Context())

		// Assert
		if err != nil {
			t.Fatalf("PortfolioSummary() returned unexpected error: %v", err)
		}
		if len(summary.Positions) != 2 {
			t.Fatalf("Expected 2 positions, got %d", len(summary.Positions))
		}

		for _, p := range summary.Positions {
			switch p.Symbol {
			case "A":
				if !p.PriceValid || p.CurrentValue != 300 {
					t.Errorf("Expected valid position A worth 300, got %+v", p)
				}
			case "B":
				if p.PriceValid || p.CurrentValue != 0 {
					t.Errorf("Expected degraded position B, got %+v", p)
				}
			}
		}

		// Total reflects only the valued position
		if summary.TotalValue != 300 {
			t.Errorf("Expected total value 300, got %v", summary.TotalValue)
		}
		if summary.TotalInvested != 250 {
			t.Errorf("Expected total invested 250, got %v", summary.TotalInvested)
		}
	})

	t.Run("empty portfolio yields empty summary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		summary, err := svc.PortfolioSummary(t.Context())
		if err != nil {
			t.Fatalf("PortfolioSummary() returned unexpected error: %v", err)
		}
		if summary.TotalValue != 0 || len(summary.Positions) != 0 {
			t.Errorf("Expected empty summary, got %+v", summary)
		}
	})
}

// TestInvestmentService_DeleteInvestment tests deletion with lot cascade.
func TestInvestmentService_DeleteInvestment(t *testing.T) {
	t.Run("removes investment and its lots", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		investment := testutil.NewInvestment().Build(t, db)
		testutil.CreateLot(t, db, investment.ID, model.LotTypeBuy, 10, 100, 0)

		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		if err := svc.DeleteInvestment(t.Context(), investment.ID); err != nil {
			t.Fatalf("DeleteInvestment() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "investment", 0)
		testutil.AssertRowCount(t, db, "asset_lot", 0)
	})

	t.Run("returns not found for unknown investment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewInvestmentService(repository.NewInvestmentRepository(db), &fakeGateway{})

		err := svc.DeleteInvestment(t.Context(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("Expected ErrInvestmentNotFound, got %v", err)
		}
	})
}
