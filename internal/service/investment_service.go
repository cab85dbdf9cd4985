package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
)

// MarketGateway is the market data surface the services consume.
// Quote methods never fail; a fetch failure yields a zero-filled quote with
// Valid=false.
type MarketGateway interface {
	EquityQuote(ctx context.Context, symbol string) marketdata.Quote
	CryptoQuote(ctx context.Context, id string) marketdata.Quote
	Quotes(ctx context.Context, requests []marketdata.QuoteRequest) map[string]marketdata.Quote
	History(ctx context.Context, symbol string, tf marketdata.Timeframe) []marketdata.PricePoint
}

// InvestmentService implements the position consolidation pipeline: recording
// lots, recomputing positions from full lot history, and valuing positions
// against live quotes.
type InvestmentService struct {
	repo   *repository.InvestmentRepository
	market MarketGateway
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(repo *repository.InvestmentRepository, market MarketGateway) *InvestmentService {
	return &InvestmentService{
		repo:   repo,
		market: market,
	}
}

// GetInvestments returns all investments.
func (s *InvestmentService) GetInvestments() ([]model.Investment, error) {
	return s.repo.GetInvestments()
}

// GetInvestment returns a single investment by ID.
func (s *InvestmentService) GetInvestment(id string) (model.Investment, error) {
	return s.repo.GetInvestment(id)
}

// GetLots returns the full lot history for an investment, oldest first.
func (s *InvestmentService) GetLots(id string) ([]model.AssetLot, error) {
	if _, err := s.repo.GetInvestment(id); err != nil {
		return nil, err
	}
	return s.repo.GetLots(id)
}

// CreateInvestment creates an empty position for a symbol. Quantity and
// average cost start at zero and are derived from lots as they are recorded.
func (s *InvestmentService) CreateInvestment(ctx context.Context, symbol, name, assetClass string) (model.Investment, error) {
	investment := model.Investment{
		ID:         uuid.NewString(),
		Symbol:     symbol,
		Name:       name,
		AssetClass: assetClass,
	}

	if err := s.repo.CreateInvestment(ctx, investment); err != nil {
		return model.Investment{}, err
	}

	return s.repo.GetInvestment(investment.ID)
}

// RecordLot appends a buy or sell lot to an investment and recomputes the
// position from the entire lot history. The recompute-from-scratch policy
// trades O(n) work per write for freedom from accumulated rounding drift.
//
// Over-selling is not rejected: a sell larger than the held quantity drives
// the position negative, and the average cost reports 0 until buys restore a
// positive quantity.
func (s *InvestmentService) RecordLot(ctx context.Context, investmentID string, lot model.AssetLot) (model.Investment, error) {
	investment, err := s.repo.GetInvestment(investmentID)
	if err != nil {
		return model.Investment{}, err
	}

	lot.ID = uuid.NewString()
	lot.InvestmentID = investment.ID
	if lot.Date.IsZero() {
		lot.Date = time.Now().UTC()
	}

	if err := s.repo.CreateLot(ctx, lot); err != nil {
		return model.Investment{}, fmt.Errorf("failed to record lot: %w", err)
	}

	lots, err := s.repo.GetLots(investment.ID)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to reload lot history: %w", err)
	}

	quantity, averageCost := Consolidate(lots)
	if err := s.repo.UpdatePosition(ctx, investment.ID, quantity, averageCost); err != nil {
		return model.Investment{}, fmt.Errorf("failed to update position: %w", err)
	}

	return s.repo.GetInvestment(investment.ID)
}

// DeleteInvestment removes an investment and, by cascade, its lot history.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, id string) error {
	return s.repo.DeleteInvestment(ctx, id)
}

// Performance values a single investment against its current quote.
func (s *InvestmentService) Performance(ctx context.Context, id string) (model.PerformanceSnapshot, error) {
	investment, err := s.repo.GetInvestment(id)
	if err != nil {
		return model.PerformanceSnapshot{}, err
	}

	return Evaluate(investment, s.quoteFor(ctx, investment)), nil
}

// PortfolioSummary values every investment with one batch quote fetch and
// aggregates the snapshots. A failed fetch for one symbol degrades that
// position to zero values (PriceValid=false) without failing the summary.
func (s *InvestmentService) PortfolioSummary(ctx context.Context) (model.PortfolioSummary, error) {
	investments, err := s.repo.GetInvestments()
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	requests := make([]marketdata.QuoteRequest, len(investments))
	for i, investment := range investments {
		requests[i] = marketdata.QuoteRequest{
			Symbol: investment.Symbol,
			Crypto: investment.AssetClass == model.AssetClassCrypto,
		}
	}

	quotes := s.market.Quotes(ctx, requests)

	snapshots := make([]model.PerformanceSnapshot, len(investments))
	for i, investment := range investments {
		snapshots[i] = Evaluate(investment, quotes[investment.Symbol])
	}

	return Rollup(snapshots), nil
}

// History returns a price series for an investment over a coarse timeframe.
// The series is never empty: fetch failures fall back to a synthesized walk.
func (s *InvestmentService) History(ctx context.Context, id string, tf marketdata.Timeframe) ([]marketdata.PricePoint, error) {
	investment, err := s.repo.GetInvestment(id)
	if err != nil {
		return nil, err
	}

	return s.market.History(ctx, investment.Symbol, tf), nil
}

func (s *InvestmentService) quoteFor(ctx context.Context, investment model.Investment) marketdata.Quote {
	if investment.AssetClass == model.AssetClassCrypto {
		return s.market.CryptoQuote(ctx, investment.Symbol)
	}
	return s.market.EquityQuote(ctx, investment.Symbol)
}
