package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"finance-tracker/internal/marketdata"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
)

// RefreshService periodically captures price snapshots for every held symbol.
// The cron scheduler in main invokes RefreshAll on a fixed schedule.
type RefreshService struct {
	investments *repository.InvestmentRepository
	prices      *repository.PriceRepository
	market      MarketGateway
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(investments *repository.InvestmentRepository, prices *repository.PriceRepository, market MarketGateway) *RefreshService {
	return &RefreshService{
		investments: investments,
		prices:      prices,
		market:      market,
	}
}

// RefreshAll fetches current quotes for every investment in one batch and
// appends a snapshot row per symbol that returned a valid price. Symbols
// whose fetch failed are skipped rather than stored as zeros.
func (s *RefreshService) RefreshAll(ctx context.Context) error {
	investments, err := s.investments.GetInvestments()
	if err != nil {
		return err
	}
	if len(investments) == 0 {
		return nil
	}

	requests := make([]marketdata.QuoteRequest, len(investments))
	for i, investment := range investments {
		requests[i] = marketdata.QuoteRequest{
			Symbol: investment.Symbol,
			Crypto: investment.AssetClass == model.AssetClassCrypto,
		}
	}

	quotes := s.market.Quotes(ctx, requests)

	now := time.Now().UTC()
	snapshots := make([]model.PriceSnapshot, 0, len(quotes))
	for _, quote := range quotes {
		if !quote.Valid {
			log.Printf("Skipping snapshot for %s: no valid price", quote.Symbol)
			continue
		}
		snapshots = append(snapshots, model.PriceSnapshot{
			ID:            uuid.NewString(),
			Symbol:        quote.Symbol,
			Price:         quote.Price,
			Change:        quote.Change,
			ChangePercent: quote.ChangePercent,
			FetchedAt:     now,
		})
	}

	if err := s.prices.InsertSnapshots(ctx, snapshots); err != nil {
		return err
	}

	log.Printf("Price refresh stored %d snapshots for %d investments", len(snapshots), len(investments))
	return nil
}

// LatestSnapshot returns the most recent stored snapshot for a symbol.
func (s *RefreshService) LatestSnapshot(symbol string) (model.PriceSnapshot, error) {
	return s.prices.GetLatestSnapshot(symbol)
}
