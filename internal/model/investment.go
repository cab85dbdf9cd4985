package model

import "time"

// Asset class values for Investment.AssetClass.
const (
	AssetClassEquity = "equity"
	AssetClassETF    = "etf"
	AssetClassCrypto = "crypto"
)

// Lot type values for AssetLot.Type.
const (
	LotTypeBuy  = "buy"
	LotTypeSell = "sell"
)

// Investment represents a consolidated position in a single symbol.
// Quantity and AverageCost are derived values: they must always equal the
// fold of the investment's full lot history and are recomputed on every
// recorded lot.
type Investment struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	AssetClass  string    `json:"assetClass"`
	Quantity    float64   `json:"quantity"`
	AverageCost float64   `json:"averageCost"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// AssetLot represents a single recorded buy or sell event for an investment.
// Lots are immutable once recorded; the append-only lot history is the source
// of truth for the consolidated position.
type AssetLot struct {
	ID           string    `json:"id"`
	InvestmentID string    `json:"investmentId"`
	Type         string    `json:"type"`
	Quantity     float64   `json:"quantity"`
	PricePerUnit float64   `json:"pricePerUnit"`
	Fees         float64   `json:"fees"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// PerformanceSnapshot combines a consolidated position with a market quote.
// It is computed on every read and never persisted.
//
// PriceValid distinguishes a genuine zero price from the zero-filled fallback
// returned when a market data fetch fails.
type PerformanceSnapshot struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	AssetClass        string  `json:"assetClass"`
	Quantity          float64 `json:"quantity"`
	AverageCost       float64 `json:"averageCost"`
	Price             float64 `json:"price"`
	CurrentValue      float64 `json:"currentValue"`
	InvestedValue     float64 `json:"investedValue"`
	GainLoss          float64 `json:"gainLoss"`
	GainLossPercent   float64 `json:"gainLossPercent"`
	DayChange         float64 `json:"dayChange"`
	DayChangePercent  float64 `json:"dayChangePercent"`
	AllocationPercent float64 `json:"allocationPercent"`
	PriceValid        bool    `json:"priceValid"`
}

// PortfolioSummary aggregates performance across all positions.
// Totals are summed before portfolio-level gain/loss is derived, so the
// percentages are value-weighted rather than averaged.
type PortfolioSummary struct {
	TotalValue      float64               `json:"totalValue"`
	TotalInvested   float64               `json:"totalInvested"`
	GainLoss        float64               `json:"gainLoss"`
	GainLossPercent float64               `json:"gainLossPercent"`
	DayChange       float64               `json:"dayChange"`
	Positions       []PerformanceSnapshot `json:"positions"`
}
