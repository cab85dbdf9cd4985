// Package marketdata implements the investment pricing pipeline: a
// freshness-windowed quote cache, a throttled and retried fetch path against
// two external price APIs, and normalization of both into one quote shape.
package marketdata

import "time"

// Quote is the normalized market quote shape shared by both price sources.
//
// Valid reports whether the quote came from a successful fetch. A failed
// fetch yields a zero-filled quote with Valid=false rather than an error, so
// downstream valuations degrade instead of blocking; callers that must tell
// "really zero" apart from "fetch failed" check Valid.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Volume        int64     `json:"volume,omitempty"`
	MarketCap     float64   `json:"marketCap,omitempty"`
	FetchedAt     time.Time `json:"fetchedAt"`
	Valid         bool      `json:"valid"`
}

// ZeroQuote returns the fallback quote for a failed fetch.
func ZeroQuote(symbol string, at time.Time) Quote {
	return Quote{
		Symbol:    symbol,
		FetchedAt: at,
		Valid:     false,
	}
}

// PricePoint is a single point in a historical price series.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Price  float64   `json:"price"`
	Volume int64     `json:"volume"`
}
