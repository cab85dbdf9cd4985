package marketdata_test

import (
	"testing"
	"time"

	"finance-tracker/internal/marketdata"
)

// TestQuoteCache_Freshness tests the cache freshness window.
//
// WHY: The cache is the first line of defense against hammering the public
// price APIs. A quote must be served from cache strictly within the freshness
// window and treated as absent once the window has passed.
func TestQuoteCache_Freshness(t *testing.T) {
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	newCacheAt := func(clock *time.Time) *marketdata.QuoteCache {
		return marketdata.NewQuoteCache(5*time.Minute, func() time.Time { return *clock })
	}

	t.Run("returns quote within freshness window", func(t *testing.T) {
		// Setup
		now := base
		cache := newCacheAt(&now)
		cache.Put("AAPL", marketdata.Quote{Symbol: "AAPL", Price: 150, Valid: true})

		// Just inside the window
		now = base.Add(5*time.Minute - time.Second)

		// Execute
		quote, ok := cache.Get("AAPL")

		// Assert
		if !ok {
			t.Fatal("Expected cache hit within freshness window")
		}
		if quote.Price != 150 {
			t.Errorf("Expected cached price 150, got %v", quote.Price)
		}
	})

	t.Run("treats entry as absent after freshness window", func(t *testing.T) {
		// Setup
		now := base
		cache := newCacheAt(&now)
		cache.Put("AAPL", marketdata.Quote{Symbol: "AAPL", Price: 150, Valid: true})

		// Just past the window
		now = base.Add(5*time.Minute + time.Second)

		// Execute
		_, ok := cache.Get("AAPL")

		// Assert
		if ok {
			t.Error("Expected cache miss after freshness window")
		}
	})

	t.Run("misses for unknown symbol", func(t *testing.T) {
		now := base
		cache := newCacheAt(&now)

		if _, ok := cache.Get("UNKNOWN"); ok {
			t.Error("Expected cache miss for symbol never stored")
		}
	})

	t.Run("put restarts the freshness window", func(t *testing.T) {
		// Setup
		now := base
		cache := newCacheAt(&now)
		cache.Put("AAPL", marketdata.Quote{Symbol: "AAPL", Price: 150, Valid: true})

		// Refresh halfway through the window
		now = base.Add(3 * time.Minute)
		cache.Put("AAPL", marketdata.Quote{Symbol: "AAPL", Price: 151, Valid: true})

		// Past the original window but within the refreshed one
		now = base.Add(7 * time.Minute)

		// Execute
		quote, ok := cache.Get("AAPL")

		// Assert
		if !ok {
			t.Fatal("Expected cache hit within refreshed window")
		}
		if quote.Price != 151 {
			t.Errorf("Expected refreshed price 151, got %v", quote.Price)
		}
	})
}
