package marketdata

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"finance-tracker/internal/coingecko"
	"finance-tracker/internal/yahoo"
)

// maxConcurrentFetches bounds a batch fetch; the throttle spaces the actual
// request starts regardless.
const maxConcurrentFetches = 8

// EquityClient is the subset of the Yahoo client the gateway uses.
type EquityClient interface {
	QuerySummary(ctx context.Context, symbol string) (yahoo.Summary, error)
	QueryChart(ctx context.Context, symbol, rng, interval string) (yahoo.PriceChart, error)
}

// CryptoClient is the subset of the CoinGecko client the gateway uses.
type CryptoClient interface {
	QuerySimplePrice(ctx context.Context, id string) (coingecko.SimplePrice, error)
}

// QuoteRequest identifies one symbol in a batch fetch.
// Crypto symbols are CoinGecko coin identifiers; everything else is a ticker.
type QuoteRequest struct {
	Symbol string
	Crypto bool
}

// Gateway fetches current prices from the two external price APIs and
// normalizes both into the Quote shape.
//
// Failure policy: fetch errors never propagate. Network failures, malformed
// responses and missing price fields all collapse to a zero-filled quote with
// Valid=false, logged but not returned as errors, so valuations degrade to
// clearly-wrong-but-non-crashing values instead of blocking callers.
type Gateway struct {
	equity   EquityClient
	crypto   CryptoClient
	cache    *QuoteCache
	throttle *Throttle
	now      func() time.Time
}

// NewGateway creates a gateway over the given clients. A nil clock defaults
// to time.Now; the clock stamps FetchedAt and seeds synthetic history.
func NewGateway(equity EquityClient, crypto CryptoClient, cache *QuoteCache, throttle *Throttle, now func() time.Time) *Gateway {
	if now == nil {
		now = time.Now
	}
	return &Gateway{
		equity:   equity,
		crypto:   crypto,
		cache:    cache,
		throttle: throttle,
		now:      now,
	}
}

// EquityQuote returns the current quote for an equity or ETF ticker.
// Cache-first; on a miss the fetch goes through the throttle and the result
// is cached. Day change is derived from the previous close.
func (g *Gateway) EquityQuote(ctx context.Context, symbol string) Quote {
	if quote, ok := g.cache.Get(symbol); ok {
		return quote
	}

	var summary yahoo.Summary
	err := g.throttle.Do(ctx, func(ctx context.Context) error {
		s, err := g.equity.QuerySummary(ctx, symbol)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		log.Printf("marketdata: equity quote for %s failed: %v", symbol, err)
		return ZeroQuote(symbol, g.now())
	}

	change := summary.RegularMarketPrice - summary.PreviousClose
	changePercent := 0.0
	if summary.PreviousClose != 0 {
		changePercent = change / summary.PreviousClose * 100
	}

	quote := Quote{
		Symbol:        symbol,
		Price:         summary.RegularMarketPrice,
		Change:        change,
		ChangePercent: changePercent,
		Volume:        summary.RegularMarketVolume,
		FetchedAt:     g.now(),
		Valid:         true,
	}
	g.cache.Put(symbol, quote)
	return quote
}

// CryptoQuote returns the current quote for a CoinGecko coin identifier.
// The source reports the 24h change as a percentage; the absolute change is
// back-derived from it against the current price.
func (g *Gateway) CryptoQuote(ctx context.Context, id string) Quote {
	if quote, ok := g.cache.Get(id); ok {
		return quote
	}

	var price coingecko.SimplePrice
	err := g.throttle.Do(ctx, func(ctx context.Context) error {
		p, err := g.crypto.QuerySimplePrice(ctx, id)
		if err != nil {
			return err
		}
		price = p
		return nil
	})
	if err != nil {
		log.Printf("marketdata: crypto quote for %s failed: %v", id, err)
		return ZeroQuote(id, g.now())
	}

	quote := Quote{
		Symbol:        id,
		Price:         price.USD,
		Change:        price.USD * price.USD24hChange / 100,
		ChangePercent: price.USD24hChange,
		MarketCap:     price.USDMarketCap,
		FetchedAt:     g.now(),
		Valid:         true,
	}
	g.cache.Put(id, quote)
	return quote
}

// Quotes fetches a batch of symbols concurrently with per-symbol failure
// isolation: one symbol's failure does not fail the batch, its entry is the
// zero-filled fallback. The result contains one entry per distinct symbol;
// duplicate symbols in one batch collapse to a single entry.
func (g *Gateway) Quotes(ctx context.Context, requests []QuoteRequest) map[string]Quote {
	results := make(map[string]Quote, len(requests))
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFetches)

	for _, req := range requests {
		group.Go(func() error {
			var quote Quote
			if req.Crypto {
				quote = g.CryptoQuote(ctx, req.Symbol)
			} else {
				quote = g.EquityQuote(ctx, req.Symbol)
			}

			mu.Lock()
			results[req.Symbol] = quote
			mu.Unlock()
			// Individual failures already collapsed to fallback quotes.
			return nil
		})
	}

	// No goroutine returns an error; Wait is for joining only.
	_ = group.Wait()

	return results
}
