package marketdata

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the quote freshness window.
const DefaultCacheTTL = 5 * time.Minute

// QuoteCache is a time-boxed in-memory quote cache keyed by symbol.
// Entries older than the freshness window are treated as absent; expiry is
// lazy, there is no background sweep and no capacity bound. The clock is
// injected so tests can control freshness deterministically.
type QuoteCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	quote    Quote
	storedAt time.Time
}

// NewQuoteCache creates a cache with the given freshness window.
// A nil clock defaults to time.Now.
func NewQuoteCache(ttl time.Duration, now func() time.Time) *QuoteCache {
	if now == nil {
		now = time.Now
	}
	return &QuoteCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached quote for symbol if it is still within the
// freshness window.
func (c *QuoteCache) Get(symbol string) (Quote, bool) {
	c.mu.RLock()
	entry, ok := c.entries[symbol]
	c.mu.RUnlock()

	if !ok {
		return Quote{}, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		return Quote{}, false
	}
	return entry.quote, true
}

// Put stores a quote for symbol, restarting its freshness window.
func (c *QuoteCache) Put(symbol string, quote Quote) {
	c.mu.Lock()
	c.entries[symbol] = cacheEntry{quote: quote, storedAt: c.now()}
	c.mu.Unlock()
}
