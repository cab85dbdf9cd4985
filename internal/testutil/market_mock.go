package testutil

import (
	"context"
	"sync"
	"time"

	"finance-tracker/internal/coingecko"
	"finance-tracker/internal/yahoo"
)

// MockEquityClient is a configurable stand-in for the Yahoo client.
// Summaries maps symbol to the response returned by QuerySummary; symbols
// with an entry in Errors fail with that error instead. Call counts are
// tracked per symbol so tests can assert caching and retry behavior.
//
// Example usage:
//
//	mock := testutil.NewMockEquityClient()
//	mock.Summaries["AAPL"] = yahoo.Summary{RegularMarketPrice: 150, PreviousClose: 148}
//	mock.Errors["FAIL"] = errors.New("boom")
type MockEquityClient struct {
	mu        sync.Mutex
	Summaries map[string]yahoo.Summary
	Charts    map[string]yahoo.PriceChart
	Errors    map[string]error
	Calls     map[string]int
}

// NewMockEquityClient creates an empty MockEquityClient.
func NewMockEquityClient() *MockEquityClient {
	return &MockEquityClient{
		Summaries: map[string]yahoo.Summary{},
		Charts:    map[string]yahoo.PriceChart{},
		Errors:    map[string]error{},
		Calls:     map[string]int{},
	}
}

// QuerySummary returns the configured summary or error for symbol.
func (m *MockEquityClient) QuerySummary(_ context.Context, symbol string) (yahoo.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls[symbol]++
	if err, ok := m.Errors[symbol]; ok {
		return yahoo.Summary{}, err
	}
	return m.Summaries[symbol], nil
}

// QueryChart returns the configured chart or error for symbol.
func (m *MockEquityClient) QueryChart(_ context.Context, symbol, _, _ string) (yahoo.PriceChart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls[symbol]++
	if err, ok := m.Errors[symbol]; ok {
		return yahoo.PriceChart{}, err
	}
	return m.Charts[symbol], nil
}

// CallCount returns how many times symbol was requested.
func (m *MockEquityClient) CallCount(symbol string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[symbol]
}

// MockCryptoClient is a configurable stand-in for the CoinGecko client.
type MockCryptoClient struct {
	mu     sync.Mutex
	Prices map[string]coingecko.SimplePrice
	Errors map[string]error
	Calls  map[string]int
}

// NewMockCryptoClient creates an empty MockCryptoClient.
func NewMockCryptoClient() *MockCryptoClient {
	return &MockCryptoClient{
		Prices: map[string]coingecko.SimplePrice{},
		Errors: map[string]error{},
		Calls:  map[string]int{},
	}
}

// QuerySimplePrice returns the configured price or error for id.
func (m *MockCryptoClient) QuerySimplePrice(_ context.Context, id string) (coingecko.SimplePrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls[id]++
	if err, ok := m.Errors[id]; ok {
		return coingecko.SimplePrice{}, err
	}
	return m.Prices[id], nil
}

// CallCount returns how many times id was requested.
func (m *MockCryptoClient) CallCount(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[id]
}

// FixedClock returns a clock function pinned to at, for deterministic
// cache-expiry and snapshot tests.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
