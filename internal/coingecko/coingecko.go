// Package coingecko provides a minimal client for the CoinGecko simple-price
// API, used to quote cryptocurrency holdings.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	publicBaseURL = "https://api.coingecko.com/api/v3"
	proBaseURL    = "https://pro-api.coingecko.com/api/v3"
)

// SimplePrice represents the normalized simple-price response for one coin.
// USD24hChange is a percentage; the absolute day change is back-derived by
// the caller. USDMarketCap may be zero when the API omits it.
type SimplePrice struct {
	ID           string  `json:"id"`
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd24hChange"`
	USDMarketCap float64 `json:"usdMarketCap"`
}

// Client wraps HTTP access to the CoinGecko API.
type Client struct {
	baseURL      string
	apiKey       string
	apiKeyHeader string
	httpClient   *http.Client
	vsCurrency   string
}

// NewClient creates a CoinGecko client. An empty baseURL selects the public
// endpoint; the API key is optional on the public tier.
func NewClient(baseURL, apiKey string) *Client {
	resolved := strings.TrimRight(baseURL, "/")
	if resolved == "" {
		resolved = publicBaseURL
	}

	header := "x-cg-demo-api-key"
	if strings.Contains(resolved, "pro-api.coingecko.com") {
		header = "x-cg-pro-api-key"
	}

	return &Client{
		baseURL:      resolved,
		apiKey:       apiKey,
		apiKeyHeader: header,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		vsCurrency: "usd",
	}
}

// QuerySimplePrice fetches the current USD price, 24h change percentage and
// market cap for a single coin identifier (e.g. "bitcoin").
func (c *Client) QuerySimplePrice(ctx context.Context, id string) (SimplePrice, error) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return SimplePrice{}, fmt.Errorf("coin id is required")
	}

	endpoint, err := url.Parse(c.baseURL + "/simple/price")
	if err != nil {
		return SimplePrice{}, err
	}

	query := endpoint.Query()
	query.Set("ids", id)
	query.Set("vs_currencies", c.vsCurrency)
	query.Set("include_24hr_change", "true")
	query.Set("include_market_cap", "true")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return SimplePrice{}, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(c.apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SimplePrice{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return SimplePrice{}, fmt.Errorf("coingecko error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SimplePrice{}, err
	}

	values, ok := payload[id]
	if !ok {
		return SimplePrice{}, fmt.Errorf("coingecko: no data for coin %s", id)
	}
	price, ok := values[c.vsCurrency]
	if !ok {
		return SimplePrice{}, fmt.Errorf("coingecko: no %s price for coin %s", c.vsCurrency, id)
	}

	return SimplePrice{
		ID:           id,
		USD:          price,
		USD24hChange: values[c.vsCurrency+"_24h_change"],
		USDMarketCap: values[c.vsCurrency+"_market_cap"],
	}, nil
}
