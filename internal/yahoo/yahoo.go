package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// FinanceClient provides methods for fetching financial data from the Yahoo
// Finance chart API. It wraps an HTTP client and provides convenient methods
// for querying current quotes and historical price series.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a new Yahoo Finance client.
// An empty baseURL selects the public Yahoo endpoint; tests pass the URL of
// a local stub server.
func NewFinanceClient(baseURL string) *FinanceClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// QuerySummary fetches the current quote for a symbol.
// It requests a one-day chart and reads the quote fields from the response
// metadata: regular market price, previous close and volume.
//
// Returns an error if the HTTP request fails, the response is malformed, the
// Yahoo API reports an error, or the price field is missing; callers treat
// all of these the same way.
func (c *FinanceClient) QuerySummary(ctx context.Context, symbol string) (Summary, error) {
	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))

	result, err := c.queryChart(ctx, chartURL)
	if err != nil {
		return Summary{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Summary{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	meta := result.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return Summary{}, fmt.Errorf("no regular market price for symbol %s", symbol)
	}

	// Yahoo populates previousClose for intraday ranges and
	// chartPreviousClose otherwise; prefer whichever is present.
	previousClose := meta.PreviousClose
	if previousClose <= 0 {
		previousClose = meta.ChartPreviousClose
	}

	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}

	return Summary{
		Symbol:              meta.Symbol,
		Name:                name,
		Currency:            meta.Currency,
		RegularMarketPrice:  meta.RegularMarketPrice,
		PreviousClose:       previousClose,
		RegularMarketVolume: meta.RegularMarketVolume,
	}, nil
}

// QueryChart fetches a historical price series for a symbol.
// The rng and interval values use Yahoo's own vocabulary ("1mo", "1d", "5m");
// the mapping from coarse timeframes lives with the caller.
//
// Data points whose close price is null in the raw response are dropped.
func (c *FinanceClient) QueryChart(ctx context.Context, symbol, rng, interval string) (PriceChart, error) {
	chartURL := fmt.Sprintf(
		"%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.baseURL,
		url.PathEscape(symbol),
		url.QueryEscape(interval),
		url.QueryEscape(rng),
	)

	result, err := c.queryChart(ctx, chartURL)
	if err != nil {
		return PriceChart{}, err
	}
	if len(result.Chart.Result) == 0 {
		return PriceChart{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	chart := result.Chart.Result[0]
	if len(chart.Timestamp) == 0 {
		return PriceChart{}, fmt.Errorf("no price data returned for symbol %s", symbol)
	}
	if len(chart.Indicators.Quote) == 0 {
		return PriceChart{}, fmt.Errorf("no close prices returned for symbol %s", symbol)
	}

	quote := chart.Indicators.Quote[0]
	if len(quote.Close) != len(chart.Timestamp) {
		return PriceChart{}, fmt.Errorf("mismatched data lengths for symbol %s", symbol)
	}

	points := make([]Point, 0, len(chart.Timestamp))
	for i, ts := range chart.Timestamp {
		if quote.Close[i] == nil {
			continue
		}
		point := Point{
			Date:  time.Unix(ts, 0).UTC(),
			Price: *quote.Close[i],
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			point.Volume = *quote.Volume[i]
		}
		points = append(points, point)
	}

	if len(points) == 0 {
		return PriceChart{}, fmt.Errorf("no usable data points for symbol %s", symbol)
	}

	return PriceChart{
		Symbol:   chart.Meta.Symbol,
		Currency: chart.Meta.Currency,
		Points:   points,
	}, nil
}

// queryChart is an internal helper that executes HTTP requests to the Yahoo
// chart API. It handles the common logic for making requests, reading
// responses, parsing JSON, and checking for API errors.
//
// The method sets required headers:
//   - User-Agent: Mimics a browser to avoid API blocking
//   - Accept: Requests JSON response format
func (c *FinanceClient) queryChart(ctx context.Context, chartURL string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chartURL, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, fmt.Errorf("yahoo error: status %d", resp.StatusCode)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}
