package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. The same endpoint serves both current quotes (via the metadata
// object) and historical series (via the timestamp/indicator arrays).
//
// The structure includes:
//   - Chart.Result: Array of result objects (typically contains one element)
//   - Chart.Result[].Meta: Symbol metadata including the regular market price
//     and previous close used for day-change computation
//   - Chart.Result[].Timestamp: Unix timestamps for each data point
//   - Chart.Result[].Indicators: Price data arrays (close, volume)
//   - Chart.Error: Optional error message from Yahoo API
//
// Close and Volume use pointer slices because Yahoo emits JSON nulls for
// gaps in the series.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency            string  `json:"currency"`
				Symbol              string  `json:"symbol"`
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				PreviousClose       float64 `json:"previousClose"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				RegularMarketVolume int64   `json:"regularMarketVolume"`
				LongName            string  `json:"longName"`
				ShortName           string  `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// Summary represents the current-quote view of a chart response: the fields
// needed to value a position and compute its day change.
type Summary struct {
	Symbol              string  `json:"symbol"`
	Name                string  `json:"name"`
	Currency            string  `json:"currency"`
	RegularMarketPrice  float64 `json:"regularMarketPrice"`
	PreviousClose       float64 `json:"previousClose"`
	RegularMarketVolume int64   `json:"regularMarketVolume"`
}

// PriceChart represents a parsed historical series for one symbol.
// Points with null closes in the raw response are dropped during parsing.
type PriceChart struct {
	Symbol   string  `json:"symbol"`
	Currency string  `json:"currency"`
	Points   []Point `json:"points"`
}

// Point represents a single data point in a price chart.
type Point struct {
	Date   time.Time `json:"date"`
	Price  float64   `json:"price"`
	Volume int64     `json:"volume"`
}
