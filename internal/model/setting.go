package model

import "time"

// Well-known setting keys.
const (
	SettingCurrency         = "currency"
	SettingRefreshInterval  = "refresh_interval"
	SettingMarketDataAPIKey = "market_api_key"
)

// Setting represents a single application setting stored as a key/value pair.
// Sensitive values (the market data API key) are encrypted at rest.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
