package model

import "time"

// PriceSnapshot is a persisted record of a fetched market quote.
// The scheduled refresh job appends one row per held symbol per run.
type PriceSnapshot struct {
	ID            string    `json:"id"`
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	FetchedAt     time.Time `json:"fetchedAt"`
}
