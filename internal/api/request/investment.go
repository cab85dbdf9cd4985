package request

// CreateInvestmentRequest is the request body for creating an investment.
type CreateInvestmentRequest struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	AssetClass string `json:"assetClass"`
}

// RecordLotRequest is the request body for recording a buy or sell lot
// against an investment.
type RecordLotRequest struct {
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Fees         float64 `json:"fees"`
	Date         string  `json:"date"`
}
