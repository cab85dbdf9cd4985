package validation

import (
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/api/request"
)

// ValidAssetClass contains the allowed asset class values.
var ValidAssetClass = map[string]bool{
	"equity": true, "etf": true, "crypto": true,
}

// ValidLotType contains the allowed lot type values.
var ValidLotType = map[string]bool{
	"buy": true, "sell": true,
}

// ValidateCreateInvestment validates an investment creation request.
//
// Required fields:
//   - symbol: Non-empty ticker or coin identifier
//   - assetClass: Must be one of: equity, etf, crypto
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.AssetClass) == "" {
		errors["assetClass"] = "assetClass is required"
	} else if !ValidAssetClass[req.AssetClass] {
		errors["assetClass"] = fmt.Sprintf("invalid assetClass: %s", req.AssetClass)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateRecordLot validates a lot recording request.
//
// Required fields:
//   - type: Must be one of: buy, sell
//   - quantity: Must be positive
//   - pricePerUnit: Must be positive
//   - fees: Must not be negative
//   - date: Must be in YYYY-MM-DD format if provided
//
// A sell larger than the held quantity is accepted; consolidation reports
// the resulting negative position rather than rejecting the lot.
func ValidateRecordLot(req request.RecordLotRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidLotType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.PricePerUnit <= 0.0 {
		errors["pricePerUnit"] = "pricePerUnit must be positive"
	}

	if req.Fees < 0.0 {
		errors["fees"] = "fees must not be negative"
	}

	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
