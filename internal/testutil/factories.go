package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"finance-tracker/internal/model"
)

// MakeID generates a UUID string for test fixtures.
func MakeID() string {
	return uuid.NewString()
}

// InvestmentBuilder provides a fluent interface for creating test investments.
//
// Example usage:
//
//	// Simple creation with defaults
//	investment := testutil.NewInvestment().Build(t, db)
//
//	// Customized investment
//	investment := testutil.NewInvestment().
//	    WithSymbol("VWCE.DE").
//	    WithAssetClass("etf").
//	    WithPosition(10, 95.5).
//	    Build(t, db)
type InvestmentBuilder struct {
	ID          string
	Symbol      string
	Name        string
	AssetClass  string
	Quantity    float64
	AverageCost float64
}

// NewInvestment creates an InvestmentBuilder with sensible defaults.
func NewInvestment() *InvestmentBuilder {
	id := MakeID()
	return &InvestmentBuilder{
		ID:         id,
		Symbol:     "TST-" + id[:8],
		Name:       "Test Investment",
		AssetClass: model.AssetClassEquity,
	}
}

// WithID sets a custom ID.
func (b *InvestmentBuilder) WithID(id string) *InvestmentBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *InvestmentBuilder) WithSymbol(symbol string) *InvestmentBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom name.
func (b *InvestmentBuilder) WithName(name string) *InvestmentBuilder {
	b.Name = name
	return b
}

// WithAssetClass sets a custom asset class.
func (b *InvestmentBuilder) WithAssetClass(assetClass string) *InvestmentBuilder {
	b.AssetClass = assetClass
	return b
}

// WithPosition sets the consolidated quantity and average cost directly.
func (b *InvestmentBuilder) WithPosition(quantity, averageCost float64) *InvestmentBuilder {
	b.Quantity = quantity
	b.AverageCost = averageCost
	return b
}

// Build creates the investment in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	query := `
		INSERT INTO investment (id, symbol, name, asset_class, quantity, average_cost)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Symbol, b.Name, b.AssetClass, b.Quantity, b.AverageCost)
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	return model.Investment{
		ID:          b.ID,
		Symbol:      b.Symbol,
		Name:        b.Name,
		AssetClass:  b.AssetClass,
		Quantity:    b.Quantity,
		AverageCost: b.AverageCost,
	}
}

// CreateLot inserts an asset lot for an investment and returns it.
//
// Example usage:
//
//	lot := testutil.CreateLot(t, db, investment.ID, "buy", 10, 100.0, 1.5)
func CreateLot(t *testing.T, db *sql.DB, investmentID, lotType string, quantity, pricePerUnit, fees float64) model.AssetLot {
	t.Helper()

	lot := model.AssetLot{
		ID:           MakeID(),
		InvestmentID: investmentID,
		Type:         lotType,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Fees:         fees,
		Date:         time.Now().UTC().Truncate(time.Second),
	}

	query := `
		INSERT INTO asset_lot (id, investment_id, type, quantity, price_per_unit, fees, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, lot.ID, lot.InvestmentID, lot.Type, lot.Quantity, lot.PricePerUnit, lot.Fees, lot.Date.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test lot: %v", err)
	}

	return lot
}

// CreateTransaction inserts a cash transaction dated date and returns it.
//
// Example usage:
//
//	tx := testutil.CreateTransaction(t, db, "expense", "groceries", 45.20, "2026-08-03")
func CreateTransaction(t *testing.T, db *sql.DB, txType, category string, amount float64, date string) model.Transaction {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("Invalid test transaction date %q: %v", date, err)
	}

	tx := model.Transaction{
		ID:       MakeID(),
		Date:     parsed,
		Type:     txType,
		Category: category,
		Amount:   amount,
	}

	query := `
		INSERT INTO cash_transaction (id, date, type, category, amount, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query, tx.ID, parsed.Format(time.RFC3339), tx.Type, tx.Category, tx.Amount, tx.Description)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return tx
}

// CreateBudget inserts a budget row and returns it.
func CreateBudget(t *testing.T, db *sql.DB, category string, monthlyLimit float64) model.Budget {
	t.Helper()

	budget := model.Budget{
		ID:           MakeID(),
		Category:     category,
		MonthlyLimit: monthlyLimit,
	}

	_, err := db.Exec(
		`INSERT INTO budget (id, category, monthly_limit) VALUES (?, ?, ?)`,
		budget.ID, budget.Category, budget.MonthlyLimit,
	)
	if err != nil {
		t.Fatalf("Failed to create test budget: %v", err)
	}

	return budget
}

// CreateGoal inserts a goal row without a deadline and returns it.
func CreateGoal(t *testing.T, db *sql.DB, name string, target, current float64) model.Goal {
	t.Helper()

	goal := model.Goal{
		ID:            MakeID(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
	}

	_, err := db.Exec(
		`INSERT INTO goal (id, name, target_amount, current_amount) VALUES (?, ?, ?, ?)`,
		goal.ID, goal.Name, goal.TargetAmount, goal.CurrentAmount,
	)
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return goal
}
