package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Investment table: one consolidated position per symbol
		CREATE TABLE investment (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			asset_class VARCHAR(10) NOT NULL,
			quantity FLOAT NOT NULL DEFAULT 0,
			average_cost FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Asset lot table: append-only buy/sell history per investment
		CREATE TABLE asset_lot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			investment_id VARCHAR(36) NOT NULL,
			type VARCHAR(4) NOT NULL,
			quantity FLOAT NOT NULL,
			price_per_unit FLOAT NOT NULL,
			fees FLOAT NOT NULL DEFAULT 0,
			date DATE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(investment_id) REFERENCES investment(id) ON DELETE CASCADE
		);

		-- Cash transaction table
		CREATE TABLE cash_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL,
			type VARCHAR(10) NOT NULL,
			category VARCHAR(50) NOT NULL,
			amount FLOAT NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Budget table
		CREATE TABLE budget (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			category VARCHAR(50) NOT NULL UNIQUE,
			monthly_limit FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Goal table
		CREATE TABLE goal (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			target_amount FLOAT NOT NULL,
			current_amount FLOAT NOT NULL DEFAULT 0,
			deadline DATE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Application setting table
		CREATE TABLE app_setting (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			"key" VARCHAR(30) NOT NULL UNIQUE,
			value VARCHAR(500) NOT NULL,
			updated_at DATETIME
		);

		-- Price snapshot table
		CREATE TABLE price_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL,
			price FLOAT NOT NULL,
			change FLOAT NOT NULL,
			change_percent FLOAT NOT NULL,
			fetched_at DATETIME NOT NULL
		);

		-- Indexes for performance
		CREATE INDEX ix_asset_lot_investment_id ON asset_lot(investment_id);
		CREATE INDEX ix_asset_lot_date ON asset_lot(date);
		CREATE INDEX ix_cash_transaction_date ON cash_transaction(date);
		CREATE INDEX ix_cash_transaction_category ON cash_transaction(category);
		CREATE INDEX ix_price_snapshot_symbol ON price_snapshot(symbol);
		CREATE INDEX ix_price_snapshot_fetched_at ON price_snapshot(fetched_at);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"asset_lot",
		"investment",
		"cash_transaction",
		"budget",
		"goal",
		"app_setting",
		"price_snapshot",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
