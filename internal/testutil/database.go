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
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Asset transaction ledger
		CREATE TABLE asset_transaction (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL,
			quantity FLOAT NOT NULL,
			price_per_unit FLOAT NOT NULL,
			type VARCHAR(10) NOT NULL,
			date TEXT,
			notes TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		);

		-- Strategy table
		CREATE TABLE strategy (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			image_references TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		);

		-- Trade journal table
		CREATE TABLE trade (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL,
			open_date TEXT,
			close_date TEXT,
			open_price FLOAT NOT NULL,
			close_price FLOAT,
			direction VARCHAR(5) NOT NULL,
			level INTEGER NOT NULL,
			volume FLOAT NOT NULL,
			source VARCHAR(100),
			order_type VARCHAR(10),
			strategy_id INTEGER,
			reference_images TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(strategy_id) REFERENCES strategy(id)
		);

		-- Daily summary snapshot table
		CREATE TABLE summary_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date TEXT NOT NULL UNIQUE,
			total_profit FLOAT NOT NULL,
			holdings_value FLOAT NOT NULL,
			total_capital FLOAT NOT NULL,
			remaining_capital FLOAT NOT NULL,
			calculated_at TEXT DEFAULT CURRENT_TIMESTAMP NOT NULL
		);

		-- Indexes for performance
		CREATE INDEX ix_asset_transaction_name ON asset_transaction(name);
		CREATE INDEX ix_asset_transaction_date ON asset_transaction(date);
		CREATE INDEX ix_trade_name ON trade(name);
		CREATE INDEX ix_trade_strategy_id ON trade(strategy_id);
		CREATE INDEX ix_summary_snapshot_date ON summary_snapshot(date);
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
		"trade",
		"strategy",
		"asset_transaction",
		"summary_snapshot",
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
