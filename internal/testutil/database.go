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
		-- User table
		CREATE TABLE user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			display_name VARCHAR(100) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Account table
		CREATE TABLE account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(10) NOT NULL,
			balance FLOAT NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		-- Stock holding table
		CREATE TABLE stock_holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			name VARCHAR(100) NOT NULL,
			shares FLOAT NOT NULL,
			avg_price FLOAT NOT NULL,
			current_price FLOAT NOT NULL,
			last_updated DATETIME NOT NULL,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		-- Transaction table (quoted because transaction is a reserved keyword).
		-- account_id has no foreign key: deleted accounts orphan their
		-- transactions instead of cascading.
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			account_id VARCHAR(36) NOT NULL,
			type VARCHAR(10) NOT NULL,
			amount FLOAT NOT NULL,
			category VARCHAR(50) NOT NULL,
			date VARCHAR(10) NOT NULL,
			note TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		-- System setting table
		CREATE TABLE system_setting (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			"key" VARCHAR(30) NOT NULL UNIQUE,
			value VARCHAR(500) NOT NULL,
			updated_at DATETIME
		);

		CREATE INDEX ix_account_user_id ON account(user_id);
		CREATE INDEX ix_stock_holding_user_id ON stock_holding(user_id);
		CREATE INDEX ix_transaction_user_id ON "transaction"(user_id);
		CREATE INDEX ix_transaction_user_id_date ON "transaction"(user_id, date);
		CREATE INDEX ix_transaction_account_id ON "transaction"(account_id);
	`

	_, err := db.Exec(schema)
	return err
}
