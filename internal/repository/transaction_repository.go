package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// Transactions are immutable: this repository exposes insert and read paths
// only.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateApplyingDelta inserts a transaction and applies a balance delta to the
// referenced account in one database transaction. The transaction row is
// created unconditionally; the balance update silently matches zero rows when
// the account no longer exists (orphaned reference, not a failure). A zero
// delta skips the account update entirely.
func (r *TransactionRepository) CreateApplyingDelta(t model.Transaction, delta float64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.Exec(`
		INSERT INTO "transaction" (id, user_id, account_id, type, amount, category, date, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.UserID, t.AccountID, t.Type, t.Amount, t.Category, t.Date, t.Note)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if delta != 0 {
		_, err = tx.Exec(`
			UPDATE account
			SET balance = balance + ?
			WHERE id = ? AND user_id = ?
		`, delta, t.AccountID, t.UserID)
		if err != nil {
			return fmt.Errorf("failed to apply balance delta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction posting: %w", err)
	}

	return nil
}

// GetTransactions retrieves all transactions for the given user together with
// the display name of each referenced account. Orphaned references (deleted
// accounts) yield the fallback label. Ordered by date descending, ties broken
// by insertion order.
func (r *TransactionRepository) GetTransactions(userID string) ([]model.TransactionResponse, error) {
	rows, err := r.db.Query(`
		SELECT t.id, t.account_id, COALESCE(a.name, ?), t.type, t.amount, t.category, t.date, COALESCE(t.note, '')
		FROM "transaction" t
		LEFT JOIN account a ON t.account_id = a.id
		WHERE t.user_id = ?
		ORDER BY t.date DESC, t.rowid ASC
	`, model.OrphanedAccountLabel, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.TransactionResponse{}
	for rows.Next() {
		var t model.TransactionResponse
		err := rows.Scan(&t.ID, &t.AccountID, &t.AccountName, &t.Type, &t.Amount, &t.Category, &t.Date, &t.Note)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetRawTransactions retrieves all transactions for the given user without
// account enrichment, for aggregation inputs. Ordered by date ascending.
func (r *TransactionRepository) GetRawTransactions(userID string) ([]model.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, account_id, type, amount, category, date, COALESCE(note, '')
		FROM "transaction"
		WHERE user_id = ?
		ORDER BY date ASC, rowid ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.AccountID, &t.Type, &t.Amount, &t.Category, &t.Date, &t.Note)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}
