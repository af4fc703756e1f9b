package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// AccountRepository provides data access methods for the account table.
// All queries are scoped by user ID; cross-user access is impossible at this
// layer.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccounts retrieves all accounts owned by the given user, ordered by
// creation time.
func (r *AccountRepository) GetAccounts(userID string) ([]model.Account, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, name, type, balance, currency
		FROM account
		WHERE user_id = ?
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan account table results: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account table: %w", err)
	}

	return accounts, nil
}

// GetAccount retrieves a single account by ID, scoped to the given user.
// Returns apperrors.ErrAccountNotFound when no account matches.
func (r *AccountRepository) GetAccount(userID, accountID string) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRow(`
		SELECT id, user_id, name, type, balance, currency
		FROM account
		WHERE id = ? AND user_id = ?
	`, accountID, userID).Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.Currency)
	if err == sql.ErrNoRows {
		return model.Account{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to query account table: %w", err)
	}

	return a, nil
}

// CreateAccount inserts a new account row.
func (r *AccountRepository) CreateAccount(account model.Account) error {
	_, err := r.db.Exec(`
		INSERT INTO account (id, user_id, name, type, balance, currency)
		VALUES (?, ?, ?, ?, ?, ?)
	`, account.ID, account.UserID, account.Name, account.Type, account.Balance, account.Currency)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// UpdateAccount replaces the mutable fields of an account (full replace, as
// the store's upsert-by-id primitive). Returns apperrors.ErrAccountNotFound
// when the account does not exist for the user.
func (r *AccountRepository) UpdateAccount(account model.Account) error {
	result, err := r.db.Exec(`
		UPDATE account
		SET name = ?, type = ?, balance = ?, currency = ?
		WHERE id = ? AND user_id = ?
	`, account.Name, account.Type, account.Balance, account.Currency, account.ID, account.UserID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes an account. Transactions referencing it are left in
// place and become orphaned; they render a fallback label at display time.
// Returns apperrors.ErrAccountNotFound when the account does not exist.
func (r *AccountRepository) DeleteAccount(userID, accountID string) error {
	result, err := r.db.Exec(`
		DELETE FROM account
		WHERE id = ? AND user_id = ?
	`, accountID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}
