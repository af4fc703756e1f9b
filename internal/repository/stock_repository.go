package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// StockRepository provides data access methods for the stock_holding table.
// All queries are scoped by user ID.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new StockRepository with the provided database connection.
func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

// GetStocks retrieves all stock holdings owned by the given user.
func (r *StockRepository) GetStocks(userID string) ([]model.StockHolding, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, symbol, name, shares, avg_price, current_price, last_updated
		FROM stock_holding
		WHERE user_id = ?
		ORDER BY symbol ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_holding table: %w", err)
	}
	defer rows.Close()

	stocks := []model.StockHolding{}
	for rows.Next() {
		var s model.StockHolding
		var lastUpdatedStr string

		err := rows.Scan(&s.ID, &s.UserID, &s.Symbol, &s.Name, &s.Shares, &s.AvgPrice, &s.CurrentPrice, &lastUpdatedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock_holding table results: %w", err)
		}

		s.LastUpdated, err = ParseTime(lastUpdatedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last_updated: %w", err)
		}

		stocks = append(stocks, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_holding table: %w", err)
	}

	return stocks, nil
}

// CreateStock inserts a new stock holding row.
func (r *StockRepository) CreateStock(stock model.StockHolding) error {
	_, err := r.db.Exec(`
		INSERT INTO stock_holding (id, user_id, symbol, name, shares, avg_price, current_price, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, stock.ID, stock.UserID, stock.Symbol, stock.Name, stock.Shares, stock.AvgPrice,
		stock.CurrentPrice, stock.LastUpdated.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to insert stock holding: %w", err)
	}

	return nil
}

// DeleteStock removes a stock holding.
// Returns apperrors.ErrStockNotFound when no holding matches.
func (r *StockRepository) DeleteStock(userID, stockID string) error {
	result, err := r.db.Exec(`
		DELETE FROM stock_holding
		WHERE id = ? AND user_id = ?
	`, stockID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete stock holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}

// ReplaceHoldings writes the price and timestamp fields of a batch of holdings
// in one database transaction, so readers observe either all updates or none.
// This is the store's batched-write primitive used by the price-refresh flow.
func (r *StockRepository) ReplaceHoldings(userID string, holdings []model.StockHolding) error {
	if len(holdings) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	stmt, err := tx.Prepare(`
		UPDATE stock_holding
		SET current_price = ?, last_updated = ?
		WHERE id = ? AND user_id = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare holding update: %w", err)
	}
	defer stmt.Close()

	for _, h := range holdings {
		_, err := stmt.Exec(h.CurrentPrice, h.LastUpdated.UTC().Format("2006-01-02 15:04:05"), h.ID, userID)
		if err != nil {
			return fmt.Errorf("failed to update holding %s: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holding updates: %w", err)
	}

	return nil
}
