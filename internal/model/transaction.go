package model

import "time"

// Transaction types. Amount stores a non-negative magnitude; the sign of the
// balance effect is implied by the type. Transfer has no balance effect.
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

// Transaction represents one dated income/expense/transfer event.
// AccountID is a weak reference: the referenced account may have been deleted,
// in which case the transaction is orphaned and renders a fallback label.
// Transactions are immutable once created.
type Transaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	AccountID string    `json:"accountId"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"` // calendar date, YYYY-MM-DD
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// OrphanedAccountLabel is rendered for transactions whose account was deleted.
const OrphanedAccountLabel = "未知帳戶"

// TransactionResponse is a transaction enriched with the display name of its
// referenced account for API responses. AccountName falls back to
// OrphanedAccountLabel when the account no longer exists.
type TransactionResponse struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"accountId"`
	AccountName string  `json:"accountName"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Note        string  `json:"note"`
}

// ValidTransactionType reports whether t is one of the known transaction types.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}
