package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// MakeID generates a fresh UUID string for test records.
func MakeID() string {
	return uuid.New().String()
}

// MakeEmail generates a unique email address with the given prefix.
func MakeEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, rand.Intn(1_000_000))
}

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	user := testutil.NewUser().Build(t, db)
//
//	user := testutil.NewUser().
//	    WithEmail("alice@example.com").
//	    WithDisplayName("Alice").
//	    Build(t, db)
type UserBuilder struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		ID:           MakeID(),
		Email:        MakeEmail("user"),
		DisplayName:  "Test User",
		PasswordHash: "not-a-real-hash",
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// WithDisplayName sets a custom display name.
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.DisplayName = name
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO user (id, email, display_name, password_hash)
		VALUES (?, ?, ?, ?)
	`, b.ID, b.Email, b.DisplayName, b.PasswordHash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:           b.ID,
		Email:        b.Email,
		DisplayName:  b.DisplayName,
		PasswordHash: b.PasswordHash,
	}
}

// AccountBuilder provides a fluent interface for creating test accounts.
type AccountBuilder struct {
	ID       string
	UserID   string
	Name     string
	Type     string
	Balance  float64
	Currency string
}

// NewAccount creates an AccountBuilder with sensible defaults for the given
// owner.
func NewAccount(userID string) *AccountBuilder {
	return &AccountBuilder{
		ID:       MakeID(),
		UserID:   userID,
		Name:     "Test Account",
		Type:     model.AccountTypeCash,
		Balance:  0,
		Currency: "TWD",
	}
}

// WithID sets a custom ID.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

// WithType sets a custom account type.
func (b *AccountBuilder) WithType(accountType string) *AccountBuilder {
	b.Type = accountType
	return b
}

// WithBalance sets a custom starting balance.
func (b *AccountBuilder) WithBalance(balance float64) *AccountBuilder {
	b.Balance = balance
	return b
}

// WithCurrency sets a custom currency code.
func (b *AccountBuilder) WithCurrency(currency string) *AccountBuilder {
	b.Currency = currency
	return b
}

// Build creates the account in the database and returns it.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) model.Account {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO account (id, user_id, name, type, balance, currency)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID, b.UserID, b.Name, b.Type, b.Balance, b.Currency)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return model.Account{
		ID:       b.ID,
		UserID:   b.UserID,
		Name:     b.Name,
		Type:     b.Type,
		Balance:  b.Balance,
		Currency: b.Currency,
	}
}

// StockBuilder provides a fluent interface for creating test stock holdings.
type StockBuilder struct {
	ID           string
	UserID       string
	Symbol       string
	Name         string
	Shares       float64
	AvgPrice     float64
	CurrentPrice float64
	LastUpdated  time.Time
}

// NewStock creates a StockBuilder with sensible defaults for the given owner.
func NewStock(userID string) *StockBuilder {
	return &StockBuilder{
		ID:           MakeID(),
		UserID:       userID,
		Symbol:       "AAPL",
		Name:         "Apple Inc.",
		Shares:       10,
		AvgPrice:     100,
		CurrentPrice: 100,
		LastUpdated:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *StockBuilder) WithID(id string) *StockBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom ticker symbol.
func (b *StockBuilder) WithSymbol(symbol string) *StockBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom display name.
func (b *StockBuilder) WithName(name string) *StockBuilder {
	b.Name = name
	return b
}

// WithShares sets a custom share count.
func (b *StockBuilder) WithShares(shares float64) *StockBuilder {
	b.Shares = shares
	return b
}

// WithAvgPrice sets a custom average purchase price.
func (b *StockBuilder) WithAvgPrice(price float64) *StockBuilder {
	b.AvgPrice = price
	return b
}

// WithCurrentPrice sets a custom current market price.
func (b *StockBuilder) WithCurrentPrice(price float64) *StockBuilder {
	b.CurrentPrice = price
	return b
}

// Build creates the holding in the database and returns it.
func (b *StockBuilder) Build(t *testing.T, db *sql.DB) model.StockHolding {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO stock_holding (id, user_id, symbol, name, shares, avg_price, current_price, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.UserID, b.Symbol, b.Name, b.Shares, b.AvgPrice, b.CurrentPrice, b.LastUpdated.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test stock holding: %v", err)
	}

	return model.StockHolding{
		ID:           b.ID,
		UserID:       b.UserID,
		Symbol:       b.Symbol,
		Name:         b.Name,
		Shares:       b.Shares,
		AvgPrice:     b.AvgPrice,
		CurrentPrice: b.CurrentPrice,
		LastUpdated:  b.LastUpdated,
	}
}

// TransactionBuilder provides a fluent interface for creating test
// transactions. Build writes the row directly, without touching the
// referenced account's balance.
type TransactionBuilder struct {
	ID        string
	UserID    string
	AccountID string
	Type      string
	Amount    float64
	Category  string
	Date      string
	Note      string
}

// NewTransaction creates a TransactionBuilder with sensible defaults for the
// given owner and account.
func NewTransaction(userID, accountID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		UserID:    userID,
		AccountID: accountID,
		Type:      model.TransactionTypeExpense,
		Amount:    100,
		Category:  model.DefaultCategory(model.TransactionTypeExpense),
		Date:      "2024-01-15",
		Note:      "",
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithType sets a custom transaction type.
func (b *TransactionBuilder) WithType(transactionType string) *TransactionBuilder {
	b.Type = transactionType
	return b
}

// WithAmount sets a custom amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithCategory sets a custom category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// WithDate sets a custom date (YYYY-MM-DD).
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithNote sets a custom note.
func (b *TransactionBuilder) WithNote(note string) *TransactionBuilder {
	b.Note = note
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO "transaction" (id, user_id, account_id, type, amount, category, date, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.UserID, b.AccountID, b.Type, b.Amount, b.Category, b.Date, b.Note)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:        b.ID,
		UserID:    b.UserID,
		AccountID: b.AccountID,
		Type:      b.Type,
		Amount:    b.Amount,
		Category:  b.Category,
		Date:      b.Date,
		Note:      b.Note,
	}
}

// Convenience functions

// CreateUser creates a user with a unique email and default values.
func CreateUser(t *testing.T, db *sql.DB) model.User {
	t.Helper()
	return NewUser().Build(t, db)
}

// CreateAccount creates an account with the given name and default values.
func CreateAccount(t *testing.T, db *sql.DB, userID, name string) model.Account {
	t.Helper()
	return NewAccount(userID).WithName(name).Build(t, db)
}
