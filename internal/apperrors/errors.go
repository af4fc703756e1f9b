package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that no user matches the given identifier or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrStockNotFound indicates that a stock holding with the given ID does not exist.
	ErrStockNotFound = errors.New("stock holding not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSettingNotFound indicates that a system setting key has not been configured.
	ErrSettingNotFound = errors.New("setting not found")
)

// Authentication errors are the only failure class meant to reach and
// interrupt the user; they are surfaced verbatim by the API layer.
var (
	// ErrInvalidCredentials indicates a failed email/password combination.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates registration with an already-registered email.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrWeakPassword indicates a password below the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrInvalidToken indicates a missing, malformed or expired session token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidAccountType indicates an account type outside the known set.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidTransactionType indicates a transaction type outside the known set.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidDate indicates a date that is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveAccounts     = errors.New("failed to retrieve accounts")
	ErrFailedToRetrieveStocks       = errors.New("failed to retrieve stock holdings")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToGetDashboardSummary  = errors.New("failed to get dashboard summary")
	ErrFailedToGetCashflow          = errors.New("failed to get monthly cashflow")
	ErrFailedToRefreshPrices        = errors.New("failed to refresh stock prices")
	ErrFailedToRetrieveSettings     = errors.New("failed to retrieve settings")
)
