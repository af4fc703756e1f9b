package model

// Account types. Classification only; no behavioral difference between types.
const (
	AccountTypeBank       = "bank"
	AccountTypeCash       = "cash"
	AccountTypeInvestment = "investment"
	AccountTypeCredit     = "credit"
)

// DefaultAccountName is the display name of the single account seeded for
// every newly registered user.
const DefaultAccountName = "預設現金帳戶"

// Account represents one named store of money with a running balance.
// Balance is denormalized: it is maintained incrementally as transactions are
// posted, never derived from transaction history at read time.
type Account struct {
	ID       string  `json:"id"`
	UserID   string  `json:"-"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t string) bool {
	switch t {
	case AccountTypeBank, AccountTypeCash, AccountTypeInvestment, AccountTypeCredit:
		return true
	}
	return false
}
