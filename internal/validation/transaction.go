package validation

import (
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// ValidateCreateTransaction checks the create-transaction request fields.
// The category is not checked against the taxonomy: the taxonomy is a UI
// affordance, any string is structurally valid. The account reference is not
// checked for existence either; a dangling reference is a defined no-op, not
// a validation failure.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	if strings.TrimSpace(req.AccountID) == "" {
		return fmt.Errorf("accountId is required")
	}
	if !model.ValidTransactionType(req.Type) {
		return fmt.Errorf("type must be one of income, expense, transfer")
	}
	if req.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	if err := ValidateDate(req.Date); err != nil {
		return err
	}
	return nil
}
