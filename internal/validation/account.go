package validation

import (
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// ValidateCreateAccount checks the create-account request fields.
func ValidateCreateAccount(req request.CreateAccountRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !model.ValidAccountType(req.Type) {
		return fmt.Errorf("type must be one of bank, cash, investment, credit")
	}
	if strings.TrimSpace(req.Currency) == "" {
		return fmt.Errorf("currency is required")
	}
	return nil
}

// ValidateUpdateAccount checks the update-account request fields. Updates are
// full replaces, so the same rules apply as on create.
func ValidateUpdateAccount(req request.UpdateAccountRequest) error {
	return ValidateCreateAccount(request.CreateAccountRequest(req))
}
