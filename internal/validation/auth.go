package validation

import (
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/api/request"
)

// ValidateRegister checks the registration request fields.
func ValidateRegister(req request.RegisterRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("email is not a valid address")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return fmt.Errorf("displayName is required")
	}
	return nil
}

// ValidateLogin checks the login request fields.
func ValidateLogin(req request.LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
