package validation

import (
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/api/request"
)

// ValidateCreateStock checks the create-stock request fields.
func ValidateCreateStock(req request.CreateStockRequest) error {
	if strings.TrimSpace(req.Symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.Shares < 0 {
		return fmt.Errorf("shares cannot be negative")
	}
	if req.AvgPrice < 0 {
		return fmt.Errorf("avgPrice cannot be negative")
	}
	if req.CurrentPrice < 0 {
		return fmt.Errorf("currentPrice cannot be negative")
	}
	return nil
}
