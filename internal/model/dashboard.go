package model

// DashboardSummary represents the aggregated dashboard figures derived from
// the accounts, stocks and transactions collections. All values are nominal
// sums: mixed currencies are summed without conversion (documented
// limitation).
type DashboardSummary struct {
	TotalAssets       float64            `json:"totalAssets"`
	TotalCashBalance  float64            `json:"totalCashBalance"`
	StockMarketValue  float64            `json:"stockMarketValue"`
	StockCost         float64            `json:"stockCost"`
	UnrealizedPL      float64            `json:"unrealizedPL"`
	ExpenseByCategory map[string]float64 `json:"expenseByCategory"`
}

// MonthlyCashflow represents income and expense totals for one calendar month.
// Month is a zero-padded YYYY-MM key.
type MonthlyCashflow struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// HoldingMetrics represents per-holding display figures derived from a
// StockHolding.
type HoldingMetrics struct {
	MarketValue   float64 `json:"marketValue"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profitPercent"`
}
