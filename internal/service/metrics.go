package service

import (
	"sort"

	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// Aggregation functions for the dashboard. All of them are pure: no side
// effects, no I/O, fully deterministic over the in-memory collections they
// receive, and recomputed in full on every input change.

// TotalCashBalance returns the sum of balances over all accounts. Mixed
// currencies are summed nominally; no conversion is applied (documented
// limitation).
func TotalCashBalance(accounts []model.Account) float64 {
	var total float64
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}

// StockMarketValue returns the sum of shares * currentPrice over all holdings.
func StockMarketValue(stocks []model.StockHolding) float64 {
	var total float64
	for _, s := range stocks {
		total += s.Shares * s.CurrentPrice
	}
	return total
}

// StockCost returns the sum of shares * avgPrice over all holdings.
func StockCost(stocks []model.StockHolding) float64 {
	var total float64
	for _, s := range stocks {
		total += s.Shares * s.AvgPrice
	}
	return total
}

// ExpenseByCategory filters transactions to expenses, groups them by category
// and sums the amounts per group. The result is an unordered mapping from
// category label to total; consumers sort or color by index.
func ExpenseByCategory(transactions []model.Transaction) map[string]float64 {
	byCategory := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == model.TransactionTypeExpense {
			byCategory[t.Category] += t.Amount
		}
	}
	return byCategory
}

// MonthlyCashflowSeries groups transactions by the first seven characters of
// their date (the zero-padded YYYY-MM key) and accumulates separate income and
// expense sums per month. The result is ordered by month key ascending;
// lexicographic ordering is correct for zero-padded keys. Transfers affect
// neither sum.
func MonthlyCashflowSeries(transactions []model.Transaction) []model.MonthlyCashflow {
	type flow struct {
		income  float64
		expense float64
	}
	byMonth := make(map[string]*flow)

	for _, t := range transactions {
		if len(t.Date) < 7 {
			continue
		}
		month := t.Date[:7]
		f := byMonth[month]
		if f == nil {
			f = &flow{}
			byMonth[month] = f
		}
		switch t.Type {
		case model.TransactionTypeIncome:
			f.income += t.Amount
		case model.TransactionTypeExpense:
			f.expense += t.Amount
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]model.MonthlyCashflow, len(months))
	for i, m := range months {
		series[i] = model.MonthlyCashflow{
			Month:   m,
			Income:  byMonth[m].income,
			Expense: byMonth[m].expense,
		}
	}
	return series
}

// CalculateHoldingMetrics derives the per-holding display figures. A zero cost
// basis (including zero shares) yields a profit percentage of exactly 0, never
// NaN or an error.
func CalculateHoldingMetrics(s model.StockHolding) model.HoldingMetrics {
	marketValue := s.Shares * s.CurrentPrice
	cost := s.Shares * s.AvgPrice
	profit := marketValue - cost

	profitPercent := 0.0
	if cost != 0 {
		profitPercent = profit / cost * 100
	}

	return model.HoldingMetrics{
		MarketValue:   marketValue,
		Profit:        profit,
		ProfitPercent: profitPercent,
	}
}

// Summarize computes the full dashboard summary from a three-collection
// snapshot.
func Summarize(accounts []model.Account, stocks []model.StockHolding, transactions []model.Transaction) model.DashboardSummary {
	cash := TotalCashBalance(accounts)
	value := StockMarketValue(stocks)
	cost := StockCost(stocks)

	return model.DashboardSummary{
		TotalAssets:       cash + value,
		TotalCashBalance:  cash,
		StockMarketValue:  value,
		StockCost:         cost,
		UnrealizedPL:      value - cost,
		ExpenseByCategory: ExpenseByCategory(transactions),
	}
}
