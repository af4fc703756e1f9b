package service_test

import (
	"math"
	"testing"

	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/service"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestTotalCashBalance tests account balance summation.
func TestTotalCashBalance(t *testing.T) {
	t.Run("returns zero for no accounts", func(t *testing.T) {
		if got := service.TotalCashBalance(nil); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})

	t.Run("sums balances including negatives", func(t *testing.T) {
		accounts := []model.Account{
			{Balance: 1000},
			{Balance: -250.5},
			{Balance: 49.5},
		}

		if got := service.TotalCashBalance(accounts); !almostEqual(got, 799) {
			t.Errorf("Expected 799, got %v", got)
		}
	})

	t.Run("is independent of account order", func(t *testing.T) {
		a := []model.Account{{Balance: 1}, {Balance: 2}, {Balance: 3}}
		b := []model.Account{{Balance: 3}, {Balance: 1}, {Balance: 2}}

		if !almostEqual(service.TotalCashBalance(a), service.TotalCashBalance(b)) {
			t.Error("Total changed when account order changed")
		}
	})
}

// TestStockValuation tests market value, cost basis and the profit identity
// between them.
//
// WHY: The dashboard's unrealized P/L must always equal market value minus
// cost. Computing the three figures independently makes it possible for them
// to drift apart.
func TestStockValuation(t *testing.T) {
	stocks := []model.StockHolding{
		{Symbol: "AAPL", Shares: 10, AvgPrice: 150, CurrentPrice: 170},
		{Symbol: "2330.TW", Shares: 100, AvgPrice: 500, CurrentPrice: 480},
	}

	t.Run("computes market value", func(t *testing.T) {
		// 10*170 + 100*480 = 49700
		if got := service.StockMarketValue(stocks); !almostEqual(got, 49700) {
			t.Errorf("Expected 49700, got %v", got)
		}
	})

	t.Run("computes cost basis", func(t *testing.T) {
		// 10*150 + 100*500 = 51500
		if got := service.StockCost(stocks); !almostEqual(got, 51500) {
			t.Errorf("Expected 51500, got %v", got)
		}
	})

	t.Run("unrealized P/L equals value minus cost", func(t *testing.T) {
		summary := service.Summarize(nil, stocks, nil)

		want := summary.StockMarketValue - summary.StockCost
		if !almostEqual(summary.UnrealizedPL, want) {
			t.Errorf("Expected UnrealizedPL %v, got %v", want, summary.UnrealizedPL)
		}
		if !almostEqual(summary.UnrealizedPL, -1800) {
			t.Errorf("Expected UnrealizedPL -1800, got %v", summary.UnrealizedPL)
		}
	})
}

// TestCalculateHoldingMetrics tests per-holding derived figures.
func TestCalculateHoldingMetrics(t *testing.T) {
	t.Run("computes profit and percentage", func(t *testing.T) {
		metrics := service.CalculateHoldingMetrics(model.StockHolding{
			Shares:       10,
			AvgPrice:     100,
			CurrentPrice: 120,
		})

		if !almostEqual(metrics.MarketValue, 1200) {
			t.Errorf("Expected market value 1200, got %v", metrics.MarketValue)
		}
		if !almostEqual(metrics.Profit, 200) {
			t.Errorf("Expected profit 200, got %v", metrics.Profit)
		}
		if !almostEqual(metrics.ProfitPercent, 20) {
			t.Errorf("Expected profit percent 20, got %v", metrics.ProfitPercent)
		}
	})

	t.Run("zero cost basis yields exactly zero percent", func(t *testing.T) {
		cases := []model.StockHolding{
			{Shares: 0, AvgPrice: 100, CurrentPrice: 120},
			{Shares: 10, AvgPrice: 0, CurrentPrice: 120},
		}

		for _, s := range cases {
			metrics := service.CalculateHoldingMetrics(s)
			if metrics.ProfitPercent != 0 {
				t.Errorf("Expected profit percent 0 for zero cost, got %v", metrics.ProfitPercent)
			}
			if math.IsNaN(metrics.ProfitPercent) || math.IsInf(metrics.ProfitPercent, 0) {
				t.Errorf("Profit percent must be finite, got %v", metrics.ProfitPercent)
			}
		}
	})
}

// TestExpenseByCategory tests expense grouping.
func TestExpenseByCategory(t *testing.T) {
	t.Run("groups expenses and ignores other types", func(t *testing.T) {
		transactions := []model.Transaction{
			{Type: model.TransactionTypeExpense, Category: "飲食", Amount: 120},
			{Type: model.TransactionTypeExpense, Category: "飲食", Amount: 80},
			{Type: model.TransactionTypeExpense, Category: "交通", Amount: 60},
			{Type: model.TransactionTypeIncome, Category: "薪資", Amount: 50000},
			{Type: model.TransactionTypeTransfer, Category: "轉帳", Amount: 999},
		}

		byCategory := service.ExpenseByCategory(transactions)

		if len(byCategory) != 2 {
			t.Fatalf("Expected 2 categories, got %d: %v", len(byCategory), byCategory)
		}
		if !almostEqual(byCategory["飲食"], 200) {
			t.Errorf("Expected 飲食 total 200, got %v", byCategory["飲食"])
		}
		if !almostEqual(byCategory["交通"], 60) {
			t.Errorf("Expected 交通 total 60, got %v", byCategory["交通"])
		}
	})

	t.Run("is independent of transaction order", func(t *testing.T) {
		forward := []model.Transaction{
			{Type: model.TransactionTypeExpense, Category: "飲食", Amount: 120},
			{Type: model.TransactionTypeExpense, Category: "交通", Amount: 60},
			{Type: model.TransactionTypeExpense, Category: "飲食", Amount: 80},
		}
		reversed := []model.Transaction{forward[2], forward[1], forward[0]}

		a := service.ExpenseByCategory(forward)
		b := service.ExpenseByCategory(reversed)

		for category, total := range a {
			if !almostEqual(b[category], total) {
				t.Errorf("Category %s total changed with order: %v vs %v", category, total, b[category])
			}
		}
	})
}

// TestMonthlyCashflowSeries tests the per-month income/expense grouping.
//
// WHY: The cashflow chart relies on months arriving pre-sorted; lexicographic
// order is only correct because month keys are zero padded.
func TestMonthlyCashflowSeries(t *testing.T) {
	t.Run("groups by month and orders ascending", func(t *testing.T) {
		transactions := []model.Transaction{
			{Type: model.TransactionTypeExpense, Date: "2023-11-05", Amount: 300},
			{Type: model.TransactionTypeIncome, Date: "2023-10-01", Amount: 1000},
			{Type: model.TransactionTypeExpense, Date: "2023-10-15", Amount: 200},
			{Type: model.TransactionTypeIncome, Date: "2023-11-01", Amount: 1000},
			{Type: model.TransactionTypeTransfer, Date: "2023-10-20", Amount: 500},
		}

		series := service.MonthlyCashflowSeries(transactions)

		if len(series) != 2 {
			t.Fatalf("Expected 2 months, got %d: %v", len(series), series)
		}

		if series[0].Month != "2023-10" || series[1].Month != "2023-11" {
			t.Fatalf("Expected months [2023-10 2023-11], got [%s %s]", series[0].Month, series[1].Month)
		}

		if !almostEqual(series[0].Income, 1000) || !almostEqual(series[0].Expense, 200) {
			t.Errorf("2023-10: expected income 1000 expense 200, got %v/%v", series[0].Income, series[0].Expense)
		}
		if !almostEqual(series[1].Income, 1000) || !almostEqual(series[1].Expense, 300) {
			t.Errorf("2023-11: expected income 1000 expense 300, got %v/%v", series[1].Income, series[1].Expense)
		}
	})

	t.Run("December sorts before January of the next year", func(t *testing.T) {
		series := service.MonthlyCashflowSeries([]model.Transaction{
			{Type: model.TransactionTypeIncome, Date: "2024-01-01", Amount: 1},
			{Type: model.TransactionTypeIncome, Date: "2023-12-01", Amount: 1},
		})

		if len(series) != 2 || series[0].Month != "2023-12" || series[1].Month != "2024-01" {
			t.Errorf("Expected [2023-12 2024-01], got %v", series)
		}
	})

	t.Run("skips malformed dates", func(t *testing.T) {
		series := service.MonthlyCashflowSeries([]model.Transaction{
			{Type: model.TransactionTypeIncome, Date: "bad", Amount: 1},
		})

		if len(series) != 0 {
			t.Errorf("Expected empty series, got %v", series)
		}
	})
}

// TestSummarize tests the composed dashboard summary.
func TestSummarize(t *testing.T) {
	accounts := []model.Account{{Balance: 5000}, {Balance: 3000}}
	stocks := []model.StockHolding{{Shares: 10, AvgPrice: 100, CurrentPrice: 110}}
	transactions := []model.Transaction{
		{Type: model.TransactionTypeExpense, Category: "飲食", Amount: 200},
	}

	summary := service.Summarize(accounts, stocks, transactions)

	if !almostEqual(summary.TotalCashBalance, 8000) {
		t.Errorf("Expected cash 8000, got %v", summary.TotalCashBalance)
	}
	if !almostEqual(summary.StockMarketValue, 1100) {
		t.Errorf("Expected market value 1100, got %v", summary.StockMarketValue)
	}
	if !almostEqual(summary.TotalAssets, 9100) {
		t.Errorf("Expected total assets 9100, got %v", summary.TotalAssets)
	}
	if !almostEqual(summary.UnrealizedPL, 100) {
		t.Errorf("Expected unrealized P/L 100, got %v", summary.UnrealizedPL)
	}
	if !almostEqual(summary.ExpenseByCategory["飲食"], 200) {
		t.Errorf("Expected 飲食 200, got %v", summary.ExpenseByCategory["飲食"])
	}
}
