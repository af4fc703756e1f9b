package model

import "time"

// StockHolding represents a position in one tradable security.
// Symbol is case-normalized to uppercase on entry (e.g. "2330.TW", "AAPL").
// CurrentPrice and LastUpdated are mutated in bulk by the price-refresh flow.
type StockHolding struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	Shares       float64   `json:"shares"`
	AvgPrice     float64   `json:"avgPrice"`
	CurrentPrice float64   `json:"currentPrice"`
	LastUpdated  time.Time `json:"lastUpdated"`
}
