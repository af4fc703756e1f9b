package testutil

import (
	"context"
)

// MockAIClient is a mock implementation of ai.Client for testing.
// It returns predefined price data instead of making actual API calls.
type MockAIClient struct {
	// MockPrices is the price map to return from FetchPrices
	MockPrices map[string]float64
	// MockError is the error to return from FetchPrices
	MockError error
	// FetchCount tracks how many times FetchPrices was called
	FetchCount int
}

// NewMockAIClient creates a new mock AI client that returns the given prices.
func NewMockAIClient(prices map[string]float64) *MockAIClient {
	return &MockAIClient{
		MockPrices: prices,
	}
}

// FetchPrices returns the configured MockPrices and MockError.
func (m *MockAIClient) FetchPrices(_ context.Context, _ string, _ []string) (map[string]float64, error) {
	m.FetchCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockPrices, nil
}

// WithError configures the mock to return the specified error.
func (m *MockAIClient) WithError(err error) *MockAIClient {
	m.MockError = err
	return m
}
