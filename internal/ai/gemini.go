// Package ai implements the best-effort stock price refresh adapter backed by
// the Gemini API. The adapter is deliberately narrow: raw symbol list in,
// validated price map out. Its unreliability (free-text responses, missing
// keys, network failures) never propagates past the caller's fallback to the
// unmodified holdings.
package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Client defines the interface for fetching market prices for ticker symbols.
// This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	FetchPrices(ctx context.Context, apiKey string, symbols []string) (map[string]float64, error)
}

// GeminiClient fetches current market prices by asking a Gemini model to look
// them up and return a JSON object of symbol to numeric price.
type GeminiClient struct {
	model string
}

// NewGeminiClient creates a new Gemini price client for the given model name
// (e.g. "gemini-2.5-flash").
func NewGeminiClient(model string) *GeminiClient {
	return &GeminiClient{model: model}
}

// FetchPrices asks the model for current prices of the given symbols and
// parses a symbol-to-price map out of the free-text response. Symbols the
// model omits, or returns with non-numeric values, are absent from the result.
func (c *GeminiClient) FetchPrices(ctx context.Context, apiKey string, symbols []string) (map[string]float64, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}
	if len(symbols) == 0 {
		return map[string]float64{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPricePrompt(symbols)},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	prices, err := ExtractPriceMap(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price map: %w", err)
	}

	return prices, nil
}

// buildPricePrompt constructs the lookup prompt. The model is told to answer
// with a strict JSON object and to omit symbols it cannot find.
func buildPricePrompt(symbols []string) string {
	var b strings.Builder
	b.WriteString("I need the current stock market price for the following symbols: ")
	b.WriteString(strings.Join(symbols, ", "))
	b.WriteString(".\nPlease search for the latest price for each.\n\n")
	b.WriteString("IMPORTANT: Return the output strictly as a JSON object where the keys are the stock symbols ")
	b.WriteString("and the values are the numeric prices (numbers only, no currency symbols).\n")
	b.WriteString("Example format:\n")
	b.WriteString("{\n  \"2330.TW\": 950.5,\n  \"AAPL\": 185.2\n}\n")
	b.WriteString("If you cannot find a specific stock, do not include it in the JSON.\n")
	return b.String()
}
