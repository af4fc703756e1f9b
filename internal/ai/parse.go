package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractPriceMap scans free-form model output for the first JSON object
// substring (from the first "{" to the last "}") and parses it as a mapping
// from symbol to numeric price. Entries whose value is not a number are
// dropped rather than failing the whole parse. Markdown code fences and any
// surrounding prose are tolerated.
func ExtractPriceMap(text string) (map[string]float64, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON object in response: %w", err)
	}

	prices := make(map[string]float64, len(raw))
	for symbol, value := range raw {
		var price float64
		if err := json.Unmarshal(value, &price); err != nil {
			// Non-numeric value; leave this symbol untouched.
			continue
		}
		prices[symbol] = price
	}

	return prices, nil
}
