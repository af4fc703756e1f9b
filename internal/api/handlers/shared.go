package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// parseJSON decodes the request body into a value of type T.
// Unknown fields are rejected so client typos surface as 400s instead of
// silently dropped data.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}

	return v, nil
}
