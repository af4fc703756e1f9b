package request

type CreateAccountRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// UpdateAccountRequest is a full replace of the account's mutable fields,
// matching the store's upsert-by-id primitive.
type UpdateAccountRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}
