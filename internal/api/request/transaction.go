package request

type CreateTransactionRequest struct {
	AccountID string  `json:"accountId"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Note      string  `json:"note"`
}
