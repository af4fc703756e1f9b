package request

type UpdateGeminiKeyRequest struct {
	APIKey string `json:"apiKey"`
}
