package handlers

import (
	"net/http"

	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// CategoryHandler serves the fixed category taxonomy.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// Categories handles GET requests for the category taxonomy, keyed by
// transaction type. Each list is ordered; the first entry is the default
// category for new records of that type.
//
// Endpoint: GET /api/categories
// Response: 200 OK with map of type to ordered category list
func (h *CategoryHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, model.AllCategories())
}
