package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/service"
	"github.com/wealthflow/wealthflow-backend/internal/validation"
)

// StockHandler handles HTTP requests for stock holding endpoints.
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new StockHandler with the provided service dependency.
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// StockResponse is a holding together with its derived display figures.
type StockResponse struct {
	model.StockHolding
	model.HoldingMetrics
}

// Stocks handles GET requests to retrieve all holdings with per-holding
// metrics (market value, profit, profit percentage).
//
// Endpoint: GET /api/stock
// Response: 200 OK with array of StockResponse
func (h *StockHandler) Stocks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	stocks, err := h.stockService.GetStocks(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStocks.Error(), err.Error())
		return
	}

	resp := make([]StockResponse, len(stocks))
	for i, s := range stocks {
		resp[i] = StockResponse{
			StockHolding:   s,
			HoldingMetrics: service.CalculateHoldingMetrics(s),
		}
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// CreateStock handles POST requests to add a holding.
//
// Endpoint: POST /api/stock
// Response: 201 Created with StockHolding
// Error: 400 Bad Request on validation failure
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	req, err := parseJSON[request.CreateStockRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateStock(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	stock, err := h.stockService.CreateStock(r.Context(), userID, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create stock holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, stock)
}

// DeleteStock handles DELETE requests to remove a holding.
//
// Endpoint: DELETE /api/stock/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the holding does not exist
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	stockID := chi.URLParam(r, "uuid")

	err := h.stockService.DeleteStock(r.Context(), userID, stockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockNotFound.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete stock holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// RefreshPrices handles POST requests to refresh holding prices via the AI
// adapter. The refresh is best-effort: adapter failures leave the holdings
// unchanged and still return 200 with the current list.
//
// Endpoint: POST /api/stock/refresh-prices
// Response: 200 OK with array of StockHolding
func (h *StockHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	stocks, err := h.stockService.RefreshPrices(r.Context(), userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshPrices.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stocks)
}
