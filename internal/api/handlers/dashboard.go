package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/service"
)

// DashboardHandler handles HTTP requests for the aggregated dashboard views.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles GET requests for the dashboard summary.
//
// Endpoint: GET /api/dashboard/summary
// Response: 200 OK with DashboardSummary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	summary, err := h.dashboardService.Summary(r.Context(), userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute dashboard summary", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Cashflow handles GET requests for the monthly income/expense series.
//
// Endpoint: GET /api/dashboard/cashflow
// Response: 200 OK with array of MonthlyCashflow ordered by month ascending
func (h *DashboardHandler) Cashflow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	series, err := h.dashboardService.Cashflow(r.Context(), userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute cashflow series", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, series)
}

// Stream handles GET requests for a server-sent event stream of dashboard
// summaries. The current summary is sent immediately; a new event follows
// every data change until the client disconnects.
//
// Endpoint: GET /api/dashboard/stream
// Response: text/event-stream of "summary" events carrying DashboardSummary JSON
func (h *DashboardHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.RespondError(w, http.StatusInternalServerError, "streaming unsupported", nil)
		return
	}

	userID := middleware.UserID(r.Context())

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for summary := range h.dashboardService.Watch(r.Context(), userID) {
		payload, err := json.Marshal(summary)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "event: summary\ndata: %s\n\n", payload)
		flusher.Flush()
	}
}
