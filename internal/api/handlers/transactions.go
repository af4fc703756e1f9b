package handlers

import (
	"net/http"

	"github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/service"
	"github.com/wealthflow/wealthflow-backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// Transactions are immutable: only list and create are exposed.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET requests to retrieve all transactions for the
// user, ordered by date descending. Orphaned account references carry a
// fallback account name.
//
// Endpoint: GET /api/transaction
// Response: 200 OK with array of TransactionResponse
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	transactions, err := h.transactionService.GetTransactions(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST requests to post a new transaction. The
// referenced account's balance is adjusted by the implied delta; a dangling
// account reference still records the transaction and is not an error.
//
// Endpoint: POST /api/transaction
// Response: 201 Created with Transaction
// Error: 400 Bad Request on validation failure
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), userID, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}
