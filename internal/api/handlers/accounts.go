package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/service"
	"github.com/wealthflow/wealthflow-backend/internal/validation"
)

// AccountHandler handles HTTP requests for account endpoints.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependency.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Accounts handles GET requests to retrieve all accounts for the user.
//
// Endpoint: GET /api/account
// Response: 200 OK with array of Account
func (h *AccountHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	accounts, err := h.accountService.GetAccounts(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAccounts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, accounts)
}

// CreateAccount handles POST requests to create a new account.
//
// Endpoint: POST /api/account
// Response: 201 Created with Account
// Error: 400 Bad Request on validation failure
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	req, err := parseJSON[request.CreateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), userID, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, account)
}

// UpdateAccount handles PUT requests to fully replace an account's fields.
//
// Endpoint: PUT /api/account/{uuid}
// Response: 200 OK with the updated Account
// Error: 400 Bad Request on validation failure
// Error: 404 Not Found if the account does not exist
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	accountID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(r.Context(), userID, accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// DeleteAccount handles DELETE requests to remove an account. Transactions
// referencing the account are left in place and render a fallback label.
//
// Endpoint: DELETE /api/account/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the account does not exist
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	accountID := chi.URLParam(r, "uuid")

	err := h.accountService.DeleteAccount(r.Context(), userID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
