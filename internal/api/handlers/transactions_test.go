package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wealthflow/wealthflow-backend/internal/api/handlers"
	"github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/testutil"
)

// TestTransactionHandler_CreateTransaction tests the POST /api/transaction endpoint.
//
// WHY: This endpoint carries the ledger rule. The contract is that a valid
// posting always succeeds with 201, even when the referenced account no longer
// exists.
func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("posts a transaction and returns 201", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		user := testutil.CreateUser(t, db)
		account := testutil.NewAccount(user.ID).Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction/", request.CreateTransactionRequest{
			AccountID: account.ID,
			Type:      model.TransactionTypeExpense,
			Amount:    120,
			Category:  "飲食",
			Date:      "2024-01-15",
			Note:      "午餐",
		})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		// Execute
		handler.CreateTransaction(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Transaction
		testutil.DecodeJSON(t, w, &response)
		if response.ID == "" {
			t.Error("Expected a generated transaction ID")
		}
		if response.Amount != 120 || response.Category != "飲食" {
			t.Errorf("Unexpected transaction: %+v", response)
		}
	})

	t.Run("posts against a deleted account and still returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		user := testutil.CreateUser(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction/", request.CreateTransactionRequest{
			AccountID: testutil.MakeID(),
			Type:      model.TransactionTypeExpense,
			Amount:    100,
			Category:  "飲食",
			Date:      "2024-01-15",
		})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201 for dangling account, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects a negative amount with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		user := testutil.CreateUser(t, db)
		account := testutil.NewAccount(user.ID).Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction/", request.CreateTransactionRequest{
			AccountID: account.ID,
			Type:      model.TransactionTypeExpense,
			Amount:    -50,
			Category:  "飲食",
			Date:      "2024-01-15",
		})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects an unknown transaction type with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		user := testutil.CreateUser(t, db)
		account := testutil.NewAccount(user.ID).Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction/", request.CreateTransactionRequest{
			AccountID: account.ID,
			Type:      "refund",
			Amount:    50,
			Date:      "2024-01-15",
		})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects a malformed date with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		user := testutil.CreateUser(t, db)
		account := testutil.NewAccount(user.ID).Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction/", request.CreateTransactionRequest{
			AccountID: account.ID,
			Type:      model.TransactionTypeExpense,
			Amount:    50,
			Date:      "15/01/2024",
		})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestTransactionHandler_Transactions tests the GET /api/transaction endpoint.
func TestTransactionHandler_Transactions(t *testing.T) {
	t.Run("returns 200 with enriched transactions, newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		user := testutil.CreateUser(t, db)
		account := testutil.CreateAccount(t, db, user.ID, "現金")

		testutil.NewTransaction(user.ID, account.ID).WithDate("2024-01-01").Build(t, db)
		testutil.NewTransaction(user.ID, account.ID).WithDate("2024-02-01").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction/", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.Transactions(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.TransactionResponse
		testutil.DecodeJSON(t, w, &response)
		if len(response) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(response))
		}
		if response[0].Date != "2024-02-01" {
			t.Errorf("Expected newest first, got %s", response[0].Date)
		}
		if response[0].AccountName != "現金" {
			t.Errorf("Expected account name 現金, got %s", response[0].AccountName)
		}
	})
}
