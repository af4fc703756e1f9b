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

// TestAccountHandler_Accounts tests the GET /api/account endpoint.
func TestAccountHandler_Accounts(t *testing.T) {
	t.Run("returns 200 with the user's accounts only", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAccountHandler(testutil.NewTestAccountService(t, db))
		user := testutil.CreateUser(t, db)
		other := testutil.CreateUser(t, db)
		testutil.CreateAccount(t, db, user.ID, "現金")
		testutil.CreateAccount(t, db, other.ID, "別人的帳戶")

		req := httptest.NewRequest(http.MethodGet, "/api/account/", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		// Execute
		handler.Accounts(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Account
		testutil.DecodeJSON(t, w, &response)
		if len(response) != 1 {
			t.Fatalf("Expected 1 account, got %d", len(response))
		}
		if response[0].Name != "現金" {
			t.Errorf("Expected account 現金, got %s", response[0].Name)
		}
	})
}

// TestAccountHandler_CreateAccount tests the POST /api/account endpoint.
func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("creates an account and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAccountHandler(testutil.NewTestAccountService(t, db))
		user := testutil.CreateUser(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/account/", request.CreateAccountRequest{
			Name:     "薪資帳戶",
			Type:     model.AccountTypeBank,
			Balance:  10000,
			Currency: "TWD",
		})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.CreateAccount(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Account
		testutil.DecodeJSON(t, w, &response)
		if response.ID == "" {
			t.Error("Expected a generated account ID")
		}
		if response.Name != "薪資帳戶" || response.Balance != 10000 {
			t.Errorf("Unexpected account: %+v", response)
		}
	})

	t.Run("rejects an invalid account type with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAccountHandler(testutil.NewTestAccountService(t, db))
		user := testutil.CreateUser(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/account/", request.CreateAccountRequest{
			Name:     "壞帳戶",
			Type:     "wallet",
			Currency: "TWD",
		})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.CreateAccount(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestAccountHandler_UpdateAccount tests the PUT /api/account/{uuid} endpoint.
func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Run("replaces account fields and returns 200", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAccountHandler(testutil.NewTestAccountService(t, db))
		user := testutil.CreateUser(t, db)
		account := testutil.NewAccount(user.ID).WithName("舊名字").WithBalance(100).Build(t, db)

		body := request.UpdateAccountRequest{
			Name:     "新名字",
			Type:     model.AccountTypeInvestment,
			Balance:  250,
			Currency: "USD",
		}
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/account/"+account.ID, body)
		req = testutil.WithURLParams(req, map[string]string{"uuid": account.ID})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.UpdateAccount(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Account
		testutil.DecodeJSON(t, w, &response)
		if response.Name != "新名字" || response.Balance != 250 || response.Currency != "USD" {
			t.Errorf("Unexpected updated account: %+v", response)
		}
	})

	t.Run("returns 404 for an unknown account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAccountHandler(testutil.NewTestAccountService(t, db))
		user := testutil.CreateUser(t, db)
		missing := testutil.MakeID()

		body := request.UpdateAccountRequest{
			Name:     "新名字",
			Type:     model.AccountTypeCash,
			Currency: "TWD",
		}
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/account/"+missing, body)
		req = testutil.WithURLParams(req, map[string]string{"uuid": missing})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.UpdateAccount(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestAccountHandler_DeleteAccount tests the DELETE /api/account/{uuid} endpoint.
func TestAccountHandler_DeleteAccount(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAccountHandler(testutil.NewTestAccountService(t, db))
		user := testutil.CreateUser(t, db)
		account := testutil.NewAccount(user.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/account/"+account.ID, map[string]string{"uuid": account.ID})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.DeleteAccount(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 when the account belongs to another user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAccountHandler(testutil.NewTestAccountService(t, db))
		user := testutil.CreateUser(t, db)
		other := testutil.CreateUser(t, db)
		foreign := testutil.NewAccount(other.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/account/"+foreign.ID, map[string]string{"uuid": foreign.ID})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.DeleteAccount(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
