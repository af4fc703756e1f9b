package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wealthflow/wealthflow-backend/internal/api/handlers"
	"github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/testutil"
)

// TestAuthHandler_Register tests the POST /api/auth/register endpoint.
func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers and returns 201 with token and user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/register", request.RegisterRequest{
			Email:       "alice@example.com",
			Password:    "password123",
			DisplayName: "Alice",
		})
		w := httptest.NewRecorder()

		handler.Register(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.AuthResponse
		testutil.DecodeJSON(t, w, &response)
		if response.Token == "" {
			t.Error("Expected a session token")
		}
		if response.User.Email != "alice@example.com" {
			t.Errorf("Expected email alice@example.com, got %s", response.User.Email)
		}
	})

	t.Run("returns 409 for a duplicate email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)
		handler := handlers.NewAuthHandler(svc)

		if _, _, err := svc.Register("bob@example.com", "password123", "Bob"); err != nil {
			t.Fatalf("Seed Register() failed: %v", err)
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/register", request.RegisterRequest{
			Email:       "bob@example.com",
			Password:    "password123",
			DisplayName: "Bob",
		})
		w := httptest.NewRecorder()

		handler.Register(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for a weak password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/register", request.RegisterRequest{
			Email:       "carol@example.com",
			Password:    "short",
			DisplayName: "Carol",
		})
		w := httptest.NewRecorder()

		handler.Register(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestAuthHandler_Login tests the POST /api/auth/login endpoint.
func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token for valid credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)
		handler := handlers.NewAuthHandler(svc)

		if _, _, err := svc.Register("dave@example.com", "password123", "Dave"); err != nil {
			t.Fatalf("Seed Register() failed: %v", err)
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login", request.LoginRequest{
			Email:    "dave@example.com",
			Password: "password123",
		})
		w := httptest.NewRecorder()

		handler.Login(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.AuthResponse
		testutil.DecodeJSON(t, w, &response)
		if response.Token == "" {
			t.Error("Expected a session token")
		}
	})

	t.Run("returns 401 for wrong password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)
		handler := handlers.NewAuthHandler(svc)

		if _, _, err := svc.Register("eve@example.com", "password123", "Eve"); err != nil {
			t.Fatalf("Seed Register() failed: %v", err)
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login", request.LoginRequest{
			Email:    "eve@example.com",
			Password: "wrongpass",
		})
		w := httptest.NewRecorder()

		handler.Login(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestAuthHandler_Me tests the GET /api/auth/me endpoint.
func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the authenticated user without the password hash", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAuthService(t, db)
		handler := handlers.NewAuthHandler(svc)

		user, _, err := svc.Register("frank@example.com", "password123", "Frank")
		if err != nil {
			t.Fatalf("Seed Register() failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		handler.Me(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]any
		testutil.DecodeJSON(t, w, &response)
		if response["email"] != "frank@example.com" {
			t.Errorf("Expected email frank@example.com, got %v", response["email"])
		}
		if _, leaked := response["passwordHash"]; leaked {
			t.Error("Password hash must not appear in the response")
		}
	})

	t.Run("returns 404 when the token subject no longer exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAuthHandler(testutil.NewTestAuthService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), testutil.MakeID()))
		w := httptest.NewRecorder()

		handler.Me(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
