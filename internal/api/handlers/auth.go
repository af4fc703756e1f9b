package handlers

import (
	"errors"
	"net/http"

	"github.com/wealthflow/wealthflow-backend/internal/api/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/service"
	"github.com/wealthflow/wealthflow-backend/internal/validation"
)

// AuthHandler handles HTTP requests for registration, login and session
// introspection. Authentication failures are the only error class surfaced
// verbatim to the user.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AuthResponse bundles the session token with the authenticated user.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Register handles POST requests to create a new user.
// Registration also seeds the user's default cash account.
//
// Endpoint: POST /api/auth/register
// Response: 201 Created with AuthResponse
// Error: 400 Bad Request on validation failure
// Error: 409 Conflict when the email is already registered
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RegisterRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRegister(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, token, err := h.authService.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmailTaken):
			response.RespondError(w, http.StatusConflict, apperrors.ErrEmailTaken.Error(), nil)
		case errors.Is(err, apperrors.ErrWeakPassword):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrWeakPassword.Error(), nil)
		default:
			response.RespondError(w, http.StatusInternalServerError, "registration failed", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login handles POST requests to authenticate a user.
//
// Endpoint: POST /api/auth/login
// Response: 200 OK with AuthResponse
// Error: 401 Unauthorized on bad credentials
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "login failed", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
}

// Me handles GET requests for the current authenticated user.
//
// Endpoint: GET /api/auth/me
// Response: 200 OK with the user
// Error: 404 Not Found when the token subject no longer exists
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrUserNotFound.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to load user", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, user)
}
