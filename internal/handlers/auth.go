package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Aayushkhairnar2101/Billing-system/internal/services"
	"github.com/Aayushkhairnar2101/Billing-system/types"
	"github.com/go-chi/chi/v5"
)

// AuthHandler provides registration and sign-in endpoints.
type AuthHandler struct {
	identity *services.IdentityService
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(identity *services.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, identity *services.IdentityService) {
	handler := NewAuthHandler(identity)

	r.Post("/register", handler.Register)
	r.Post("/signin", handler.SignIn)
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.identity.Register(r.Context(), services.RegisterParams{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to save user")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    user,
	})
}

// SignIn verifies credentials against the users collection.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.identity.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err, "Failed to sign in")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Sign in successful",
		User:    user,
	})
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    types.PublicUser `json:"user"`
}
