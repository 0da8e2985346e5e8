package api

import (
	"log/slog"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/auth"
	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/model"
)

// AuthHandler handles roster login endpoints. There are no credentials:
// login picks a user from the fixed roster.
type AuthHandler struct {
	Service   *inventory.Service
	JWTSecret string
}

type loginRequest struct {
	UserID string `json:"user_id"`
}

type loginResponse struct {
	Token        string      `json:"token"`
	User         *model.User `json:"user"`
	LandingRoute string      `json:"landing_route"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" {
		jsonError(w, http.StatusBadRequest, "user_id required")
		return
	}

	user, err := h.Service.Login(req.UserID)
	if err != nil {
		slog.Warn("login failed", "user_id", req.UserID, "remote", r.RemoteAddr)
		serviceError(w, err)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user logged in", "user", user.Name, "role", user.Role)
	jsonResponse(w, http.StatusOK, loginResponse{
		Token:        token,
		User:         user,
		LandingRoute: model.LandingRoute(user.Role),
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := h.Service.Logout(); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	if claims != nil {
		slog.Info("user logged out", "user", claims.Name)
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user := h.Service.UserByID(claims.UserID)
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "user no longer in roster")
		return
	}
	jsonResponse(w, http.StatusOK, user)
}

// Users handles GET /api/auth/users: the roster the login page offers.
func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Service.Users())
}
