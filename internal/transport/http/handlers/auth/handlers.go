package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"payrollms/internal/auth"
	"payrollms/internal/db"
	"payrollms/internal/transport/http/api"
	"payrollms/internal/transport/http/middleware"
)

type Handler struct {
	DB       db.Querier
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(q db.Querier, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{DB: q, Secret: secret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var hash string
	err := h.DB.QueryRow(r.Context(), `
    SELECT password_hash FROM operators WHERE email = $1
  `, email).Scan(&hash)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	if err := auth.CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, email, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", reqID)
		return
	}

	api.Success(w, map[string]any{
		"token":     token,
		"expiresIn": int(h.TokenTTL.Seconds()),
	}, reqID)
}
