package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"myshop/internal/admin"
	"myshop/internal/model"

	"github.com/rs/zerolog"
)

// AdminHandler handles the admin login gate and the read-only dashboard
// views backed by the remote aggregation API. The orders it shows come
// from that remote source, not from the local order log written at
// checkout; the two are disjoint data sets.
type AdminHandler struct {
	sessions   *admin.Sessions
	aggregator *admin.Aggregator
	logger     zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(sessions *admin.Sessions, aggregator *admin.Aggregator, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		sessions:   sessions,
		aggregator: aggregator,
		logger:     logger.With().Str("handler", "admin").Logger(),
	}
}

// LoginRequest is the payload for POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	token, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /api/admin/logout requests.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	h.sessions.Logout(r.Header.Get("X-Admin-Token"))
	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/admin/summary requests.
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	summary, err := h.aggregator.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "admin API unavailable, please retry", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Products handles GET /api/admin/products requests.
func (h *AdminHandler) Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.aggregator.Products(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "admin API unavailable, please retry", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Orders handles GET /api/admin/orders requests.
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	orders, err := h.aggregator.Orders(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "admin API unavailable, please retry", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
